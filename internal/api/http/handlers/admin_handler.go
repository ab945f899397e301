package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/civic-issue-service/internal/api/dto"
	"github.com/spec-kit/civic-issue-service/internal/domain"
	"github.com/spec-kit/civic-issue-service/internal/query"
	"github.com/spec-kit/civic-issue-service/internal/session"
	"github.com/spec-kit/civic-issue-service/internal/workflow"
	apperrors "github.com/spec-kit/civic-issue-service/pkg/util/errorutil"
)

// AdminHandler manages official-facing triage endpoints.
type AdminHandler struct {
	workflow *workflow.Service
	now      func() time.Time
}

// NewAdminHandler constructs handler.
func NewAdminHandler(workflowService *workflow.Service) *AdminHandler {
	return &AdminHandler{workflow: workflowService, now: time.Now}
}

// ListIssues GET /admin/issues. Returns the filtered collection bucketed
// into today/yesterday/older for the dashboard tabs.
func (h *AdminHandler) ListIssues(c *fiber.Ctx) error {
	issues, err := h.workflow.ListIssues(c.UserContext())
	if err != nil {
		return err
	}
	filtered := applyFilters(issues, c)
	buckets := query.BucketByRecency(filtered, h.now())
	return c.JSON(fiber.Map{"data": dto.BucketedIssuesResponse{
		Today:     dto.FromIssues(buckets.Today),
		Yesterday: dto.FromIssues(buckets.Yesterday),
		Older:     dto.FromIssues(buckets.Older),
	}})
}

// UpdateStatus PATCH /admin/issues/:id/status.
func (h *AdminHandler) UpdateStatus(c *fiber.Ctx) error {
	sess := session.FromContext(c)
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Status == "" {
		return apperrors.NewValidationError("status required", nil)
	}
	issue, err := h.workflow.SetStatus(c.UserContext(), sess, c.Params("id"), domain.IssueStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromIssue(*issue)})
}
