package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/civic-issue-service/internal/api/dto"
	"github.com/spec-kit/civic-issue-service/internal/domain"
	"github.com/spec-kit/civic-issue-service/internal/query"
	"github.com/spec-kit/civic-issue-service/internal/ratelimit"
	"github.com/spec-kit/civic-issue-service/internal/session"
	"github.com/spec-kit/civic-issue-service/internal/workflow"
	apperrors "github.com/spec-kit/civic-issue-service/pkg/util/errorutil"
)

// IssuesHandler manages citizen-facing issue endpoints.
type IssuesHandler struct {
	workflow *workflow.Service
	limiter  *ratelimit.Limiter
}

// NewIssuesHandler constructs handler.
func NewIssuesHandler(workflowService *workflow.Service, limiter *ratelimit.Limiter) *IssuesHandler {
	return &IssuesHandler{workflow: workflowService, limiter: limiter}
}

// CreateIssue POST /issues.
func (h *IssuesHandler) CreateIssue(c *fiber.Ctx) error {
	sess := session.FromContext(c)
	var req dto.CreateIssueRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	if sess.Identity != nil {
		result, err := h.limiter.Allow(c.UserContext(), *sess.Identity)
		if err != nil {
			return apperrors.NewInternalError(err)
		}
		if !result.Allowed {
			return apperrors.NewTooManyRequests("daily report limit reached",
				map[string]any{"retry_after_seconds": result.RetryAfter.Seconds()})
		}
	}

	issue, err := h.workflow.CreateIssue(c.UserContext(), sess, workflow.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Category:    domain.IssueCategory(req.Category),
		ImageURL:    req.ImageURL,
		VideoURL:    req.VideoURL,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.FromIssue(*issue)})
}

// ListIssues GET /issues.
func (h *IssuesHandler) ListIssues(c *fiber.Ctx) error {
	issues, err := h.workflow.ListIssues(c.UserContext())
	if err != nil {
		return err
	}
	filtered := applyFilters(issues, c)
	return c.JSON(fiber.Map{"data": dto.FromIssues(filtered)})
}

// GetIssue GET /issues/:id.
func (h *IssuesHandler) GetIssue(c *fiber.Ctx) error {
	issue, err := h.workflow.GetIssue(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromIssue(*issue)})
}

// applyFilters composes search, category, and status filters from query
// parameters. Order of application does not affect the result.
func applyFilters(issues []domain.Issue, c *fiber.Ctx) []domain.Issue {
	filtered := query.Search(issues, c.Query("search"))
	if categoryStr := c.Query("category"); categoryStr != "" {
		var categories []domain.IssueCategory
		for _, part := range strings.Split(categoryStr, ",") {
			categories = append(categories, domain.IssueCategory(strings.TrimSpace(part)))
		}
		filtered = query.FilterByCategory(filtered, categories)
	}
	filtered = query.FilterByStatus(filtered, domain.IssueStatus(c.Query("status")))
	return filtered
}
