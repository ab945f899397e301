package workflow

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/civic-issue-service/internal/domain"
	"github.com/spec-kit/civic-issue-service/internal/events"
	"github.com/spec-kit/civic-issue-service/internal/idgen"
	"github.com/spec-kit/civic-issue-service/internal/store"
	apperrors "github.com/spec-kit/civic-issue-service/pkg/util/errorutil"
)

// Service coordinates the issue workflow: creation by citizens and status
// transitions by officials. The caller's session is an explicit parameter on
// every operation; the engine never reads ambient state.
type Service struct {
	issues     store.IssueStore
	dispatcher events.Dispatcher
	now        func() time.Time
	newID      func() string
}

// Dependencies bundles collaborators for the workflow service.
type Dependencies struct {
	Issues     store.IssueStore
	Dispatcher events.Dispatcher
	// Now and NewID default to the wall clock and the identifier generator.
	Now   func() time.Time
	NewID func() string
}

// CreateInput describes a report submission payload. Required fields are
// validated again here even though the form collaborator checks them first.
type CreateInput struct {
	Title       string
	Description string
	Location    string
	Category    domain.IssueCategory
	ImageURL    *string
	VideoURL    *string
}

// NewService constructs the service.
func NewService(deps Dependencies) *Service {
	s := &Service{
		issues:     deps.Issues,
		dispatcher: deps.Dispatcher,
		now:        deps.Now,
		newID:      deps.NewID,
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newID == nil {
		s.newID = idgen.Generate
	}
	return s
}

// CreateIssue records a new report. Requires a citizen session.
func (s *Service) CreateIssue(ctx context.Context, session domain.Session, input CreateInput) (*domain.Issue, error) {
	if session.Role != domain.RoleCitizen {
		return nil, apperrors.NewUnauthorized("citizen session required")
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	issue := domain.Issue{
		ID:          s.newID(),
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Location:    strings.TrimSpace(input.Location),
		Category:    input.Category,
		Status:      domain.IssueStatusReported,
		Date:        s.now().Format(domain.DateLayout),
		ReportedBy:  session.Identity,
		ImageURL:    input.ImageURL,
		VideoURL:    input.VideoURL,
	}

	if err := s.issues.Append(ctx, issue); err != nil {
		return nil, err
	}
	s.publishEvent(ctx, events.Event{
		Type:    events.EventIssueSubmitted,
		IssueID: issue.ID,
		Actor:   actorFromSession(session),
		Payload: events.IssueSubmittedPayload{
			Title:    issue.Title,
			Category: issue.Category,
			Location: issue.Location,
			Date:     issue.Date,
		},
	})
	return &issue, nil
}

// SetStatus transitions an issue to newStatus. Requires an official session.
// Any state may move to any other state, including backward; officials may
// reopen or correct a status.
func (s *Service) SetStatus(ctx context.Context, session domain.Session, issueID string, newStatus domain.IssueStatus) (*domain.Issue, error) {
	if session.Role != domain.RoleOfficial {
		return nil, apperrors.NewUnauthorized("official session required")
	}
	if !domain.ValidStatus(newStatus) {
		return nil, apperrors.NewValidationError("unknown status", map[string]any{"status": newStatus})
	}

	issue, err := s.getByID(ctx, issueID)
	if err != nil {
		return nil, err
	}

	oldStatus := issue.Status
	issue.Status = newStatus
	if err := s.issues.Replace(ctx, issueID, *issue); err != nil {
		return nil, err
	}

	actor := actorFromSession(session)
	s.publishEvent(ctx, events.Event{
		Type:    events.EventIssueStatusChanged,
		IssueID: issue.ID,
		Actor:   actor,
		Payload: events.IssueStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: newStatus,
		},
	})
	// The resolution acknowledgment fires once per state-changing transition
	// into resolved, never on resolved -> resolved.
	if newStatus == domain.IssueStatusResolved && oldStatus != domain.IssueStatusResolved {
		s.publishEvent(ctx, events.Event{
			Type:    events.EventIssueResolutionAcknowledge,
			IssueID: issue.ID,
			Actor:   actor,
			Payload: events.IssueResolutionAcknowledgedPayload{
				Title: issue.Title,
			},
		})
	}
	return issue, nil
}

// ListIssues returns a read-only snapshot of all issues in insertion order.
func (s *Service) ListIssues(ctx context.Context) ([]domain.Issue, error) {
	return s.issues.Load(ctx)
}

// GetIssue returns a single issue by id.
func (s *Service) GetIssue(ctx context.Context, issueID string) (*domain.Issue, error) {
	return s.getByID(ctx, issueID)
}

func (s *Service) getByID(ctx context.Context, issueID string) (*domain.Issue, error) {
	issues, err := s.issues.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range issues {
		if issues[i].ID == issueID {
			issue := issues[i]
			return &issue, nil
		}
	}
	return nil, apperrors.NewNotFound("issue", map[string]any{"id": issueID})
}

func validateInput(input CreateInput) error {
	details := map[string]any{}
	if len(strings.TrimSpace(input.Title)) < 5 {
		details["title"] = "must be at least 5 characters"
	}
	if len(strings.TrimSpace(input.Description)) < 10 {
		details["description"] = "must be at least 10 characters"
	}
	if strings.TrimSpace(input.Location) == "" {
		details["location"] = "required"
	}
	if !domain.ValidCategory(input.Category) {
		details["category"] = "unknown category"
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("invalid report", details)
	}
	return nil
}

func (s *Service) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func actorFromSession(session domain.Session) events.Actor {
	return events.Actor{
		Role:     session.Role,
		Identity: session.Identity,
	}
}
