package events

import (
	"time"

	"github.com/spec-kit/civic-issue-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventIssueSubmitted             EventType = "issue_submitted"
	EventIssueStatusChanged         EventType = "issue_status_changed"
	EventIssueResolutionAcknowledge EventType = "issue_resolution_acknowledged"
)

// Actor encapsulates actor metadata for an event.
type Actor struct {
	Role     domain.Role `json:"role"`
	Identity *string     `json:"identity,omitempty"`
}

// Event represents a domain event emitted by the workflow engine.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	IssueID   string      `json:"issue_id"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// IssueSubmittedPayload payload.
type IssueSubmittedPayload struct {
	Title    string               `json:"title"`
	Category domain.IssueCategory `json:"category"`
	Location string               `json:"location"`
	Date     string               `json:"date"`
}

// IssueStatusChangedPayload payload.
type IssueStatusChangedPayload struct {
	OldStatus domain.IssueStatus `json:"old_status"`
	NewStatus domain.IssueStatus `json:"new_status"`
}

// IssueResolutionAcknowledgedPayload payload.
type IssueResolutionAcknowledgedPayload struct {
	Title string `json:"title"`
}
