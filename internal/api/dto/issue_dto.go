package dto

import (
	"github.com/spec-kit/civic-issue-service/internal/domain"
)

// CreateIssueRequest payload.
type CreateIssueRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	Category    string  `json:"category"`
	ImageURL    *string `json:"imageUrl,omitempty"`
	VideoURL    *string `json:"videoUrl,omitempty"`
}

// UpdateStatusRequest payload.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// IssueResponse mirrors the persisted issue shape.
type IssueResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	Category    string  `json:"category"`
	Status      string  `json:"status"`
	Date        string  `json:"date"`
	ReportedBy  *string `json:"reportedBy,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
	VideoURL    *string `json:"videoUrl,omitempty"`
}

// BucketedIssuesResponse groups issues by recency for the dashboard.
type BucketedIssuesResponse struct {
	Today     []IssueResponse `json:"today"`
	Yesterday []IssueResponse `json:"yesterday"`
	Older     []IssueResponse `json:"older"`
}

// FromIssue maps a domain issue onto the response shape.
func FromIssue(issue domain.Issue) IssueResponse {
	return IssueResponse{
		ID:          issue.ID,
		Title:       issue.Title,
		Description: issue.Description,
		Location:    issue.Location,
		Category:    string(issue.Category),
		Status:      string(issue.Status),
		Date:        issue.Date,
		ReportedBy:  issue.ReportedBy,
		ImageURL:    issue.ImageURL,
		VideoURL:    issue.VideoURL,
	}
}

// FromIssues maps a slice preserving order.
func FromIssues(issues []domain.Issue) []IssueResponse {
	out := make([]IssueResponse, 0, len(issues))
	for _, issue := range issues {
		out = append(out, FromIssue(issue))
	}
	return out
}
