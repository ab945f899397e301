// Package query derives filtered, searched, and time-bucketed views over a
// snapshot of the issue collection. All functions are pure: they never
// mutate their input and preserve the relative order of matching elements.
package query

import (
	"strings"
	"time"

	"github.com/spec-kit/civic-issue-service/internal/domain"
)

// Search keeps issues whose title, description, location, or category
// contains term, case-insensitively. An empty or blank term is the identity.
func Search(issues []domain.Issue, term string) []domain.Issue {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return issues
	}
	out := make([]domain.Issue, 0, len(issues))
	for _, issue := range issues {
		if strings.Contains(strings.ToLower(issue.Title), term) ||
			strings.Contains(strings.ToLower(issue.Description), term) ||
			strings.Contains(strings.ToLower(issue.Location), term) ||
			strings.Contains(strings.ToLower(string(issue.Category)), term) {
			out = append(out, issue)
		}
	}
	return out
}

// FilterByCategory keeps issues whose category is in the selected set. An
// empty set is the identity.
func FilterByCategory(issues []domain.Issue, selected []domain.IssueCategory) []domain.Issue {
	if len(selected) == 0 {
		return issues
	}
	set := make(map[domain.IssueCategory]struct{}, len(selected))
	for _, c := range selected {
		set[c] = struct{}{}
	}
	out := make([]domain.Issue, 0, len(issues))
	for _, issue := range issues {
		if _, ok := set[issue.Category]; ok {
			out = append(out, issue)
		}
	}
	return out
}

// FilterByStatus keeps issues with the given status. An empty status is the
// identity; only a single status filter is active at a time.
func FilterByStatus(issues []domain.Issue, status domain.IssueStatus) []domain.Issue {
	if status == "" {
		return issues
	}
	out := make([]domain.Issue, 0, len(issues))
	for _, issue := range issues {
		if issue.Status == status {
			out = append(out, issue)
		}
	}
	return out
}

// Buckets partitions issues by recency relative to a reference date.
type Buckets struct {
	Today     []domain.Issue `json:"today"`
	Yesterday []domain.Issue `json:"yesterday"`
	Older     []domain.Issue `json:"older"`
}

// BucketByRecency partitions by exact date-string equality against today and
// today-1. The partitions are exhaustive and disjoint.
func BucketByRecency(issues []domain.Issue, today time.Time) Buckets {
	todayStr := today.Format(domain.DateLayout)
	yesterdayStr := today.AddDate(0, 0, -1).Format(domain.DateLayout)

	b := Buckets{
		Today:     []domain.Issue{},
		Yesterday: []domain.Issue{},
		Older:     []domain.Issue{},
	}
	for _, issue := range issues {
		switch issue.Date {
		case todayStr:
			b.Today = append(b.Today, issue)
		case yesterdayStr:
			b.Yesterday = append(b.Yesterday, issue)
		default:
			b.Older = append(b.Older, issue)
		}
	}
	return b
}
