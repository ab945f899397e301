package workflow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/civic-issue-service/internal/domain"
	"github.com/spec-kit/civic-issue-service/internal/events"
	"github.com/spec-kit/civic-issue-service/internal/query"
)

// Full report-and-triage round trip: a citizen submits, an official
// resolves, and both roles see consistent filtered views.
func TestReportAndTriageRoundTrip(t *testing.T) {
	svc, _, dispatcher := newTestService(t)
	ctx := context.Background()

	issue, err := svc.CreateIssue(ctx, domain.CitizenSession("resident@example.com"), CreateInput{
		Title:       "Broken Street Light",
		Description: "Light out at Maple and Oak",
		Location:    "Maple and Oak",
		Category:    domain.CategoryStreetLighting,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.IssueStatusReported, issue.Status)

	updated, err := svc.SetStatus(ctx, domain.OfficialSession("MO8881"), issue.ID, domain.IssueStatusResolved)
	require.NoError(t, err)
	assert.Equal(t, domain.IssueStatusResolved, updated.Status)
	assert.Equal(t, 1, dispatcher.countByType(events.EventIssueResolutionAcknowledge))

	issues, err := svc.ListIssues(ctx)
	require.NoError(t, err)

	matches := query.Search(issues, "maple")
	require.Len(t, matches, 1)
	assert.Equal(t, issue.ID, matches[0].ID)

	assert.Empty(t, query.FilterByStatus(issues, domain.IssueStatusRejected))
}
