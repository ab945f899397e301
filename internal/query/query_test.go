package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/civic-issue-service/internal/domain"
)

func sampleIssues() []domain.Issue {
	return []domain.Issue{
		{
			ID:          "CIV-00000001",
			Title:       "Broken Street Light",
			Description: "Light out at Maple and Oak",
			Location:    "Maple and Oak",
			Category:    domain.CategoryStreetLighting,
			Status:      domain.IssueStatusReported,
			Date:        "2026-09-01",
		},
		{
			ID:          "CIV-00000002",
			Title:       "Pothole on Elm Street",
			Description: "Deep pothole near the crosswalk",
			Location:    "Elm Street",
			Category:    domain.CategoryRoadMaintenance,
			Status:      domain.IssueStatusInProgress,
			Date:        "2026-08-31",
		},
		{
			ID:          "CIV-00000003",
			Title:       "Overflowing trash bins",
			Description: "Bins at the park entrance have not been emptied",
			Location:    "Riverside Park",
			Category:    domain.CategoryWasteManagement,
			Status:      domain.IssueStatusResolved,
			Date:        "2026-08-20",
		},
		{
			ID:          "CIV-00000004",
			Title:       "Graffiti on underpass",
			Description: "Large tags on the road underpass wall",
			Location:    "5th Ave underpass",
			Category:    domain.CategoryGraffiti,
			Status:      domain.IssueStatusReported,
			Date:        "2026-09-01",
		},
	}
}

func TestSearchEmptyTermIsIdentity(t *testing.T) {
	issues := sampleIssues()
	assert.Equal(t, issues, Search(issues, ""))
	assert.Equal(t, issues, Search(issues, "   "))
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	issues := sampleIssues()
	upper := Search(issues, "ROAD")
	lower := Search(issues, "road")
	require.Equal(t, upper, lower)
	// "road" matches the pothole issue by category and the graffiti issue
	// by description.
	require.Len(t, lower, 2)
	assert.Equal(t, "CIV-00000002", lower[0].ID)
	assert.Equal(t, "CIV-00000004", lower[1].ID)
}

func TestSearchMatchesAnyOfFourFields(t *testing.T) {
	issues := sampleIssues()

	byTitle := Search(issues, "pothole on elm")
	require.Len(t, byTitle, 1)
	assert.Equal(t, "CIV-00000002", byTitle[0].ID)

	byDescription := Search(issues, "emptied")
	require.Len(t, byDescription, 1)
	assert.Equal(t, "CIV-00000003", byDescription[0].ID)

	byLocation := Search(issues, "riverside")
	require.Len(t, byLocation, 1)
	assert.Equal(t, "CIV-00000003", byLocation[0].ID)

	byCategory := Search(issues, "waste")
	require.Len(t, byCategory, 1)
	assert.Equal(t, "CIV-00000003", byCategory[0].ID)
}

func TestFilterByCategory(t *testing.T) {
	issues := sampleIssues()

	assert.Equal(t, issues, FilterByCategory(issues, nil), "empty set is identity")

	filtered := FilterByCategory(issues, []domain.IssueCategory{
		domain.CategoryStreetLighting,
		domain.CategoryGraffiti,
	})
	require.Len(t, filtered, 2)
	assert.Equal(t, "CIV-00000001", filtered[0].ID)
	assert.Equal(t, "CIV-00000004", filtered[1].ID)
}

func TestFilterByStatus(t *testing.T) {
	issues := sampleIssues()

	assert.Equal(t, issues, FilterByStatus(issues, ""), "no status is identity")

	filtered := FilterByStatus(issues, domain.IssueStatusReported)
	require.Len(t, filtered, 2)
	assert.Equal(t, "CIV-00000001", filtered[0].ID)
	assert.Equal(t, "CIV-00000004", filtered[1].ID)

	assert.Empty(t, FilterByStatus(issues, domain.IssueStatusRejected))
}

func TestFilterCompositionIsOrderIndependent(t *testing.T) {
	issues := sampleIssues()
	term := "the"
	categories := []domain.IssueCategory{domain.CategoryRoadMaintenance, domain.CategoryWasteManagement}
	status := domain.IssueStatusInProgress

	a := FilterByStatus(FilterByCategory(Search(issues, term), categories), status)
	b := FilterByCategory(FilterByStatus(Search(issues, term), status), categories)
	c := Search(FilterByStatus(FilterByCategory(issues, categories), status), term)

	assert.Equal(t, a, b)
	assert.Equal(t, b, c)
}

func TestBucketByRecencyPartitionsAreExhaustiveAndDisjoint(t *testing.T) {
	issues := sampleIssues()
	today, err := time.Parse(domain.DateLayout, "2026-09-01")
	require.NoError(t, err)

	buckets := BucketByRecency(issues, today)

	require.Len(t, buckets.Today, 2)
	require.Len(t, buckets.Yesterday, 1)
	require.Len(t, buckets.Older, 1)

	assert.Equal(t, "CIV-00000001", buckets.Today[0].ID)
	assert.Equal(t, "CIV-00000004", buckets.Today[1].ID)
	assert.Equal(t, "CIV-00000002", buckets.Yesterday[0].ID)
	assert.Equal(t, "CIV-00000003", buckets.Older[0].ID)

	seen := map[string]int{}
	for _, group := range [][]domain.Issue{buckets.Today, buckets.Yesterday, buckets.Older} {
		for _, issue := range group {
			seen[issue.ID]++
		}
	}
	assert.Len(t, seen, len(issues), "union covers the input")
	for id, count := range seen {
		assert.Equal(t, 1, count, "issue %s appears in exactly one bucket", id)
	}
}

func TestFiltersPreserveInsertionOrder(t *testing.T) {
	issues := sampleIssues()
	filtered := Search(issues, "o")
	for i := 1; i < len(filtered); i++ {
		assert.Less(t, filtered[i-1].ID, filtered[i].ID)
	}
}
