package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/civic-issue-service/internal/domain"
)

func newTestStore(t *testing.T) (*SlotStore, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := NewSlotStore(dir)
	require.NoError(t, err)
	return s, dir
}

func testIssue(id string) domain.Issue {
	return domain.Issue{
		ID:          id,
		Title:       "Broken Street Light",
		Description: "Light out at Maple and Oak",
		Location:    "Maple and Oak",
		Category:    domain.CategoryStreetLighting,
		Status:      domain.IssueStatusReported,
		Date:        "2026-09-01",
	}
}

func TestLoadMissingSlotReturnsEmpty(t *testing.T) {
	s, _ := newTestStore(t)
	issues, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestAppendThenLoadReflectsChange(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Append(ctx, testIssue("CIV-A")))
	require.NoError(t, s.Append(ctx, testIssue("CIV-B")))

	issues, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, issues, 2)
	assert.Equal(t, "CIV-A", issues[0].ID, "insertion order preserved")
	assert.Equal(t, "CIV-B", issues[1].ID)
}

func TestAppendDuplicateIDFails(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Append(ctx, testIssue("CIV-A")))
	err := s.Append(ctx, testIssue("CIV-A"))
	require.ErrorIs(t, err, ErrDuplicateID)

	issues, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, issues, 1, "failed append must not mutate the slot")
}

func TestReplaceUpdatesMatchingRecordInPlace(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Append(ctx, testIssue("CIV-A")))
	require.NoError(t, s.Append(ctx, testIssue("CIV-B")))

	updated := testIssue("CIV-A")
	updated.Status = domain.IssueStatusResolved
	require.NoError(t, s.Replace(ctx, "CIV-A", updated))

	issues, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, issues, 2)
	assert.Equal(t, domain.IssueStatusResolved, issues[0].Status)
	assert.Equal(t, "CIV-A", issues[0].ID, "position retained")
}

func TestReplaceMissingIDFails(t *testing.T) {
	s, _ := newTestStore(t)
	err := s.Replace(context.Background(), "CIV-NOPE", testIssue("CIV-NOPE"))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestPersistReplacesWholeCollection(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Append(ctx, testIssue("CIV-A")))
	require.NoError(t, s.Persist(ctx, []domain.Issue{testIssue("CIV-X"), testIssue("CIV-Y")}))

	issues, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, issues, 2)
	assert.Equal(t, "CIV-X", issues[0].ID)
	assert.Equal(t, "CIV-Y", issues[1].ID)
}

func TestSlotSurvivesReopen(t *testing.T) {
	s, dir := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.Append(ctx, testIssue("CIV-A")))

	reopened, err := NewSlotStore(dir)
	require.NoError(t, err)
	issues, err := reopened.Load(ctx)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, "CIV-A", issues[0].ID)
}

func TestSlotFileIsAPlainJSONArray(t *testing.T) {
	s, dir := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.Append(ctx, testIssue("CIV-A")))

	data, err := os.ReadFile(filepath.Join(dir, SlotName))
	require.NoError(t, err)

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 1)
	assert.Equal(t, "CIV-A", raw[0]["id"])
	assert.Equal(t, "reported", raw[0]["status"])
	assert.NotContains(t, raw[0], "reportedBy", "optional fields are omitted when unset")
}

func TestLoadReturnsACopy(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.Append(ctx, testIssue("CIV-A")))

	issues, err := s.Load(ctx)
	require.NoError(t, err)
	issues[0].Status = domain.IssueStatusRejected

	again, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.IssueStatusReported, again[0].Status,
		"callers hold derived views, not the authoritative copy")
}
