package store

import (
	"context"
	"errors"

	"github.com/spec-kit/civic-issue-service/internal/domain"
)

// Sentinel errors returned by IssueStore implementations.
var (
	// ErrNotFound indicates the referenced issue id is absent.
	ErrNotFound = errors.New("issue not found")
	// ErrDuplicateID indicates an id collision on append.
	ErrDuplicateID = errors.New("duplicate issue id")
)

// IssueStore owns the authoritative copy of every issue. All mutation goes
// through Append/Replace; after either succeeds an immediate Load reflects
// the change.
type IssueStore interface {
	Load(ctx context.Context) ([]domain.Issue, error)
	Append(ctx context.Context, issue domain.Issue) error
	Replace(ctx context.Context, id string, updated domain.Issue) error
	Persist(ctx context.Context, snapshot []domain.Issue) error
}
