package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spec-kit/civic-issue-service/internal/domain"
)

// SlotName is the well-known name of the persisted slot.
const SlotName = "reported_issues.json"

// SlotStore persists the whole collection as a JSON array in a single named
// file. Reads and writes are serialized; writes replace the file atomically
// via a temp file and rename.
type SlotStore struct {
	mu   sync.Mutex
	path string

	loaded bool
	issues []domain.Issue
}

// NewSlotStore creates a store rooted at dir. The directory is created if
// missing; the slot file itself is created on first write.
func NewSlotStore(dir string) (*SlotStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &SlotStore{path: filepath.Join(dir, SlotName)}, nil
}

// Load returns all persisted issues in insertion order. A missing slot is an
// empty collection, never an error.
func (s *SlotStore) Load(ctx context.Context) ([]domain.Issue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	out := make([]domain.Issue, len(s.issues))
	copy(out, s.issues)
	return out, nil
}

// Append adds a new issue to the end of the collection.
func (s *SlotStore) Append(ctx context.Context, issue domain.Issue) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	for i := range s.issues {
		if s.issues[i].ID == issue.ID {
			return fmt.Errorf("%w: %s", ErrDuplicateID, issue.ID)
		}
	}
	next := append(append([]domain.Issue{}, s.issues...), issue)
	if err := s.write(next); err != nil {
		return err
	}
	s.issues = next
	return nil
}

// Replace overwrites the record matching id, keeping its position.
func (s *SlotStore) Replace(ctx context.Context, id string, updated domain.Issue) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	idx := -1
	for i := range s.issues {
		if s.issues[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	next := make([]domain.Issue, len(s.issues))
	copy(next, s.issues)
	next[idx] = updated
	if err := s.write(next); err != nil {
		return err
	}
	s.issues = next
	return nil
}

// Persist durably writes the entire collection, replacing prior contents.
func (s *SlotStore) Persist(ctx context.Context, snapshot []domain.Issue) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]domain.Issue, len(snapshot))
	copy(next, snapshot)
	if err := s.write(next); err != nil {
		return err
	}
	s.issues = next
	s.loaded = true
	return nil
}

func (s *SlotStore) ensureLoaded() error {
	if s.loaded {
		return nil
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.issues = nil
			s.loaded = true
			return nil
		}
		return fmt.Errorf("read slot: %w", err)
	}
	var issues []domain.Issue
	if err := json.Unmarshal(data, &issues); err != nil {
		return fmt.Errorf("decode slot: %w", err)
	}
	s.issues = issues
	s.loaded = true
	return nil
}

func (s *SlotStore) write(issues []domain.Issue) error {
	if issues == nil {
		issues = []domain.Issue{}
	}
	data, err := json.MarshalIndent(issues, "", "  ")
	if err != nil {
		return fmt.Errorf("encode slot: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), SlotName+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp slot: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp slot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp slot: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace slot: %w", err)
	}
	return nil
}
