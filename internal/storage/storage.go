package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/olgkv/taskboard/internal/domain"
	"github.com/olgkv/taskboard/internal/ports"
)

// Entry names in local storage.
const (
	TasksKey  = "tasks"
	NextIDKey = "nextId"
)

// Store is the durable mirror of the board: the task list and the id counter.
type Store struct {
	ls ports.LocalStorage
}

func NewStore(ls ports.LocalStorage) *Store {
	return &Store{ls: ls}
}

// Load never fails. Missing or unreadable entries fall back to an empty list
// and a counter of 1, each entry on its own.
func (s *Store) Load(ctx context.Context) ([]domain.Task, int) {
	var tasks []domain.Task
	if raw, ok := s.read(ctx, TasksKey); ok {
		if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
			slog.Warn("discarding unreadable entry", "key", TasksKey, "error", err)
			tasks = nil
		}
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}

	nextID := 1
	if raw, ok := s.read(ctx, NextIDKey); ok {
		var n int
		if err := json.Unmarshal([]byte(raw), &n); err != nil {
			slog.Warn("discarding unreadable entry", "key", NextIDKey, "error", err)
		} else if n > 0 {
			nextID = n
		}
	}

	maxID := 0
	for _, t := range tasks {
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	if nextID <= maxID {
		nextID = maxID + 1
	}
	return tasks, nextID
}

// Save writes both entries, tasks first.
func (s *Store) Save(ctx context.Context, tasks []domain.Task, nextID int) error {
	if tasks == nil {
		tasks = []domain.Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("encode %s: %w", TasksKey, err)
	}
	if err := s.ls.SetItem(ctx, TasksKey, string(data)); err != nil {
		return fmt.Errorf("write %s: %w", TasksKey, err)
	}
	if err := s.ls.SetItem(ctx, NextIDKey, strconv.Itoa(nextID)); err != nil {
		return fmt.Errorf("write %s: %w", NextIDKey, err)
	}
	return nil
}

func (s *Store) read(ctx context.Context, key string) (string, bool) {
	raw, err := s.ls.GetItem(ctx, key)
	if err != nil {
		if !errors.Is(err, ports.ErrNotFound) {
			slog.Warn("local storage read failed", "key", key, "error", err)
		}
		return "", false
	}
	return raw, true
}
