package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/olgkv/taskboard/internal/domain"
)

const persistTimeout = 5 * time.Second

type TaskStore interface {
	Load(ctx context.Context) ([]domain.Task, int)
	Save(ctx context.Context, tasks []domain.Task, nextID int) error
}

// Service is the in-memory authority over the board. Every mutation is
// written through to the store before the call returns.
type Service struct {
	mu     sync.Mutex
	store  TaskStore
	tasks  []domain.Task
	nextID int

	// OnMutation, if set, is called with the operation name after each change
	// that touched a task.
	OnMutation func(op string)
}

// New loads the store once and takes ownership of its state.
func New(ctx context.Context, store TaskStore) *Service {
	tasks, nextID := store.Load(ctx)
	return &Service{store: store, tasks: tasks, nextID: nextID}
}

func (s *Service) Add(title, description, deadline string) domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := domain.Task{
		ID:          s.nextID,
		Title:       title,
		Description: description,
		Deadline:    domain.NormalizeDate(deadline),
		Status:      domain.StatusNotStarted,
	}
	s.nextID++
	s.tasks = append(s.tasks, t)
	s.persistLocked()
	s.notify("add")
	return t
}

// Remove drops the task with id. Unknown ids are ignored.
func (s *Service) Remove(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]domain.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	removed := len(kept) != len(s.tasks)
	s.tasks = kept
	s.persistLocked()
	if removed {
		s.notify("remove")
	}
}

// SetStatus changes a task's status in place. Unknown ids are ignored.
func (s *Service) SetStatus(id int, status domain.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Status = status
			s.persistLocked()
			s.notify("set_status")
			return
		}
	}
}

// All returns a copy of the tasks in creation order.
func (s *Service) All() []domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Stats returns the number of tasks and how many of them are completed.
func (s *Service) Stats() (total int, completed int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.tasks {
		total++
		if t.Status == domain.StatusCompleted {
			completed++
		}
	}
	return total, completed
}

func (s *Service) persistLocked() {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	if err := s.store.Save(ctx, s.tasks, s.nextID); err != nil {
		slog.Error("persist tasks", "error", err)
	}
}

func (s *Service) notify(op string) {
	if s.OnMutation != nil {
		s.OnMutation(op)
	}
}
