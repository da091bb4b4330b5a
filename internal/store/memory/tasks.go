package memory

import (
	"context"
	"sync"

	"staffboard/internal/models"
	"staffboard/internal/store"
)

// TaskStore keeps every task in memory. The order slice preserves
// assignment order, which the listing methods expose.
type TaskStore struct {
	mu     sync.RWMutex
	nextID int64
	tasks  map[int64]models.Task
	order  []int64
}

func NewTaskStore() *TaskStore {
	return &TaskStore{
		tasks: make(map[int64]models.Task),
	}
}

func (s *TaskStore) Create(ctx context.Context, t *models.Task) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	created := *t
	created.ID = s.nextID

	// status is not definable by the caller
	created.Status = models.StatusPending

	s.tasks[created.ID] = created
	s.order = append(s.order, created.ID)
	return &created, nil
}

func (s *TaskStore) GetByID(ctx context.Context, id int64) (*models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tasks[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &t, nil
}

func (s *TaskStore) GetByEmployee(ctx context.Context, employeeID int64) ([]models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var tasks []models.Task
	for _, id := range s.order {
		if t := s.tasks[id]; t.EmployeeID == employeeID {
			tasks = append(tasks, t)
		}
	}
	return tasks, nil
}

func (s *TaskStore) GetAll(ctx context.Context) ([]models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]models.Task, 0, len(s.order))
	for _, id := range s.order {
		tasks = append(tasks, s.tasks[id])
	}
	return tasks, nil
}

// UpdateStatus writes an already validated status. Transition rules are
// enforced by the tasks service, not here.
func (s *TaskStore) UpdateStatus(ctx context.Context, id int64, next models.Status) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	t.Status = next
	s.tasks[id] = t
	return &t, nil
}
