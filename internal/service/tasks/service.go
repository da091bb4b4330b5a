package tasks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"staffboard/internal/models"
	"staffboard/internal/store"
)

var (
	ErrValidation        = errors.New("invalid input")
	ErrInvalidTransition = errors.New("invalid status transition")
)

type taskStore interface {
	Create(ctx context.Context, t *models.Task) (*models.Task, error)
	GetByID(ctx context.Context, id int64) (*models.Task, error)
	GetByEmployee(ctx context.Context, employeeID int64) ([]models.Task, error)
	GetAll(ctx context.Context) ([]models.Task, error)
	UpdateStatus(ctx context.Context, id int64, next models.Status) (*models.Task, error)
}

type employeeStore interface {
	GetByID(ctx context.Context, id int64) (*models.Employee, error)
}

type Service struct {
	tasks     taskStore
	employees employeeStore
}

func NewService(tasks taskStore, employees employeeStore) *Service {
	return &Service{tasks: tasks, employees: employees}
}

// Assign creates a pending task for an existing employee. The employee
// binding is fixed for the life of the task.
func (s *Service) Assign(ctx context.Context, employeeID int64, title, description string) (*models.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if _, err := s.employees.GetByID(ctx, employeeID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown employee %d", ErrValidation, employeeID)
		}
		return nil, err
	}

	task := &models.Task{
		EmployeeID:  employeeID,
		Title:       title,
		Description: strings.TrimSpace(description),
		AssignedAt:  time.Now(),
	}
	return s.tasks.Create(ctx, task)
}

// Submit moves a pending or failed task into review.
func (s *Service) Submit(ctx context.Context, id int64) (*models.Task, error) {
	return s.transition(ctx, id, models.StatusInReview)
}

// Resubmit is Submit restricted to failed tasks.
func (s *Service) Resubmit(ctx context.Context, id int64) (*models.Task, error) {
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.Status != models.StatusFailed {
		return nil, fmt.Errorf("%w: resubmit requires %s, task is %s", ErrInvalidTransition, models.StatusFailed, t.Status)
	}
	return s.transition(ctx, id, models.StatusInReview)
}

// Approve completes a task under review.
func (s *Service) Approve(ctx context.Context, id int64) (*models.Task, error) {
	return s.transition(ctx, id, models.StatusCompleted)
}

// Reject fails a task under review. The employee may resubmit it.
func (s *Service) Reject(ctx context.Context, id int64) (*models.Task, error) {
	return s.transition(ctx, id, models.StatusFailed)
}

func (s *Service) transition(ctx context.Context, id int64, to models.Status) (*models.Task, error) {
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !models.AllowedTransition(t.Status, to) {
		if t.Status.IsTerminal() {
			return nil, fmt.Errorf("%w: task is %s", ErrInvalidTransition, t.Status)
		}
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, t.Status, to)
	}
	return s.tasks.UpdateStatus(ctx, id, to)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*models.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *Service) GetByEmployee(ctx context.Context, employeeID int64) ([]models.Task, error) {
	return s.tasks.GetByEmployee(ctx, employeeID)
}

func (s *Service) GetAll(ctx context.Context) ([]models.Task, error) {
	return s.tasks.GetAll(ctx)
}

// Summary counts tasks per status and tasks assigned on the current
// calendar day.
func (s *Service) Summary(ctx context.Context) (models.Summary, error) {
	all, err := s.tasks.GetAll(ctx)
	if err != nil {
		return models.Summary{}, err
	}

	now := time.Now()
	var sum models.Summary
	for _, t := range all {
		switch t.Status {
		case models.StatusPending:
			sum.Pending++
		case models.StatusInReview:
			sum.InReview++
		case models.StatusCompleted:
			sum.Completed++
		case models.StatusFailed:
			sum.Failed++
		}
		if sameDay(t.AssignedAt, now) {
			sum.AssignedToday++
		}
	}
	sum.Total = len(all)
	return sum, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
