package store

import (
	"context"
	"errors"

	"staffboard/internal/models"
)

var ErrNotFound = errors.New("not found")

type EmployeeStore interface {
	GetAll(ctx context.Context) ([]models.Employee, error)
	GetByID(ctx context.Context, id int64) (*models.Employee, error)
	GetByEmail(ctx context.Context, email string) (*models.Employee, error)
}

type TaskStore interface {
	Create(ctx context.Context, t *models.Task) (*models.Task, error)
	GetByID(ctx context.Context, id int64) (*models.Task, error)
	GetByEmployee(ctx context.Context, employeeID int64) ([]models.Task, error)
	GetAll(ctx context.Context) ([]models.Task, error)
	UpdateStatus(ctx context.Context, id int64, next models.Status) (*models.Task, error)
}
