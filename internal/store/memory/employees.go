package memory

import (
	"context"
	"fmt"

	"staffboard/internal/config"
	"staffboard/internal/models"
	"staffboard/internal/store"
	"staffboard/internal/utils"
)

// EmployeeStore is the seeded roster. It is built once at startup and
// read-only afterwards, so lookups need no locking.
type EmployeeStore struct {
	order   []int64
	byID    map[int64]models.Employee
	byEmail map[string]int64
}

func NewEmployeeStore(seed []config.SeedEmployee) (*EmployeeStore, error) {
	s := &EmployeeStore{
		byID:    make(map[int64]models.Employee, len(seed)),
		byEmail: make(map[string]int64, len(seed)),
	}
	for _, row := range seed {
		if _, ok := s.byID[row.ID]; ok {
			return nil, fmt.Errorf("duplicate employee id %d in seed", row.ID)
		}
		if _, ok := s.byEmail[row.Email]; ok {
			return nil, fmt.Errorf("duplicate employee email %q in seed", row.Email)
		}
		hash, err := utils.HashPassword(row.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password for employee %d: %w", row.ID, err)
		}
		s.byID[row.ID] = models.Employee{
			ID:           row.ID,
			Name:         row.Name,
			Email:        row.Email,
			PasswordHash: hash,
			Salary:       row.Salary,
		}
		s.byEmail[row.Email] = row.ID
		s.order = append(s.order, row.ID)
	}
	return s, nil
}

func (s *EmployeeStore) GetAll(ctx context.Context) ([]models.Employee, error) {
	employees := make([]models.Employee, 0, len(s.order))
	for _, id := range s.order {
		employees = append(employees, s.byID[id])
	}
	return employees, nil
}

func (s *EmployeeStore) GetByID(ctx context.Context, id int64) (*models.Employee, error) {
	e, ok := s.byID[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &e, nil
}

func (s *EmployeeStore) GetByEmail(ctx context.Context, email string) (*models.Employee, error) {
	id, ok := s.byEmail[email]
	if !ok {
		return nil, store.ErrNotFound
	}
	e := s.byID[id]
	return &e, nil
}
