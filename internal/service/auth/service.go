package auth

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"staffboard/internal/models"
	"staffboard/internal/utils"
)

var (
	ErrAuthentication  = errors.New("invalid credentials")
	ErrSessionNotFound = errors.New("session not found")
)

type employeeStore interface {
	GetByEmail(ctx context.Context, email string) (*models.Employee, error)
}

// Service checks logins against the seeded accounts and tracks live
// sessions so a logout actually invalidates the token.
type Service struct {
	employees  employeeStore
	auth       *utils.AuthManager
	adminEmail string
	adminHash  string

	mu       sync.RWMutex
	sessions map[string]models.Session
}

func NewService(employees employeeStore, auth *utils.AuthManager, adminEmail, adminHash string) *Service {
	return &Service{
		employees:  employees,
		auth:       auth,
		adminEmail: adminEmail,
		adminHash:  adminHash,
		sessions:   make(map[string]models.Session),
	}
}

// Login matches the credentials against the admin account or the roster
// and returns the session plus a signed token. The error is the same for
// an unknown email and a wrong password.
func (s *Service) Login(ctx context.Context, email, password string) (models.Session, string, error) {
	session := models.Session{JTI: uuid.NewString()}

	switch {
	case email == s.adminEmail:
		if !utils.CheckPasswordHash(password, s.adminHash) {
			return models.Session{}, "", ErrAuthentication
		}
		session.Role = models.RoleAdmin
		session.Name = "Admin"
	default:
		employee, err := s.employees.GetByEmail(ctx, email)
		if err != nil || !utils.CheckPasswordHash(password, employee.PasswordHash) {
			return models.Session{}, "", ErrAuthentication
		}
		session.Role = models.RoleEmployee
		session.EmployeeID = employee.ID
		session.Name = employee.Name
	}

	token, err := s.auth.GenerateToken(session)
	if err != nil {
		return models.Session{}, "", err
	}

	s.mu.Lock()
	s.sessions[session.JTI] = session
	s.mu.Unlock()

	return session, token, nil
}

// Logout drops the session. Tokens carrying its jti stop working even
// though the JWT itself has not expired.
func (s *Service) Logout(ctx context.Context, jti string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[jti]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, jti)
	return nil
}

// Authenticate verifies the token signature and that its session is
// still live.
func (s *Service) Authenticate(tokenStr string) (models.Session, error) {
	claims, err := s.auth.ParseToken(tokenStr)
	if err != nil {
		return models.Session{}, ErrAuthentication
	}

	s.mu.RLock()
	session, ok := s.sessions[claims.ID]
	s.mu.RUnlock()
	if !ok {
		return models.Session{}, ErrSessionNotFound
	}
	return session, nil
}
