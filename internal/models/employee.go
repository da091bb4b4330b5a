package models

import "github.com/golang-jwt/jwt/v5"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

type Employee struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Salary       int64  `json:"salary"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token      string `json:"token"`
	Role       Role   `json:"role"`
	EmployeeID int64  `json:"employee_id,omitempty"`
}

// Session is one logged-in actor. EmployeeID is zero for the admin.
type Session struct {
	JTI        string `json:"-"`
	Role       Role   `json:"role"`
	EmployeeID int64  `json:"employee_id,omitempty"`
	Name       string `json:"name"`
}

type Claims struct {
	EmployeeID int64  `json:"employee_id"`
	Role       Role   `json:"role"`
	Name       string `json:"name"`
	jwt.RegisteredClaims
}
