package models

import "time"

type Status string

const (
	StatusPending   Status = "pending"
	StatusInReview  Status = "in_review"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// IsTerminal reports whether no transition may leave the status.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted
}

// AllowedTransition reports whether a task may move from one status to
// another. Submission covers both the pending and failed cases; review
// outcomes only ever leave in_review.
func AllowedTransition(from, to Status) bool {
	switch from {
	case StatusPending:
		return to == StatusInReview
	case StatusInReview:
		return to == StatusCompleted || to == StatusFailed
	case StatusFailed:
		return to == StatusInReview
	default:
		return false
	}
}

type Task struct {
	ID          int64     `json:"id"`
	EmployeeID  int64     `json:"employee_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	AssignedAt  time.Time `json:"assigned_at"`
}

type AssignTaskRequest struct {
	EmployeeID  int64  `json:"employee_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Summary holds the dashboard counters: tasks per status plus how many
// were assigned on the current calendar day.
type Summary struct {
	Pending       int `json:"pending"`
	InReview      int `json:"in_review"`
	Completed     int `json:"completed"`
	Failed        int `json:"failed"`
	AssignedToday int `json:"assigned_today"`
	Total         int `json:"total"`
}
