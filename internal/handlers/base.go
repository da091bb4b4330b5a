package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"staffboard/internal/models"
	"staffboard/internal/service/auth"
	"staffboard/internal/service/tasks"
	"staffboard/internal/store"
)

type authService interface {
	Login(ctx context.Context, email, password string) (models.Session, string, error)
	Logout(ctx context.Context, jti string) error
	Authenticate(token string) (models.Session, error)
}

type taskService interface {
	Assign(ctx context.Context, employeeID int64, title, description string) (*models.Task, error)
	Submit(ctx context.Context, id int64) (*models.Task, error)
	Resubmit(ctx context.Context, id int64) (*models.Task, error)
	Approve(ctx context.Context, id int64) (*models.Task, error)
	Reject(ctx context.Context, id int64) (*models.Task, error)
	GetByID(ctx context.Context, id int64) (*models.Task, error)
	GetByEmployee(ctx context.Context, employeeID int64) ([]models.Task, error)
	GetAll(ctx context.Context) ([]models.Task, error)
	Summary(ctx context.Context) (models.Summary, error)
}

type employeeStore interface {
	GetAll(ctx context.Context) ([]models.Employee, error)
	GetByID(ctx context.Context, id int64) (*models.Employee, error)
}

type exporter interface {
	Export(ctx context.Context, format string) ([]byte, error)
}

type Handler struct {
	AuthService authService
	TaskService taskService
	Employees   employeeStore
	Exporter    exporter
}

func NewHandler(as authService, ts taskService, es employeeStore, ex exporter) *Handler {
	return &Handler{
		AuthService: as,
		TaskService: ts,
		Employees:   es,
		Exporter:    ex,
	}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var input models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid input")
		return
	}
	session, token, err := h.AuthService.Login(r.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, auth.ErrAuthentication) {
			writeError(w, http.StatusUnauthorized, auth.ErrAuthentication.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, models.LoginResponse{
		Token:      token,
		Role:       session.Role,
		EmployeeID: session.EmployeeID,
	})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	session := sessionFrom(r.Context())
	if err := h.AuthService.Logout(r.Context(), session.JTI); err != nil {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListTasks returns the caller's tasks; the admin sees every task.
func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	session := sessionFrom(r.Context())

	var (
		list []models.Task
		err  error
	)
	if session.Role == models.RoleAdmin {
		list, err = h.TaskService.GetAll(r.Context())
	} else {
		list, err = h.TaskService.GetByEmployee(r.Context(), session.EmployeeID)
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed getting tasks")
		return
	}
	if list == nil {
		list = []models.Task{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handler) GetTask(w http.ResponseWriter, r *http.Request) {
	task, ok := h.ownTask(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (h *Handler) SubmitTask(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.TaskService.Submit)
}

func (h *Handler) ResubmitTask(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.TaskService.Resubmit)
}

func (h *Handler) ApproveTask(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.TaskService.Approve)
}

func (h *Handler) RejectTask(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.TaskService.Reject)
}

func (h *Handler) transition(w http.ResponseWriter, r *http.Request, op func(context.Context, int64) (*models.Task, error)) {
	task, ok := h.ownTask(w, r)
	if !ok {
		return
	}
	updated, err := op(r.Context(), task.ID)
	if err != nil {
		switch {
		case errors.Is(err, tasks.ErrInvalidTransition):
			writeError(w, http.StatusConflict, err.Error())
		case errors.Is(err, store.ErrNotFound):
			writeError(w, http.StatusNotFound, "task not found")
		default:
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// ownTask loads the task from the id route param and enforces that the
// caller is the assignee or the admin.
func (h *Handler) ownTask(w http.ResponseWriter, r *http.Request) (*models.Task, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid task id")
		return nil, false
	}
	task, err := h.TaskService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "task not found")
			return nil, false
		}
		writeError(w, http.StatusInternalServerError, "internal server error")
		return nil, false
	}
	session := sessionFrom(r.Context())
	if session.Role != models.RoleAdmin && task.EmployeeID != session.EmployeeID {
		writeError(w, http.StatusForbidden, "forbidden")
		return nil, false
	}
	return task, true
}

func (h *Handler) AssignTask(w http.ResponseWriter, r *http.Request) {
	var input models.AssignTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid input")
		return
	}
	task, err := h.TaskService.Assign(r.Context(), input.EmployeeID, input.Title, input.Description)
	if err != nil {
		if errors.Is(err, tasks.ErrValidation) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusCreated, task)
}

func (h *Handler) ListAllTasks(w http.ResponseWriter, r *http.Request) {
	list, err := h.TaskService.GetAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed getting tasks")
		return
	}
	if list == nil {
		list = []models.Task{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Employees.GetAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed getting employees")
		return
	}
	writeJSON(w, http.StatusOK, employees)
}

func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "employeeID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid employee id")
		return
	}
	employee, err := h.Employees.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "employee not found")
		return
	}
	writeJSON(w, http.StatusOK, employee)
}

func (h *Handler) ListEmployeeTasks(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "employeeID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid employee id")
		return
	}
	if _, err := h.Employees.GetByID(r.Context(), id); err != nil {
		writeError(w, http.StatusNotFound, "employee not found")
		return
	}
	list, err := h.TaskService.GetByEmployee(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed getting tasks")
		return
	}
	if list == nil {
		list = []models.Task{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.TaskService.Summary(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed building summary")
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}
	data, err := h.Exporter.Export(r.Context(), format)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	switch format {
	case "csv":
		w.Header().Set("Content-Type", "text/csv")
	case "pdf":
		w.Header().Set("Content-Type", "application/pdf")
	default:
		w.Header().Set("Content-Type", "application/json")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
