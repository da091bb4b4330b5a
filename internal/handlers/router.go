package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(h *Handler) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Logger)

	router.Post("/login", h.Login)

	router.Group(func(r chi.Router) {
		r.Use(h.AuthMiddleware)

		r.Post("/logout", h.Logout)

		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", h.ListTasks)
			r.Get("/{id}", h.GetTask)
			r.Post("/{id}/submit", h.SubmitTask)
			r.Post("/{id}/resubmit", h.ResubmitTask)
			r.Post("/{id}/approve", h.ApproveTask)
			r.Post("/{id}/reject", h.RejectTask)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(h.AdminOnly)
			r.Get("/employees", h.ListEmployees)
			r.Get("/employees/{employeeID}", h.GetEmployee)
			r.Get("/employees/{employeeID}/tasks", h.ListEmployeeTasks)
			r.Post("/tasks", h.AssignTask)
			r.Get("/tasks", h.ListAllTasks)
			r.Get("/summary", h.Summary)
			r.Get("/report", h.Report)
		})
	})

	return router
}
