package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"staffboard/internal/config"
	"staffboard/internal/handlers"
	"staffboard/internal/report"
	"staffboard/internal/service/auth"
	"staffboard/internal/service/tasks"
	"staffboard/internal/store/memory"
	"staffboard/internal/utils"
)

func main() {
	_ = godotenv.Load()

	cfg := config.MustLoad()
	log.Printf("loaded %d seed employees", len(cfg.Employees))

	employeeStore, err := memory.NewEmployeeStore(cfg.Employees)
	if err != nil {
		log.Fatalf("failed to seed employees: %v", err)
	}
	taskStore := memory.NewTaskStore()

	adminHash, err := utils.HashPassword(cfg.Admin.Password)
	if err != nil {
		log.Fatalf("failed to hash admin password: %v", err)
	}

	authManager := utils.NewAuthManager(cfg.AuthConfig.JWTSecret, cfg.AuthConfig.TokenTTL)
	authService := auth.NewService(employeeStore, authManager, cfg.Admin.Email, adminHash)
	taskService := tasks.NewService(taskStore, employeeStore)
	exporter := report.NewExporter(taskService, employeeStore)

	h := handlers.NewHandler(authService, taskService, employeeStore, exporter)
	router := handlers.NewRouter(h)

	log.Print("start listening")
	log.Fatal(http.ListenAndServe("[::]:"+cfg.ServerConfig.Port, router))
}
