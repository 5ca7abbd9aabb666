package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/worklog-id/worklog-backend-go/internal/config"
	appHTTP "github.com/worklog-id/worklog-backend-go/internal/handler/http"
	"github.com/worklog-id/worklog-backend-go/internal/pkg/database"
	"github.com/worklog-id/worklog-backend-go/internal/pkg/jwt"
	"github.com/worklog-id/worklog-backend-go/internal/repository/postgresql"
	authService "github.com/worklog-id/worklog-backend-go/internal/service/auth"
	dailyLogService "github.com/worklog-id/worklog-backend-go/internal/service/dailylog"
	employeeService "github.com/worklog-id/worklog-backend-go/internal/service/employee"
	verificationService "github.com/worklog-id/worklog-backend-go/internal/service/verification"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	dailyLogRepo := postgresql.NewDailyLogRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authSvc := authService.NewAuthService(employeeRepo, jwtService)
	dailyLogSvc := dailyLogService.NewDailyLogService(dailyLogRepo)
	verificationSvc := verificationService.NewVerificationService(dailyLogRepo, employeeRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)

	router := appHTTP.NewRouter(
		cfg.App,
		jwtService,
		appHTTP.NewAuthHandler(authSvc),
		appHTTP.NewDailyLogHandler(dailyLogSvc),
		appHTTP.NewVerificationHandler(verificationSvc),
		appHTTP.NewEmployeeHandler(employeeSvc),
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Println("Server listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
