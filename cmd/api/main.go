package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/klipper-hq/klipper-backend-go/internal/config"
	appHTTP "github.com/klipper-hq/klipper-backend-go/internal/handler/http"
	"github.com/klipper-hq/klipper-backend-go/internal/pkg/database"
	"github.com/klipper-hq/klipper-backend-go/internal/pkg/jwt"
	"github.com/klipper-hq/klipper-backend-go/internal/repository/postgresql"
	attendanceService "github.com/klipper-hq/klipper-backend-go/internal/service/attendance"
	authService "github.com/klipper-hq/klipper-backend-go/internal/service/auth"
	leaveService "github.com/klipper-hq/klipper-backend-go/internal/service/leave"
	regularizationService "github.com/klipper-hq/klipper-backend-go/internal/service/regularization"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(context.Background(), cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	accessEventRepo := postgresql.NewAccessEventRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db, cfg.Shift.Start, cfg.Shift.End)
	leaveRepo := postgresql.NewLeaveRepository(db)
	regularizationRepo := postgresql.NewRegularizationRepository(db)
	userRepo := postgresql.NewUserRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	attendanceSvc := attendanceService.NewAttendanceService(
		accessEventRepo,
		employeeRepo,
		departmentRepo,
		leaveRepo,
		regularizationRepo,
	)
	leaveSvc := leaveService.NewLeaveService(leaveRepo)
	regularizationSvc := regularizationService.NewRegularizationService(regularizationRepo)
	authSvc := authService.NewAuthService(userRepo, JWTService)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	regularizationHandler := appHTTP.NewRegularizationHandler(regularizationSvc)

	router := appHTTP.NewRouter(
		JWTService,
		cfg.App.Env,
		authHandler,
		attendanceHandler,
		leaveHandler,
		regularizationHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
