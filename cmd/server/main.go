package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hrmslite/hrms-lite-api/internal/config"
	"github.com/hrmslite/hrms-lite-api/internal/database"
	apierrors "github.com/hrmslite/hrms-lite-api/internal/errors"
	"github.com/hrmslite/hrms-lite-api/internal/handlers"
	"github.com/hrmslite/hrms-lite-api/internal/middleware"
	"github.com/hrmslite/hrms-lite-api/internal/repository"
	"github.com/hrmslite/hrms-lite-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database and run migrations
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db, cfg.DBDriver); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	employeeService := services.NewEmployeeService(employeeRepo)
	attendanceService := services.NewAttendanceService(attendanceRepo, employeeRepo)
	dashboardService := services.NewDashboardService(employeeRepo, attendanceRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, cfg.JWTSecret)
	employeeHandler := handlers.NewEmployeeHandler(employeeService)
	attendanceHandler := handlers.NewAttendanceHandler(attendanceService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Initialize Gin router; the recovery handler answers with the JSON
	// envelope so panics never leak a stack trace to clients.
	r := gin.New()
	r.Use(gin.Logger(), gin.CustomRecovery(func(c *gin.Context, _ any) {
		apierrors.InternalError(c, "Internal server error")
		c.Abort()
	}))
	r.NoRoute(func(c *gin.Context) {
		apierrors.NotFound(c, "Route not found")
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		apierrors.Success(c, http.StatusOK, "HRMS Lite API is running", nil)
	})

	requireAuth := middleware.RequireAuth(cfg.JWTSecret)

	// API routes
	api := r.Group("/api")
	{
		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/profile", requireAuth, authHandler.Profile)
			auth.GET("/users", requireAuth, middleware.Require(middleware.PermViewUsers), authHandler.ListUsers)
			auth.PUT("/change-password", requireAuth, authHandler.ChangePassword)
		}

		// Dashboard route
		api.GET("/dashboard", requireAuth, dashboardHandler.Summary)

		// Employee routes
		employees := api.Group("/employees")
		employees.Use(requireAuth)
		{
			employees.POST("", middleware.Require(middleware.PermManageEmployees), employeeHandler.Create)
			employees.GET("", employeeHandler.List)
			employees.GET("/:id", employeeHandler.Get)
			employees.DELETE("/:id", middleware.Require(middleware.PermManageEmployees), employeeHandler.Delete)
		}

		// Attendance routes
		attendance := api.Group("/attendance")
		attendance.Use(requireAuth)
		{
			attendance.POST("", attendanceHandler.Mark)
			attendance.GET("", attendanceHandler.List)
			attendance.GET("/employee/:id", attendanceHandler.ForEmployee)
			attendance.DELETE("/:id", attendanceHandler.Delete)
		}
	}

	// Start server with graceful shutdown; the database handle is closed
	// after the last in-flight request finishes.
	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	go func() {
		log.Printf("HRMS Lite server running on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	log.Println("Server stopped")
}
