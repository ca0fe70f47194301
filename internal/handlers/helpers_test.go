package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/hrmslite/hrms-lite-api/internal/auth"
	apierrors "github.com/hrmslite/hrms-lite-api/internal/errors"
	"github.com/hrmslite/hrms-lite-api/internal/middleware"
	"github.com/hrmslite/hrms-lite-api/internal/models"
	"github.com/hrmslite/hrms-lite-api/internal/repository"
	"github.com/hrmslite/hrms-lite-api/internal/services"
)

const testSecret = "handlers-test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

// envelope mirrors the uniform response body for assertions.
type envelope struct {
	Success bool            `json:"success"`
	Msg     string          `json:"msg"`
	Data    json.RawMessage `json:"data"`
}

type testEnv struct {
	db                *gorm.DB
	router            *gin.Engine
	authService       *services.AuthService
	employeeService   *services.EmployeeService
	attendanceService *services.AttendanceService
}

// setupTestEnv builds the whole stack on an in-memory database with the same
// wiring as cmd/server.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Employee{},
		&models.Attendance{},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	userRepo := repository.NewUserRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)

	authService := services.NewAuthService(userRepo)
	employeeService := services.NewEmployeeService(employeeRepo)
	attendanceService := services.NewAttendanceService(attendanceRepo, employeeRepo)
	dashboardService := services.NewDashboardService(employeeRepo, attendanceRepo)

	authHandler := NewAuthHandler(authService, testSecret)
	employeeHandler := NewEmployeeHandler(employeeService)
	attendanceHandler := NewAttendanceHandler(attendanceService)
	dashboardHandler := NewDashboardHandler(dashboardService)

	r := gin.New()
	r.NoRoute(func(c *gin.Context) {
		apierrors.NotFound(c, "Route not found")
	})

	requireAuth := middleware.RequireAuth(testSecret)

	api := r.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.GET("/profile", requireAuth, authHandler.Profile)
			authRoutes.GET("/users", requireAuth, middleware.Require(middleware.PermViewUsers), authHandler.ListUsers)
			authRoutes.PUT("/change-password", requireAuth, authHandler.ChangePassword)
		}

		api.GET("/dashboard", requireAuth, dashboardHandler.Summary)

		employees := api.Group("/employees")
		employees.Use(requireAuth)
		{
			employees.POST("", middleware.Require(middleware.PermManageEmployees), employeeHandler.Create)
			employees.GET("", employeeHandler.List)
			employees.GET("/:id", employeeHandler.Get)
			employees.DELETE("/:id", middleware.Require(middleware.PermManageEmployees), employeeHandler.Delete)
		}

		attendance := api.Group("/attendance")
		attendance.Use(requireAuth)
		{
			attendance.POST("", attendanceHandler.Mark)
			attendance.GET("", attendanceHandler.List)
			attendance.GET("/employee/:id", attendanceHandler.ForEmployee)
			attendance.DELETE("/:id", attendanceHandler.Delete)
		}
	}

	return &testEnv{
		db:                db,
		router:            r,
		authService:       authService,
		employeeService:   employeeService,
		attendanceService: attendanceService,
	}
}

// tokenFor registers an account with the given role and returns its token.
func (env *testEnv) tokenFor(t *testing.T, email string, role models.Role) string {
	t.Helper()

	user, err := env.authService.Register(services.RegisterInput{
		Name:     "Test User",
		Email:    email,
		Password: "supersecret",
		Role:     role,
	})
	require.NoError(t, err)

	token, err := auth.Issue(testSecret, user)
	require.NoError(t, err)
	return token
}

// request runs one request through the test router. A non-empty token is
// attached as a Bearer header.
func (env *testEnv) request(t *testing.T, method, url string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()

	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func markInput(employeeID, date, status string) services.MarkInput {
	return services.MarkInput{EmployeeID: employeeID, Date: date, Status: status}
}

func (env *testEnv) createEmployee(t *testing.T, employeeID, email string) *models.Employee {
	t.Helper()

	employee, err := env.employeeService.Create(services.CreateEmployeeInput{
		EmployeeID: employeeID,
		FullName:   "Test Employee",
		Email:      email,
		Department: "Engineering",
	})
	require.NoError(t, err)
	return employee
}
