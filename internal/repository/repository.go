package repository

import (
	"github.com/google/uuid"

	"github.com/hrmslite/hrms-lite-api/internal/models"
	"github.com/hrmslite/hrms-lite-api/internal/utils"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uuid.UUID) (*models.User, error)

	// FindByEmail finds a user by lowercased email
	FindByEmail(email string) (*models.User, error)

	// List retrieves all users, newest first
	List() ([]models.User, error)

	// Update persists changes to a user
	Update(user *models.User) error
}

// EmployeeRepository defines the interface for employee data access
type EmployeeRepository interface {
	// Create creates a new employee
	Create(employee *models.Employee) error

	// FindByID finds an employee by storage ID
	FindByID(id uuid.UUID) (*models.Employee, error)

	// FindByEmployeeID finds an employee by external identifier
	FindByEmployeeID(employeeID string) (*models.Employee, error)

	// FindByEmail finds an employee by lowercased email
	FindByEmail(email string) (*models.Employee, error)

	// List retrieves employees newest first, optionally paginated
	List(params *utils.PaginationParams) ([]models.Employee, int64, error)

	// ListRecent retrieves the most recently created employees
	ListRecent(limit int) ([]models.Employee, error)

	// Count counts all employees
	Count() (int64, error)

	// CountByDepartment groups employee counts per department
	CountByDepartment() ([]DepartmentCount, error)

	// DeleteWithAttendance deletes an employee and every attendance row
	// referencing it within one transaction
	DeleteWithAttendance(id uuid.UUID) error
}

// DepartmentCount is one row of the per-department rollup
type DepartmentCount struct {
	Department string `json:"department"`
	Count      int64  `json:"count"`
}

// AttendanceFilter holds filtering options for listing attendance
type AttendanceFilter struct {
	Date       string
	Pagination *utils.PaginationParams
}

// AttendanceRepository defines the interface for attendance data access
type AttendanceRepository interface {
	// Create inserts a new attendance record
	Create(record *models.Attendance) error

	// Update persists changes to an attendance record
	Update(record *models.Attendance) error

	// FindByID finds an attendance record by ID
	FindByID(id uuid.UUID) (*models.Attendance, error)

	// FindByEmployeeAndDate finds the record for one (employee, date) key
	FindByEmployeeAndDate(employeeID uuid.UUID, date string) (*models.Attendance, error)

	// List retrieves records ordered by (date desc, marked_at desc) with the
	// employee association loaded
	List(filter AttendanceFilter) ([]models.Attendance, int64, error)

	// ListForEmployee retrieves one employee's records, date desc
	ListForEmployee(employeeID uuid.UUID, date string) ([]models.Attendance, error)

	// Delete removes one record
	Delete(id uuid.UUID) error

	// CountByDateAndStatus counts records for a day with a given status
	CountByDateAndStatus(date string, status models.AttendanceStatus) (int64, error)
}
