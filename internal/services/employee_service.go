package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hrmslite/hrms-lite-api/internal/models"
	"github.com/hrmslite/hrms-lite-api/internal/repository"
	"github.com/hrmslite/hrms-lite-api/internal/utils"
)

var (
	ErrEmployeeFields       = errors.New("All fields are required: employeeId, fullName, email, department")
	ErrEmployeeInvalidEmail = errors.New("Invalid email format")
	ErrDuplicateEmployeeID  = errors.New("Employee ID already exists")
	ErrDuplicateEmail       = errors.New("Email already registered")
	ErrEmployeeNotFound     = errors.New("Employee not found")
)

// EmployeeService handles the employee directory business logic.
type EmployeeService struct {
	employeeRepo repository.EmployeeRepository
}

// NewEmployeeService creates a new EmployeeService.
func NewEmployeeService(employeeRepo repository.EmployeeRepository) *EmployeeService {
	return &EmployeeService{
		employeeRepo: employeeRepo,
	}
}

// CreateEmployeeInput represents a new directory entry.
type CreateEmployeeInput struct {
	EmployeeID string
	FullName   string
	Email      string
	Department string
}

// Create validates the input and adds an employee. EmployeeID and email
// uniqueness are checked independently so each conflict gets its own answer.
func (s *EmployeeService) Create(input CreateEmployeeInput) (*models.Employee, error) {
	employeeID := strings.TrimSpace(input.EmployeeID)
	fullName := strings.TrimSpace(input.FullName)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	department := strings.TrimSpace(input.Department)

	if employeeID == "" || fullName == "" || email == "" || department == "" {
		return nil, ErrEmployeeFields
	}
	if !emailPattern.MatchString(email) {
		return nil, ErrEmployeeInvalidEmail
	}

	if _, err := s.employeeRepo.FindByEmployeeID(employeeID); err == nil {
		return nil, ErrDuplicateEmployeeID
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check employee id: %w", err)
	}

	if _, err := s.employeeRepo.FindByEmail(email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	employee := &models.Employee{
		EmployeeID: employeeID,
		FullName:   fullName,
		Email:      email,
		Department: department,
	}

	if err := s.employeeRepo.Create(employee); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// A concurrent create slipped past the pre-checks. Re-probe to
			// report the right conflict.
			if _, ferr := s.employeeRepo.FindByEmployeeID(employeeID); ferr == nil {
				return nil, ErrDuplicateEmployeeID
			}
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	return employee, nil
}

// List retrieves employees newest first, optionally paginated.
func (s *EmployeeService) List(params *utils.PaginationParams) ([]models.Employee, int64, error) {
	employees, total, err := s.employeeRepo.List(params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, total, nil
}

// Get retrieves one employee by storage ID.
func (s *EmployeeService) Get(id uuid.UUID) (*models.Employee, error) {
	employee, err := s.employeeRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to find employee: %w", err)
	}
	return employee, nil
}

// Delete removes an employee and cascades to its attendance records.
func (s *EmployeeService) Delete(id uuid.UUID) error {
	if err := s.employeeRepo.DeleteWithAttendance(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}
