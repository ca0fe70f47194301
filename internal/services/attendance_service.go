package services

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hrmslite/hrms-lite-api/internal/models"
	"github.com/hrmslite/hrms-lite-api/internal/repository"
	"github.com/hrmslite/hrms-lite-api/internal/utils"
)

var (
	ErrAttendanceFields   = errors.New("All fields are required: employeeId, date, status")
	ErrInvalidStatus      = errors.New("Status must be 'Present' or 'Absent'")
	ErrInvalidDate        = errors.New("Date must be in YYYY-MM-DD format")
	ErrAttendanceNotFound = errors.New("Attendance record not found")
)

// dateKeyPattern only checks the shape of the day key. "2024-02-31" passes;
// calendar validity is not enforced.
var dateKeyPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// AttendanceService handles the attendance ledger business logic.
type AttendanceService struct {
	attendanceRepo repository.AttendanceRepository
	employeeRepo   repository.EmployeeRepository
}

// NewAttendanceService creates a new AttendanceService.
func NewAttendanceService(attendanceRepo repository.AttendanceRepository, employeeRepo repository.EmployeeRepository) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// MarkInput is one mark request. EmployeeID is the storage ID of the
// employee, as a string straight from the request body.
type MarkInput struct {
	EmployeeID string
	Date       string
	Status     string
}

// MarkResult reports whether the mark created a new record or overwrote an
// existing one for the same (employee, date) key.
type MarkResult struct {
	Created bool               `json:"created"`
	Record  *models.Attendance `json:"attendance"`
}

// Mark upserts one employee's status for one day. Validation failures are
// reported in a fixed order: missing fields, bad status, bad date shape,
// unknown employee. Two marks for the same key always end in one record
// holding the later status; a concurrent insert that loses the race against
// the composite unique index is retried as an update.
func (s *AttendanceService) Mark(input MarkInput) (*MarkResult, error) {
	if input.EmployeeID == "" || input.Date == "" || input.Status == "" {
		return nil, ErrAttendanceFields
	}
	status := models.AttendanceStatus(input.Status)
	if !models.ValidAttendanceStatus(status) {
		return nil, ErrInvalidStatus
	}
	if !dateKeyPattern.MatchString(input.Date) {
		return nil, ErrInvalidDate
	}

	employeeID, err := uuid.Parse(input.EmployeeID)
	if err != nil {
		return nil, ErrEmployeeNotFound
	}
	employee, err := s.employeeRepo.FindByID(employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to find employee: %w", err)
	}

	existing, err := s.attendanceRepo.FindByEmployeeAndDate(employeeID, input.Date)
	if err == nil {
		return s.overwrite(existing, status, employee)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up attendance: %w", err)
	}

	record := &models.Attendance{
		EmployeeID: employeeID,
		Date:       input.Date,
		Status:     status,
		MarkedAt:   time.Now(),
	}
	if err := s.attendanceRepo.Create(record); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the race to a concurrent mark for the same key. The second
			// writer wins: take over the existing row as an update.
			existing, ferr := s.attendanceRepo.FindByEmployeeAndDate(employeeID, input.Date)
			if ferr != nil {
				return nil, fmt.Errorf("failed to re-read attendance after conflict: %w", ferr)
			}
			return s.overwrite(existing, status, employee)
		}
		return nil, fmt.Errorf("failed to create attendance: %w", err)
	}

	record.Employee = employee
	return &MarkResult{Created: true, Record: record}, nil
}

func (s *AttendanceService) overwrite(record *models.Attendance, status models.AttendanceStatus, employee *models.Employee) (*MarkResult, error) {
	record.Status = status
	record.MarkedAt = time.Now()
	if err := s.attendanceRepo.Update(record); err != nil {
		return nil, fmt.Errorf("failed to update attendance: %w", err)
	}
	record.Employee = employee
	return &MarkResult{Created: false, Record: record}, nil
}

// ListAll retrieves attendance records, optionally filtered to one day and
// optionally paginated, ordered by (date desc, marked_at desc).
func (s *AttendanceService) ListAll(date string, params *utils.PaginationParams) ([]models.Attendance, int64, error) {
	records, total, err := s.attendanceRepo.List(repository.AttendanceFilter{
		Date:       date,
		Pagination: params,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance: %w", err)
	}
	return records, total, nil
}

// EmployeeAttendanceSummary is one employee's ledger with totals.
type EmployeeAttendanceSummary struct {
	Employee     *models.Employee    `json:"employee"`
	TotalDays    int                 `json:"totalDays"`
	TotalPresent int                 `json:"totalPresent"`
	TotalAbsent  int                 `json:"totalAbsent"`
	Records      []models.Attendance `json:"records"`
}

// ListForEmployee retrieves one employee's records with present/absent totals.
func (s *AttendanceService) ListForEmployee(id, date string) (*EmployeeAttendanceSummary, error) {
	employeeID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrEmployeeNotFound
	}
	employee, err := s.employeeRepo.FindByID(employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to find employee: %w", err)
	}

	records, err := s.attendanceRepo.ListForEmployee(employeeID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	totalPresent := 0
	for _, record := range records {
		if record.Status == models.StatusPresent {
			totalPresent++
		}
	}

	return &EmployeeAttendanceSummary{
		Employee:     employee,
		TotalDays:    len(records),
		TotalPresent: totalPresent,
		TotalAbsent:  len(records) - totalPresent,
		Records:      records,
	}, nil
}

// Delete removes one attendance record by ID.
func (s *AttendanceService) Delete(id string) error {
	recordID, err := uuid.Parse(id)
	if err != nil {
		return ErrAttendanceNotFound
	}
	if err := s.attendanceRepo.Delete(recordID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAttendanceNotFound
		}
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	return nil
}
