package services

import (
	"fmt"
	"time"

	"github.com/hrmslite/hrms-lite-api/internal/constants"
	"github.com/hrmslite/hrms-lite-api/internal/dto"
	"github.com/hrmslite/hrms-lite-api/internal/models"
	"github.com/hrmslite/hrms-lite-api/internal/repository"
)

const recentEmployeeLimit = 5

// DashboardService computes read-only rollups over the directory and ledger.
type DashboardService struct {
	employeeRepo   repository.EmployeeRepository
	attendanceRepo repository.AttendanceRepository
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(employeeRepo repository.EmployeeRepository, attendanceRepo repository.AttendanceRepository) *DashboardService {
	return &DashboardService{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
	}
}

// Summary aggregates today's counts. notMarked is pure arithmetic over the
// other counts and can go negative when rows are inconsistent; that is not
// defended against.
func (s *DashboardService) Summary() (*dto.DashboardSummary, error) {
	today := time.Now().Format(constants.DateKeyLayout)

	totalEmployees, err := s.employeeRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count employees: %w", err)
	}

	present, err := s.attendanceRepo.CountByDateAndStatus(today, models.StatusPresent)
	if err != nil {
		return nil, fmt.Errorf("failed to count present: %w", err)
	}
	absent, err := s.attendanceRepo.CountByDateAndStatus(today, models.StatusAbsent)
	if err != nil {
		return nil, fmt.Errorf("failed to count absent: %w", err)
	}

	departmentCounts, err := s.employeeRepo.CountByDepartment()
	if err != nil {
		return nil, fmt.Errorf("failed to count departments: %w", err)
	}

	recentEmployees, err := s.employeeRepo.ListRecent(recentEmployeeLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent employees: %w", err)
	}

	marked := present + absent
	return &dto.DashboardSummary{
		Today:          today,
		TotalEmployees: totalEmployees,
		Attendance: dto.AttendanceCounts{
			TotalMarkedToday:  marked,
			TotalPresentToday: present,
			TotalAbsentToday:  absent,
			NotMarkedToday:    totalEmployees - marked,
		},
		DepartmentCounts: departmentCounts,
		RecentEmployees:  recentEmployees,
	}, nil
}
