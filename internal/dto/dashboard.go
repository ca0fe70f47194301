package dto

import (
	"github.com/hrmslite/hrms-lite-api/internal/models"
	"github.com/hrmslite/hrms-lite-api/internal/repository"
)

// AttendanceCounts holds today's marking totals.
type AttendanceCounts struct {
	TotalMarkedToday  int64 `json:"totalMarkedToday"`
	TotalPresentToday int64 `json:"totalPresentToday"`
	TotalAbsentToday  int64 `json:"totalAbsentToday"`
	NotMarkedToday    int64 `json:"notMarkedToday"`
}

// DashboardSummary is the aggregated dashboard payload.
type DashboardSummary struct {
	Today            string                       `json:"today"`
	TotalEmployees   int64                        `json:"totalEmployees"`
	Attendance       AttendanceCounts             `json:"attendance"`
	DepartmentCounts []repository.DepartmentCount `json:"departmentCounts"`
	RecentEmployees  []models.Employee            `json:"recentEmployees"`
}
