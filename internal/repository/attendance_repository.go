package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hrmslite/hrms-lite-api/internal/database"
	"github.com/hrmslite/hrms-lite-api/internal/models"
)

// GormAttendanceRepository is a GORM implementation of AttendanceRepository
type GormAttendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository creates a new AttendanceRepository
func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &GormAttendanceRepository{db: db}
}

// Create inserts a new attendance record. A concurrent mark for the same
// (employee, date) key surfaces here as gorm.ErrDuplicatedKey.
func (r *GormAttendanceRepository) Create(record *models.Attendance) error {
	return r.db.Create(record).Error
}

// Update persists changes to an attendance record
func (r *GormAttendanceRepository) Update(record *models.Attendance) error {
	return r.db.Save(record).Error
}

// FindByID finds an attendance record by ID
func (r *GormAttendanceRepository) FindByID(id uuid.UUID) (*models.Attendance, error) {
	var record models.Attendance
	if err := r.db.First(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// FindByEmployeeAndDate finds the record for one (employee, date) key
func (r *GormAttendanceRepository) FindByEmployeeAndDate(employeeID uuid.UUID, date string) (*models.Attendance, error) {
	var record models.Attendance
	err := r.db.Where("employee_id = ? AND date = ?", employeeID, date).First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// List retrieves records ordered by (date desc, marked_at desc) with the
// employee association loaded
func (r *GormAttendanceRepository) List(filter AttendanceFilter) ([]models.Attendance, int64, error) {
	var total int64
	err := r.db.Model(&models.Attendance{}).
		Scopes(database.ByDate(filter.Date)).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	query := r.db.Preload("Employee").
		Scopes(database.ByDate(filter.Date)).
		Order("date desc, marked_at desc")
	if filter.Pagination != nil {
		query = query.Scopes(database.Paginate(*filter.Pagination))
	}

	var records []models.Attendance
	if err := query.Find(&records).Error; err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

// ListForEmployee retrieves one employee's records, date desc
func (r *GormAttendanceRepository) ListForEmployee(employeeID uuid.UUID, date string) ([]models.Attendance, error) {
	var records []models.Attendance
	err := r.db.Where("employee_id = ?", employeeID).
		Scopes(database.ByDate(date)).
		Order("date desc").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Delete removes one record
func (r *GormAttendanceRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Attendance{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountByDateAndStatus counts records for a day with a given status
func (r *GormAttendanceRepository) CountByDateAndStatus(date string, status models.AttendanceStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Attendance{}).
		Where("date = ? AND status = ?", date, status).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
