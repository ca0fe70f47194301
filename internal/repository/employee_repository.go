package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hrmslite/hrms-lite-api/internal/database"
	"github.com/hrmslite/hrms-lite-api/internal/models"
	"github.com/hrmslite/hrms-lite-api/internal/utils"
)

// GormEmployeeRepository is a GORM implementation of EmployeeRepository
type GormEmployeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new EmployeeRepository
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &GormEmployeeRepository{db: db}
}

// Create creates a new employee
func (r *GormEmployeeRepository) Create(employee *models.Employee) error {
	return r.db.Create(employee).Error
}

// FindByID finds an employee by storage ID
func (r *GormEmployeeRepository) FindByID(id uuid.UUID) (*models.Employee, error) {
	var employee models.Employee
	if err := r.db.First(&employee, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

// FindByEmployeeID finds an employee by external identifier
func (r *GormEmployeeRepository) FindByEmployeeID(employeeID string) (*models.Employee, error) {
	var employee models.Employee
	if err := r.db.Where("employee_id = ?", employeeID).First(&employee).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

// FindByEmail finds an employee by lowercased email
func (r *GormEmployeeRepository) FindByEmail(email string) (*models.Employee, error) {
	var employee models.Employee
	if err := r.db.Where("email = ?", email).First(&employee).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

// List retrieves employees newest first, optionally paginated
func (r *GormEmployeeRepository) List(params *utils.PaginationParams) ([]models.Employee, int64, error) {
	var total int64
	if err := r.db.Model(&models.Employee{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := r.db.Order("created_at desc")
	if params != nil {
		query = query.Scopes(database.Paginate(*params))
	}

	var employees []models.Employee
	if err := query.Find(&employees).Error; err != nil {
		return nil, 0, err
	}
	return employees, total, nil
}

// ListRecent retrieves the most recently created employees
func (r *GormEmployeeRepository) ListRecent(limit int) ([]models.Employee, error) {
	var employees []models.Employee
	if err := r.db.Order("created_at desc").Limit(limit).Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

// Count counts all employees
func (r *GormEmployeeRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Employee{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByDepartment groups employee counts per department, largest first
func (r *GormEmployeeRepository) CountByDepartment() ([]DepartmentCount, error) {
	var counts []DepartmentCount
	err := r.db.Model(&models.Employee{}).
		Select("department, count(*) as count").
		Group("department").
		Order("count desc").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

// DeleteWithAttendance deletes an employee and every attendance row
// referencing it. Both deletes run in one transaction so no attendance row
// can outlive its employee.
func (r *GormEmployeeRepository) DeleteWithAttendance(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("employee_id = ?", id).Delete(&models.Attendance{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Employee{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
