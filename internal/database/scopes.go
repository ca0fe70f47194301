package database

import (
	"gorm.io/gorm"

	"github.com/hrmslite/hrms-lite-api/internal/utils"
)

// Paginate applies pagination to a GORM query
func Paginate(params utils.PaginationParams) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(params.Offset).Limit(params.Limit)
	}
}

// ByDate filters attendance rows to one calendar-day key when date is set
func ByDate(date string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if date == "" {
			return db
		}
		return db.Where("date = ?", date)
	}
}
