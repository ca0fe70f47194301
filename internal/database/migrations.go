package database

import (
	"fmt"

	"gorm.io/gorm"
)

// AddIndexes adds the query indexes AutoMigrate's tags do not cover. The
// dashboard and list endpoints sort and group on these columns.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		// Employee listing and dashboard rollups
		{"employees", "idx_employees_created_at", "created_at"},
		{"employees", "idx_employees_department", "department"},

		// Attendance listing and today's counts
		{"attendances", "idx_attendances_date", "date"},
		{"attendances", "idx_attendances_marked_at", "marked_at"},
	}

	for _, idx := range indexes {
		// Check if index already exists
		var count int64
		err := db.Raw(`
			SELECT COUNT(*)
			FROM pg_indexes
			WHERE tablename = ? AND indexname = ?
		`, idx.table, idx.name).Count(&count).Error

		if err != nil {
			return fmt.Errorf("failed to check index %s: %w", idx.name, err)
		}

		if count > 0 {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
