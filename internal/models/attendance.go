package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "Present"
	StatusAbsent  AttendanceStatus = "Absent"
)

// ValidAttendanceStatus reports whether s is a known attendance status.
func ValidAttendanceStatus(s AttendanceStatus) bool {
	return s == StatusPresent || s == StatusAbsent
}

// Attendance holds one employee's status for one calendar day. Date is the
// opaque "YYYY-MM-DD" key; the composite unique index keeps at most one row
// per (employee, date).
type Attendance struct {
	ID         uuid.UUID        `gorm:"type:char(36);primaryKey" json:"id"`
	EmployeeID uuid.UUID        `gorm:"type:char(36);not null;uniqueIndex:idx_attendance_employee_date" json:"employeeId"`
	Date       string           `gorm:"type:varchar(10);not null;uniqueIndex:idx_attendance_employee_date" json:"date"`
	Status     AttendanceStatus `gorm:"type:varchar(10);not null" json:"status"`
	MarkedAt   time.Time        `json:"markedAt"`

	// Relations
	Employee *Employee `gorm:"belongsTo:Employee;foreignKey:EmployeeID;references:ID" json:"employee,omitempty"`
}

func (a *Attendance) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
