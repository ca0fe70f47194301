package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Employee is a directory entry. EmployeeID is the external-facing identifier
// printed on badges; ID is the storage key everything else references.
type Employee struct {
	ID         uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	EmployeeID string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"employeeId"`
	FullName   string    `gorm:"type:varchar(255);not null" json:"fullName"`
	Email      string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Department string    `gorm:"type:varchar(255);not null" json:"department"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
