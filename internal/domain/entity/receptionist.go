package entity

import "github.com/google/uuid"

// Receptionist represents a receptionist profile. No status field.
type Receptionist struct {
	Profile  `gorm:"embedded"`
	OfficeID uuid.UUID `gorm:"type:uuid;not null;index" json:"office_id"`
}

func (Receptionist) TableName() string {
	return "receptionists"
}
