package entity

import "time"

// Patient represents a patient profile.
// Invariant: IsLinkedToAccount is true iff AccountID is present.
type Patient struct {
	Profile           `gorm:"embedded"`
	DateOfBirth       time.Time `gorm:"type:date;not null" json:"date_of_birth"`
	IsLinkedToAccount bool      `gorm:"not null;default:false" json:"is_linked_to_account"`
}

func (Patient) TableName() string {
	return "patients"
}
