package entity

import "github.com/google/uuid"

// Profile holds the identity fields shared by every profile kind.
// AccountID and PhotoID are unique across all kinds, not per table;
// the uniqueness probe lives in the profile repository.
type Profile struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	FirstName  string     `gorm:"type:varchar(1024);not null" json:"first_name"`
	LastName   string     `gorm:"type:varchar(1024);not null" json:"last_name"`
	MiddleName *string    `gorm:"type:varchar(1024)" json:"middle_name,omitempty"`
	AccountID  *uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"account_id,omitempty"`
	PhotoID    *uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"photo_id,omitempty"`
}
