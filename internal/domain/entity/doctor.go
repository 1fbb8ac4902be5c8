package entity

import (
	"time"

	"github.com/google/uuid"
)

type DoctorStatus string

const (
	DoctorStatusInactive        DoctorStatus = "Inactive"
	DoctorStatusAtWork          DoctorStatus = "AtWork"
	DoctorStatusOnVacation      DoctorStatus = "OnVacation"
	DoctorStatusSickDay         DoctorStatus = "SickDay"
	DoctorStatusSickLeave       DoctorStatus = "SickLeave"
	DoctorStatusSelfIsolation   DoctorStatus = "SelfIsolation"
	DoctorStatusLeaveWithoutPay DoctorStatus = "LeaveWithoutPay"
)

// Valid reports whether s is one of the defined status members.
func (s DoctorStatus) Valid() bool {
	switch s {
	case DoctorStatusInactive, DoctorStatusAtWork, DoctorStatusOnVacation,
		DoctorStatusSickDay, DoctorStatusSickLeave, DoctorStatusSelfIsolation,
		DoctorStatusLeaveWithoutPay:
		return true
	}
	return false
}

// Doctor represents a doctor profile. Doctors are never deleted.
type Doctor struct {
	Profile          `gorm:"embedded"`
	DateOfBirth      time.Time    `gorm:"type:date;not null" json:"date_of_birth"`
	SpecializationID uuid.UUID    `gorm:"type:uuid;not null;index" json:"specialization_id"`
	OfficeID         uuid.UUID    `gorm:"type:uuid;not null;index" json:"office_id"`
	CareerStartYear  int          `gorm:"not null" json:"career_start_year"`
	Status           DoctorStatus `gorm:"type:varchar(20);not null" json:"status"`
}

func (Doctor) TableName() string {
	return "doctors"
}
