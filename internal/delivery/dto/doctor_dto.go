package dto

import "github.com/google/uuid"

// Request DTOs

type DoctorCreateRequest struct {
	ProfileCreateRequest
	DateOfBirth      string    `json:"date_of_birth" validate:"required,datetime=2006-01-02,age_range"`
	SpecializationID uuid.UUID `json:"specialization_id" validate:"required"`
	OfficeID         uuid.UUID `json:"office_id" validate:"required"`
	CareerStartYear  int       `json:"career_start_year" validate:"required"`
}

type DoctorUpdateRequest struct {
	ProfileUpdateRequest
	DateOfBirth      string    `json:"date_of_birth" validate:"required,datetime=2006-01-02,age_range"`
	SpecializationID uuid.UUID `json:"specialization_id" validate:"required"`
	OfficeID         uuid.UUID `json:"office_id" validate:"required"`
	CareerStartYear  int       `json:"career_start_year" validate:"required,career_start"`
}

type ChangeDoctorStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Response DTOs

type DoctorResponse struct {
	ID               uuid.UUID  `json:"id"`
	FirstName        string     `json:"first_name"`
	LastName         string     `json:"last_name"`
	MiddleName       *string    `json:"middle_name,omitempty"`
	AccountID        *uuid.UUID `json:"account_id,omitempty"`
	PhotoID          *uuid.UUID `json:"photo_id,omitempty"`
	DateOfBirth      string     `json:"date_of_birth"`
	SpecializationID uuid.UUID  `json:"specialization_id"`
	OfficeID         uuid.UUID  `json:"office_id"`
	CareerStartYear  int        `json:"career_start_year"`
	Status           string     `json:"status"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
