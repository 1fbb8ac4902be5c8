package dto

import "github.com/google/uuid"

// Request DTOs

type PatientCreateRequest struct {
	ProfileCreateRequest
	DateOfBirth       string `json:"date_of_birth" validate:"required,datetime=2006-01-02,age_range"`
	IsLinkedToAccount bool   `json:"is_linked_to_account" validate:"linked_to_account"`
}

type PatientUpdateRequest struct {
	ProfileUpdateRequest
	DateOfBirth string `json:"date_of_birth" validate:"required,datetime=2006-01-02,age_range"`
}

type LinkAccountRequest struct {
	AccountID uuid.UUID `json:"account_id" validate:"required"`
}

// Response DTOs

type PatientResponse struct {
	ID                uuid.UUID  `json:"id"`
	FirstName         string     `json:"first_name"`
	LastName          string     `json:"last_name"`
	MiddleName        *string    `json:"middle_name,omitempty"`
	AccountID         *uuid.UUID `json:"account_id,omitempty"`
	PhotoID           *uuid.UUID `json:"photo_id,omitempty"`
	DateOfBirth       string     `json:"date_of_birth"`
	IsLinkedToAccount bool       `json:"is_linked_to_account"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
