package dto

import "github.com/google/uuid"

// Request DTOs

type ReceptionistCreateRequest struct {
	ProfileCreateRequest
	OfficeID uuid.UUID `json:"office_id" validate:"required"`
}

type ReceptionistUpdateRequest struct {
	ProfileUpdateRequest
	OfficeID uuid.UUID `json:"office_id" validate:"required"`
}

// Response DTOs

type ReceptionistResponse struct {
	ID         uuid.UUID  `json:"id"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	MiddleName *string    `json:"middle_name,omitempty"`
	AccountID  *uuid.UUID `json:"account_id,omitempty"`
	PhotoID    *uuid.UUID `json:"photo_id,omitempty"`
	OfficeID   uuid.UUID  `json:"office_id"`
}

type ReceptionistListResponse struct {
	Receptionists []ReceptionistResponse `json:"receptionists"`
	Total         int                    `json:"total"`
}
