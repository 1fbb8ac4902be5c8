package dto

import "github.com/google/uuid"

// Base rule sets shared by every profile kind. Per-kind requests embed these
// and layer their own rules on top.

type ProfileCreateRequest struct {
	FirstName  string     `json:"first_name" validate:"required,min=2,max=1024"`
	LastName   string     `json:"last_name" validate:"required,min=2,max=1024"`
	MiddleName *string    `json:"middle_name" validate:"omitempty,min=2,max=1024"`
	AccountID  *uuid.UUID `json:"account_id" validate:"omitempty,non_nil_uuid"`
	PhotoID    *uuid.UUID `json:"photo_id" validate:"omitempty,non_nil_uuid"`
}

type ProfileUpdateRequest struct {
	FirstName  string     `json:"first_name" validate:"required,min=2,max=1024"`
	LastName   string     `json:"last_name" validate:"required,min=2,max=1024"`
	MiddleName *string    `json:"middle_name" validate:"omitempty,min=2,max=1024"`
	PhotoID    *uuid.UUID `json:"photo_id" validate:"omitempty,non_nil_uuid"`
}
