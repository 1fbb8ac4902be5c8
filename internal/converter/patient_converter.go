package converter

import (
	"time"

	"clinic-profiles-service/internal/delivery/dto"
	"clinic-profiles-service/internal/domain/entity"
)

// PatientCreateRequestToEntity maps a validated creation request to a new
// Patient entity. The caller assigns the id.
func PatientCreateRequestToEntity(req *dto.PatientCreateRequest) *entity.Patient {
	dateOfBirth, _ := time.Parse(dateLayout, req.DateOfBirth)

	return &entity.Patient{
		Profile: entity.Profile{
			FirstName:  req.FirstName,
			LastName:   req.LastName,
			MiddleName: req.MiddleName,
			AccountID:  req.AccountID,
			PhotoID:    req.PhotoID,
		},
		DateOfBirth:       dateOfBirth,
		IsLinkedToAccount: req.IsLinkedToAccount,
	}
}

// ApplyPatientUpdate copies the updatable fields from a validated update
// request onto a loaded patient. The account link is only mutated through
// LinkAccount.
func ApplyPatientUpdate(patient *entity.Patient, req *dto.PatientUpdateRequest) {
	dateOfBirth, _ := time.Parse(dateLayout, req.DateOfBirth)

	patient.FirstName = req.FirstName
	patient.LastName = req.LastName
	patient.MiddleName = req.MiddleName
	patient.PhotoID = req.PhotoID
	patient.DateOfBirth = dateOfBirth
}

// PatientToResponse converts a Patient entity to its response DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:                patient.ID,
		FirstName:         patient.FirstName,
		LastName:          patient.LastName,
		MiddleName:        patient.MiddleName,
		AccountID:         patient.AccountID,
		PhotoID:           patient.PhotoID,
		DateOfBirth:       patient.DateOfBirth.Format(dateLayout),
		IsLinkedToAccount: patient.IsLinkedToAccount,
	}
}

// PatientsToResponses converts a slice of Patient entities to response DTOs
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}
