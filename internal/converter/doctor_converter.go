package converter

import (
	"time"

	"clinic-profiles-service/internal/delivery/dto"
	"clinic-profiles-service/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// DoctorCreateRequestToEntity maps a validated creation request to a new
// Doctor entity. The caller assigns the id and the initial status.
func DoctorCreateRequestToEntity(req *dto.DoctorCreateRequest) *entity.Doctor {
	dateOfBirth, _ := time.Parse(dateLayout, req.DateOfBirth)

	return &entity.Doctor{
		Profile: entity.Profile{
			FirstName:  req.FirstName,
			LastName:   req.LastName,
			MiddleName: req.MiddleName,
			AccountID:  req.AccountID,
			PhotoID:    req.PhotoID,
		},
		DateOfBirth:      dateOfBirth,
		SpecializationID: req.SpecializationID,
		OfficeID:         req.OfficeID,
		CareerStartYear:  req.CareerStartYear,
	}
}

// ApplyDoctorUpdate copies the updatable fields from a validated update
// request onto a loaded doctor. Id, account reference and status are never
// touched here.
func ApplyDoctorUpdate(doctor *entity.Doctor, req *dto.DoctorUpdateRequest) {
	dateOfBirth, _ := time.Parse(dateLayout, req.DateOfBirth)

	doctor.FirstName = req.FirstName
	doctor.LastName = req.LastName
	doctor.MiddleName = req.MiddleName
	doctor.PhotoID = req.PhotoID
	doctor.DateOfBirth = dateOfBirth
	doctor.SpecializationID = req.SpecializationID
	doctor.OfficeID = req.OfficeID
	doctor.CareerStartYear = req.CareerStartYear
}

// DoctorToResponse converts a Doctor entity to its response DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:               doctor.ID,
		FirstName:        doctor.FirstName,
		LastName:         doctor.LastName,
		MiddleName:       doctor.MiddleName,
		AccountID:        doctor.AccountID,
		PhotoID:          doctor.PhotoID,
		DateOfBirth:      doctor.DateOfBirth.Format(dateLayout),
		SpecializationID: doctor.SpecializationID,
		OfficeID:         doctor.OfficeID,
		CareerStartYear:  doctor.CareerStartYear,
		Status:           string(doctor.Status),
	}
}

// DoctorsToResponses converts a slice of Doctor entities to response DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}
