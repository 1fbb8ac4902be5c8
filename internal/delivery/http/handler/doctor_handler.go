package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"clinic-profiles-service/internal/delivery/dto"
	"clinic-profiles-service/internal/domain/entity"
	"clinic-profiles-service/internal/usecase"
	"clinic-profiles-service/pkg/response"
	"clinic-profiles-service/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
	}
}

func (h *DoctorHandler) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	var req dto.DoctorCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	doctor, err := h.doctorUsecase.CreateDoctor(r.Context(), &req)
	if err != nil {
		var vErr *validator.ValidationError
		switch {
		case errors.As(err, &vErr):
			response.ValidationError(w, vErr.Violations)
		case errors.Is(err, usecase.ErrAccountIDConflict):
			response.Conflict(w, "Account reference already linked to another profile")
		case errors.Is(err, usecase.ErrPhotoIDConflict):
			response.Conflict(w, "Photo reference already assigned to another profile")
		default:
			response.InternalServerError(w, "Failed to create doctor")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Doctor created successfully", doctor)
}

func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	doctor, err := h.doctorUsecase.GetDoctor(r.Context(), doctorID)
	if err != nil {
		if errors.Is(err, usecase.ErrDoctorNotFound) {
			response.NotFound(w, "Doctor not found")
			return
		}
		response.InternalServerError(w, "Failed to get doctor")
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}

func (h *DoctorHandler) GetAllDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.doctorUsecase.GetAllDoctors(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

func (h *DoctorHandler) UpdateDoctor(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	var req dto.DoctorUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.doctorUsecase.UpdateDoctor(r.Context(), doctorID, &req); err != nil {
		var vErr *validator.ValidationError
		switch {
		case errors.As(err, &vErr):
			response.ValidationError(w, vErr.Violations)
		case errors.Is(err, usecase.ErrDoctorNotFound):
			response.NotFound(w, "Doctor not found")
		case errors.Is(err, usecase.ErrPhotoIDConflict):
			response.Conflict(w, "Photo reference already assigned to another profile")
		default:
			response.InternalServerError(w, "Failed to update doctor")
		}
		return
	}

	response.NoContent(w)
}

func (h *DoctorHandler) ChangeDoctorStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	var req dto.ChangeDoctorStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.doctorUsecase.ChangeDoctorStatus(r.Context(), doctorID, entity.DoctorStatus(req.Status)); err != nil {
		var vErr *validator.ValidationError
		switch {
		case errors.As(err, &vErr):
			response.ValidationError(w, vErr.Violations)
		case errors.Is(err, usecase.ErrDoctorNotFound):
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to change doctor status")
		}
		return
	}

	response.NoContent(w)
}
