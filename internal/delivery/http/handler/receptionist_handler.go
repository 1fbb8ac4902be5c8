package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"clinic-profiles-service/internal/delivery/dto"
	"clinic-profiles-service/internal/usecase"
	"clinic-profiles-service/pkg/response"
	"clinic-profiles-service/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ReceptionistHandler struct {
	receptionistUsecase usecase.ReceptionistUsecase
}

func NewReceptionistHandler(receptionistUsecase usecase.ReceptionistUsecase) *ReceptionistHandler {
	return &ReceptionistHandler{
		receptionistUsecase: receptionistUsecase,
	}
}

func (h *ReceptionistHandler) CreateReceptionist(w http.ResponseWriter, r *http.Request) {
	var req dto.ReceptionistCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	receptionist, err := h.receptionistUsecase.CreateReceptionist(r.Context(), &req)
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
			response.InternalServerError(w, "Failed to create receptionist")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Receptionist created successfully", receptionist)
}

func (h *ReceptionistHandler) GetReceptionist(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	receptionistID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid receptionist ID", nil)
		return
	}

	receptionist, err := h.receptionistUsecase.GetReceptionist(r.Context(), receptionistID)
	if err != nil {
		if errors.Is(err, usecase.ErrReceptionistNotFound) {
			response.NotFound(w, "Receptionist not found")
			return
		}
		response.InternalServerError(w, "Failed to get receptionist")
		return
	}

	response.Success(w, http.StatusOK, "Receptionist retrieved successfully", receptionist)
}

func (h *ReceptionistHandler) GetAllReceptionists(w http.ResponseWriter, r *http.Request) {
	receptionists, err := h.receptionistUsecase.GetAllReceptionists(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get receptionists")
		return
	}

	response.Success(w, http.StatusOK, "Receptionists retrieved successfully", receptionists)
}

func (h *ReceptionistHandler) UpdateReceptionist(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	receptionistID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid receptionist ID", nil)
		return
	}

	var req dto.ReceptionistUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.receptionistUsecase.UpdateReceptionist(r.Context(), receptionistID, &req); err != nil {
		var vErr *validator.ValidationError
		switch {
		case errors.As(err, &vErr):
			response.ValidationError(w, vErr.Violations)
		case errors.Is(err, usecase.ErrReceptionistNotFound):
			response.NotFound(w, "Receptionist not found")
		case errors.Is(err, usecase.ErrPhotoIDConflict):
			response.Conflict(w, "Photo reference already assigned to another profile")
		default:
			response.InternalServerError(w, "Failed to update receptionist")
		}
		return
	}

	response.NoContent(w)
}

func (h *ReceptionistHandler) DeleteReceptionist(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	receptionistID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid receptionist ID", nil)
		return
	}

	if err := h.receptionistUsecase.DeleteReceptionist(r.Context(), receptionistID); err != nil {
		if errors.Is(err, usecase.ErrReceptionistNotFound) {
			response.NotFound(w, "Receptionist not found")
			return
		}
		response.InternalServerError(w, "Failed to delete receptionist")
		return
	}

	response.NoContent(w)
}
