package usecase

import (
	"context"

	"clinic-profiles-service/internal/converter"
	"clinic-profiles-service/internal/delivery/dto"
	"clinic-profiles-service/internal/domain/entity"
	"clinic-profiles-service/internal/domain/repository"
	"clinic-profiles-service/internal/messaging"
	"clinic-profiles-service/pkg/validator"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type DoctorUsecase interface {
	GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error)
	GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error)
	CreateDoctor(ctx context.Context, req *dto.DoctorCreateRequest) (*dto.DoctorResponse, error)
	UpdateDoctor(ctx context.Context, doctorID uuid.UUID, req *dto.DoctorUpdateRequest) error
	ChangeDoctorStatus(ctx context.Context, doctorID uuid.UUID, status entity.DoctorStatus) error
}

type doctorUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	validator   *validator.CustomValidator
	doctorRepo  repository.DoctorRepository
	profileRepo repository.ProfileRepository
	publisher   messaging.Publisher
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	validator *validator.CustomValidator,
	doctorRepo repository.DoctorRepository,
	profileRepo repository.ProfileRepository,
	publisher messaging.Publisher,
) DoctorUsecase {
	return &doctorUsecase{
		db:          db,
		log:         log,
		validator:   validator,
		doctorRepo:  doctorRepo,
		profileRepo: profileRepo,
		publisher:   publisher,
	}
}

func (u *doctorUsecase) GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all doctors: %+v", err)
		return nil, err
	}

	responses := converter.DoctorsToResponses(doctors)

	return &dto.DoctorListResponse{
		Doctors: responses,
		Total:   len(responses),
	}, nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) CreateDoctor(ctx context.Context, req *dto.DoctorCreateRequest) (*dto.DoctorResponse, error) {
	if err := u.validator.Validate(req); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := checkProfileReferences(tx, u.profileRepo, req.AccountID, req.PhotoID, uuid.Nil); err != nil {
		return nil, err
	}

	doctor := converter.DoctorCreateRequestToEntity(req)
	doctor.ID = uuid.New()
	doctor.Status = entity.DoctorStatusAtWork

	if err := u.doctorRepo.Create(tx, doctor); err != nil {
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) UpdateDoctor(ctx context.Context, doctorID uuid.UUID, req *dto.DoctorUpdateRequest) error {
	if err := u.validator.Validate(req); err != nil {
		return err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return err
	}
	if doctor == nil {
		return ErrDoctorNotFound
	}

	if err := checkProfileReferences(tx, u.profileRepo, nil, req.PhotoID, doctorID); err != nil {
		return err
	}

	converter.ApplyDoctorUpdate(doctor, req)

	if err := u.doctorRepo.Update(tx, doctor); err != nil {
		u.log.Warnf("Failed to update doctor: %+v", err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	// The caller does not wait on downstream consumers, but without an
	// outbox a publish failure must surface as an operation failure.
	event := &messaging.DoctorNameChanged{
		ID:         doctor.ID,
		FirstName:  doctor.FirstName,
		LastName:   doctor.LastName,
		MiddleName: doctor.MiddleName,
	}
	if err := u.publisher.PublishDoctorNameChanged(ctx, event); err != nil {
		u.log.Warnf("Failed to publish name changed event for doctor %s: %+v", doctor.ID, err)
		return err
	}

	return nil
}

func (u *doctorUsecase) ChangeDoctorStatus(ctx context.Context, doctorID uuid.UUID, status entity.DoctorStatus) error {
	// Undefined status values are rejected before the target is loaded,
	// distinctly from "not found".
	if !status.Valid() {
		return validator.NewValidationError("status", "invalid_status")
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return err
	}
	if doctor == nil {
		return ErrDoctorNotFound
	}

	doctor.Status = status

	if err := u.doctorRepo.Update(tx, doctor); err != nil {
		u.log.Warnf("Failed to update doctor status: %+v", err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
