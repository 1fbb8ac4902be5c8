package usecase

import (
	"context"

	"clinic-profiles-service/internal/converter"
	"clinic-profiles-service/internal/delivery/dto"
	"clinic-profiles-service/internal/domain/repository"
	"clinic-profiles-service/pkg/validator"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ReceptionistUsecase interface {
	GetAllReceptionists(ctx context.Context) (*dto.ReceptionistListResponse, error)
	GetReceptionist(ctx context.Context, receptionistID uuid.UUID) (*dto.ReceptionistResponse, error)
	CreateReceptionist(ctx context.Context, req *dto.ReceptionistCreateRequest) (*dto.ReceptionistResponse, error)
	UpdateReceptionist(ctx context.Context, receptionistID uuid.UUID, req *dto.ReceptionistUpdateRequest) error
	DeleteReceptionist(ctx context.Context, receptionistID uuid.UUID) error
}

type receptionistUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	validator        *validator.CustomValidator
	receptionistRepo repository.ReceptionistRepository
	profileRepo      repository.ProfileRepository
}

func NewReceptionistUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	validator *validator.CustomValidator,
	receptionistRepo repository.ReceptionistRepository,
	profileRepo repository.ProfileRepository,
) ReceptionistUsecase {
	return &receptionistUsecase{
		db:               db,
		log:              log,
		validator:        validator,
		receptionistRepo: receptionistRepo,
		profileRepo:      profileRepo,
	}
}

func (u *receptionistUsecase) GetAllReceptionists(ctx context.Context) (*dto.ReceptionistListResponse, error) {
	receptionists, err := u.receptionistRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all receptionists: %+v", err)
		return nil, err
	}

	responses := converter.ReceptionistsToResponses(receptionists)

	return &dto.ReceptionistListResponse{
		Receptionists: responses,
		Total:         len(responses),
	}, nil
}

func (u *receptionistUsecase) GetReceptionist(ctx context.Context, receptionistID uuid.UUID) (*dto.ReceptionistResponse, error) {
	receptionist, err := u.receptionistRepo.FindByID(u.db.WithContext(ctx), receptionistID)
	if err != nil {
		u.log.Warnf("Failed to find receptionist: %+v", err)
		return nil, err
	}
	if receptionist == nil {
		return nil, ErrReceptionistNotFound
	}

	return converter.ReceptionistToResponse(receptionist), nil
}

func (u *receptionistUsecase) CreateReceptionist(ctx context.Context, req *dto.ReceptionistCreateRequest) (*dto.ReceptionistResponse, error) {
	if err := u.validator.Validate(req); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := checkProfileReferences(tx, u.profileRepo, req.AccountID, req.PhotoID, uuid.Nil); err != nil {
		return nil, err
	}

	receptionist := converter.ReceptionistCreateRequestToEntity(req)
	receptionist.ID = uuid.New()

	if err := u.receptionistRepo.Create(tx, receptionist); err != nil {
		u.log.Warnf("Failed to create receptionist: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ReceptionistToResponse(receptionist), nil
}

func (u *receptionistUsecase) UpdateReceptionist(ctx context.Context, receptionistID uuid.UUID, req *dto.ReceptionistUpdateRequest) error {
	if err := u.validator.Validate(req); err != nil {
		return err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	receptionist, err := u.receptionistRepo.FindByID(tx, receptionistID)
	if err != nil {
		u.log.Warnf("Failed to find receptionist: %+v", err)
		return err
	}
	if receptionist == nil {
		return ErrReceptionistNotFound
	}

	if err := checkProfileReferences(tx, u.profileRepo, nil, req.PhotoID, receptionistID); err != nil {
		return err
	}

	converter.ApplyReceptionistUpdate(receptionist, req)

	if err := u.receptionistRepo.Update(tx, receptionist); err != nil {
		u.log.Warnf("Failed to update receptionist: %+v", err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *receptionistUsecase) DeleteReceptionist(ctx context.Context, receptionistID uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affectedRows, err := u.receptionistRepo.Delete(tx, receptionistID)
	if err != nil {
		u.log.Warnf("Failed to delete receptionist: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrReceptionistNotFound
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
