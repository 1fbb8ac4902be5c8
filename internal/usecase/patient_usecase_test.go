package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"clinic-profiles-service/internal/delivery/dto"
	"clinic-profiles-service/internal/domain/entity"
	"clinic-profiles-service/internal/repository"
	"clinic-profiles-service/pkg/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newPatientUsecase(t *testing.T) (PatientUsecase, *gorm.DB) {
	t.Helper()

	db := setupTestDB(t)
	uc := NewPatientUsecase(
		db,
		testLogger(),
		validator.NewValidator(),
		repository.NewPatientRepository(),
		repository.NewProfileRepository(),
	)
	return uc, db
}

func patientCreateRequest() *dto.PatientCreateRequest {
	birthYear := time.Now().UTC().Year() - 30
	return &dto.PatientCreateRequest{
		ProfileCreateRequest: dto.ProfileCreateRequest{
			FirstName: "James",
			LastName:  "Wilson",
		},
		DateOfBirth: fmt.Sprintf("%d-09-04", birthYear),
	}
}

func TestCreatePatient(t *testing.T) {
	uc, db := newPatientUsecase(t)
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		req := patientCreateRequest()

		resp, err := uc.CreatePatient(ctx, req)
		require.NoError(t, err)
		assert.False(t, resp.IsLinkedToAccount)

		got, err := uc.GetPatient(ctx, resp.ID)
		require.NoError(t, err)
		assert.Equal(t, req.FirstName, got.FirstName)
		assert.Equal(t, req.DateOfBirth, got.DateOfBirth)
	})

	t.Run("linked flag requires account reference", func(t *testing.T) {
		req := patientCreateRequest()
		req.IsLinkedToAccount = true

		_, err := uc.CreatePatient(ctx, req)
		var vErr *validator.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "linked_to_account", vErr.Violations[0].Code)
	})

	t.Run("created linked when account present", func(t *testing.T) {
		accountID := uuid.New()
		req := patientCreateRequest()
		req.AccountID = &accountID
		req.IsLinkedToAccount = true

		resp, err := uc.CreatePatient(ctx, req)
		require.NoError(t, err)
		assert.True(t, resp.IsLinkedToAccount)
		require.NotNil(t, resp.AccountID)
		assert.Equal(t, accountID, *resp.AccountID)
	})

	t.Run("invalid request persists nothing", func(t *testing.T) {
		var before int64
		require.NoError(t, db.Model(&entity.Patient{}).Count(&before).Error)

		req := patientCreateRequest()
		req.LastName = "W"

		_, err := uc.CreatePatient(ctx, req)
		var vErr *validator.ValidationError
		require.ErrorAs(t, err, &vErr)

		var after int64
		require.NoError(t, db.Model(&entity.Patient{}).Count(&after).Error)
		assert.Equal(t, before, after)
	})
}

func TestUpdatePatient(t *testing.T) {
	uc, _ := newPatientUsecase(t)
	ctx := context.Background()

	accountID := uuid.New()
	req := patientCreateRequest()
	req.AccountID = &accountID
	req.IsLinkedToAccount = true
	created, err := uc.CreatePatient(ctx, req)
	require.NoError(t, err)

	t.Run("update keeps the account link", func(t *testing.T) {
		update := &dto.PatientUpdateRequest{
			ProfileUpdateRequest: dto.ProfileUpdateRequest{
				FirstName: "James",
				LastName:  "Evans",
			},
			DateOfBirth: req.DateOfBirth,
		}
		require.NoError(t, uc.UpdatePatient(ctx, created.ID, update))

		got, err := uc.GetPatient(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Evans", got.LastName)
		assert.True(t, got.IsLinkedToAccount)
		require.NotNil(t, got.AccountID)
		assert.Equal(t, accountID, *got.AccountID)
	})

	t.Run("unknown id", func(t *testing.T) {
		update := &dto.PatientUpdateRequest{
			ProfileUpdateRequest: dto.ProfileUpdateRequest{
				FirstName: "James",
				LastName:  "Evans",
			},
			DateOfBirth: req.DateOfBirth,
		}
		err := uc.UpdatePatient(ctx, uuid.New(), update)
		assert.ErrorIs(t, err, ErrPatientNotFound)
	})
}

func TestLinkAccount(t *testing.T) {
	uc, _ := newPatientUsecase(t)
	ctx := context.Background()

	created, err := uc.CreatePatient(ctx, patientCreateRequest())
	require.NoError(t, err)

	t.Run("zero account reference is rejected", func(t *testing.T) {
		err := uc.LinkAccount(ctx, created.ID, uuid.Nil)

		var vErr *validator.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "non_nil_uuid", vErr.Violations[0].Code)
	})

	t.Run("linking sets reference and flag", func(t *testing.T) {
		accountID := uuid.New()
		require.NoError(t, uc.LinkAccount(ctx, created.ID, accountID))

		got, err := uc.GetPatient(ctx, created.ID)
		require.NoError(t, err)
		assert.True(t, got.IsLinkedToAccount)
		require.NotNil(t, got.AccountID)
		assert.Equal(t, accountID, *got.AccountID)
	})

	t.Run("relinking the same account is allowed", func(t *testing.T) {
		got, err := uc.GetPatient(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, got.AccountID)

		assert.NoError(t, uc.LinkAccount(ctx, created.ID, *got.AccountID))
	})

	t.Run("account already held by another profile", func(t *testing.T) {
		other, err := uc.CreatePatient(ctx, patientCreateRequest())
		require.NoError(t, err)

		first, err := uc.GetPatient(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, first.AccountID)

		err = uc.LinkAccount(ctx, other.ID, *first.AccountID)
		assert.ErrorIs(t, err, ErrAccountIDConflict)
	})

	t.Run("unknown id", func(t *testing.T) {
		err := uc.LinkAccount(ctx, uuid.New(), uuid.New())
		assert.ErrorIs(t, err, ErrPatientNotFound)
	})
}

func TestDeletePatient(t *testing.T) {
	uc, db := newPatientUsecase(t)
	ctx := context.Background()

	created, err := uc.CreatePatient(ctx, patientCreateRequest())
	require.NoError(t, err)

	t.Run("delete removes the record", func(t *testing.T) {
		require.NoError(t, uc.DeletePatient(ctx, created.ID))

		_, err := uc.GetPatient(ctx, created.ID)
		assert.ErrorIs(t, err, ErrPatientNotFound)

		var count int64
		require.NoError(t, db.Model(&entity.Patient{}).Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("deleting twice reports not found", func(t *testing.T) {
		err := uc.DeletePatient(ctx, created.ID)
		assert.ErrorIs(t, err, ErrPatientNotFound)
	})
}
