package usecase

import (
	"context"
	"errors"
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

func newDoctorUsecase(t *testing.T) (DoctorUsecase, *gorm.DB, *stubPublisher) {
	t.Helper()

	db := setupTestDB(t)
	publisher := &stubPublisher{}
	uc := NewDoctorUsecase(
		db,
		testLogger(),
		validator.NewValidator(),
		repository.NewDoctorRepository(),
		repository.NewProfileRepository(),
		publisher,
	)
	return uc, db, publisher
}

func doctorCreateRequest() *dto.DoctorCreateRequest {
	birthYear := time.Now().UTC().Year() - 40
	return &dto.DoctorCreateRequest{
		ProfileCreateRequest: dto.ProfileCreateRequest{
			FirstName: "Gregory",
			LastName:  "House",
		},
		DateOfBirth:      fmt.Sprintf("%d-06-11", birthYear),
		SpecializationID: uuid.New(),
		OfficeID:         uuid.New(),
		CareerStartYear:  birthYear + 25,
	}
}

func doctorUpdateRequest() *dto.DoctorUpdateRequest {
	birthYear := time.Now().UTC().Year() - 40
	return &dto.DoctorUpdateRequest{
		ProfileUpdateRequest: dto.ProfileUpdateRequest{
			FirstName: "Gregory",
			LastName:  "Holmes",
		},
		DateOfBirth:      fmt.Sprintf("%d-06-11", birthYear),
		SpecializationID: uuid.New(),
		OfficeID:         uuid.New(),
		CareerStartYear:  birthYear + 25,
	}
}

func TestCreateDoctor(t *testing.T) {
	uc, db, _ := newDoctorUsecase(t)
	ctx := context.Background()

	t.Run("created doctor starts at work", func(t *testing.T) {
		req := doctorCreateRequest()

		resp, err := uc.CreateDoctor(ctx, req)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, resp.ID)
		assert.Equal(t, string(entity.DoctorStatusAtWork), resp.Status)

		got, err := uc.GetDoctor(ctx, resp.ID)
		require.NoError(t, err)
		assert.Equal(t, req.FirstName, got.FirstName)
		assert.Equal(t, req.DateOfBirth, got.DateOfBirth)
		assert.Equal(t, req.CareerStartYear, got.CareerStartYear)
	})

	t.Run("invalid request persists nothing", func(t *testing.T) {
		var before int64
		require.NoError(t, db.Model(&entity.Doctor{}).Count(&before).Error)

		req := doctorCreateRequest()
		req.FirstName = ""

		_, err := uc.CreateDoctor(ctx, req)
		var vErr *validator.ValidationError
		require.ErrorAs(t, err, &vErr)

		var after int64
		require.NoError(t, db.Model(&entity.Doctor{}).Count(&after).Error)
		assert.Equal(t, before, after)
	})

	t.Run("account reference conflict across kinds", func(t *testing.T) {
		accountID := uuid.New()
		patient := &entity.Patient{
			Profile: entity.Profile{
				ID:        uuid.New(),
				FirstName: "Lisa",
				LastName:  "Cuddy",
				AccountID: &accountID,
			},
			DateOfBirth:       time.Date(1985, 3, 10, 0, 0, 0, 0, time.UTC),
			IsLinkedToAccount: true,
		}
		require.NoError(t, db.Create(patient).Error)

		req := doctorCreateRequest()
		req.AccountID = &accountID

		_, err := uc.CreateDoctor(ctx, req)
		assert.ErrorIs(t, err, ErrAccountIDConflict)
	})

	t.Run("photo reference conflict", func(t *testing.T) {
		photoID := uuid.New()
		first := doctorCreateRequest()
		first.PhotoID = &photoID
		_, err := uc.CreateDoctor(ctx, first)
		require.NoError(t, err)

		second := doctorCreateRequest()
		second.PhotoID = &photoID

		_, err = uc.CreateDoctor(ctx, second)
		assert.ErrorIs(t, err, ErrPhotoIDConflict)
	})
}

func TestGetDoctor(t *testing.T) {
	uc, _, _ := newDoctorUsecase(t)
	ctx := context.Background()

	t.Run("unknown id", func(t *testing.T) {
		_, err := uc.GetDoctor(ctx, uuid.New())
		assert.ErrorIs(t, err, ErrDoctorNotFound)
	})

	t.Run("list reflects created doctors", func(t *testing.T) {
		_, err := uc.CreateDoctor(ctx, doctorCreateRequest())
		require.NoError(t, err)
		_, err = uc.CreateDoctor(ctx, doctorCreateRequest())
		require.NoError(t, err)

		list, err := uc.GetAllDoctors(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, list.Total)
		assert.Len(t, list.Doctors, 2)
	})
}

func TestUpdateDoctor(t *testing.T) {
	ctx := context.Background()

	t.Run("update publishes name change", func(t *testing.T) {
		uc, _, publisher := newDoctorUsecase(t)

		created, err := uc.CreateDoctor(ctx, doctorCreateRequest())
		require.NoError(t, err)

		req := doctorUpdateRequest()
		require.NoError(t, uc.UpdateDoctor(ctx, created.ID, req))

		got, err := uc.GetDoctor(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Holmes", got.LastName)

		require.Len(t, publisher.events, 1)
		assert.Equal(t, created.ID, publisher.events[0].ID)
		assert.Equal(t, "Holmes", publisher.events[0].LastName)
	})

	t.Run("publish failure fails the operation", func(t *testing.T) {
		uc, _, publisher := newDoctorUsecase(t)

		created, err := uc.CreateDoctor(ctx, doctorCreateRequest())
		require.NoError(t, err)

		publisher.err = errors.New("broker unavailable")
		err = uc.UpdateDoctor(ctx, created.ID, doctorUpdateRequest())
		assert.Error(t, err)
	})

	t.Run("early career start leaves record unchanged", func(t *testing.T) {
		uc, _, _ := newDoctorUsecase(t)

		created, err := uc.CreateDoctor(ctx, doctorCreateRequest())
		require.NoError(t, err)

		req := doctorUpdateRequest()
		birthYear := time.Now().UTC().Year() - 40
		req.CareerStartYear = birthYear + 10

		err = uc.UpdateDoctor(ctx, created.ID, req)
		var vErr *validator.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "career_start_year", vErr.Violations[0].Field)

		got, err := uc.GetDoctor(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.LastName, got.LastName)
		assert.Equal(t, created.CareerStartYear, got.CareerStartYear)
	})

	t.Run("unknown id", func(t *testing.T) {
		uc, _, publisher := newDoctorUsecase(t)

		err := uc.UpdateDoctor(ctx, uuid.New(), doctorUpdateRequest())
		assert.ErrorIs(t, err, ErrDoctorNotFound)
		assert.Empty(t, publisher.events)
	})
}

func TestChangeDoctorStatus(t *testing.T) {
	uc, _, _ := newDoctorUsecase(t)
	ctx := context.Background()

	created, err := uc.CreateDoctor(ctx, doctorCreateRequest())
	require.NoError(t, err)

	t.Run("valid status is applied", func(t *testing.T) {
		require.NoError(t, uc.ChangeDoctorStatus(ctx, created.ID, entity.DoctorStatusOnVacation))

		got, err := uc.GetDoctor(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, string(entity.DoctorStatusOnVacation), got.Status)
	})

	t.Run("undefined status is a validation failure, not a lookup failure", func(t *testing.T) {
		err := uc.ChangeDoctorStatus(ctx, created.ID, entity.DoctorStatus("Retired"))

		var vErr *validator.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "invalid_status", vErr.Violations[0].Code)
	})

	t.Run("undefined status wins over unknown id", func(t *testing.T) {
		err := uc.ChangeDoctorStatus(ctx, uuid.New(), entity.DoctorStatus("Retired"))

		var vErr *validator.ValidationError
		assert.ErrorAs(t, err, &vErr)
	})

	t.Run("unknown id with valid status", func(t *testing.T) {
		err := uc.ChangeDoctorStatus(ctx, uuid.New(), entity.DoctorStatusSickDay)
		assert.ErrorIs(t, err, ErrDoctorNotFound)
	})
}
