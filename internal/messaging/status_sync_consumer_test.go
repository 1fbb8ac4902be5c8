package messaging

import (
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	"clinic-profiles-service/internal/domain/entity"
	"clinic-profiles-service/internal/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&entity.Doctor{}))

	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

func setupRedis(t *testing.T) *redis.Client {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		client.Close()
	})
	return client
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func seedDoctor(t *testing.T, db *gorm.DB, officeID, specializationID uuid.UUID, status entity.DoctorStatus) *entity.Doctor {
	t.Helper()

	doctor := &entity.Doctor{
		Profile: entity.Profile{
			ID:        uuid.New(),
			FirstName: "Allison",
			LastName:  "Cameron",
		},
		DateOfBirth:      time.Date(1979, 5, 21, 0, 0, 0, 0, time.UTC),
		SpecializationID: specializationID,
		OfficeID:         officeID,
		CareerStartYear:  2003,
		Status:           status,
	}
	require.NoError(t, db.Create(doctor).Error)
	return doctor
}

func doctorStatus(t *testing.T, db *gorm.DB, id uuid.UUID) entity.DoctorStatus {
	t.Helper()

	var doctor entity.Doctor
	require.NoError(t, db.First(&doctor, "id = ?", id).Error)
	return doctor.Status
}

func TestHandleOfficeStatusChanged(t *testing.T) {
	db := setupTestDB(t)
	consumer := NewStatusSyncConsumer(db, setupRedis(t), testLogger(), repository.NewDoctorRepository(), "test-consumer")
	ctx := context.Background()

	office := uuid.New()
	otherOffice := uuid.New()
	specialization := uuid.New()

	a := seedDoctor(t, db, office, specialization, entity.DoctorStatusAtWork)
	b := seedDoctor(t, db, office, specialization, entity.DoctorStatusOnVacation)
	c := seedDoctor(t, db, otherOffice, specialization, entity.DoctorStatusAtWork)

	payload := func(id uuid.UUID, active bool) []byte {
		b, err := json.Marshal(OfficeStatusChanged{ID: id, IsActive: active})
		require.NoError(t, err)
		return b
	}

	t.Run("deactivation hits every doctor in the office", func(t *testing.T) {
		require.NoError(t, consumer.handleOfficeStatusChanged(ctx, payload(office, false)))

		assert.Equal(t, entity.DoctorStatusInactive, doctorStatus(t, db, a.ID))
		assert.Equal(t, entity.DoctorStatusInactive, doctorStatus(t, db, b.ID))
		assert.Equal(t, entity.DoctorStatusAtWork, doctorStatus(t, db, c.ID))
	})

	t.Run("redelivery converges to the same state", func(t *testing.T) {
		require.NoError(t, consumer.handleOfficeStatusChanged(ctx, payload(office, false)))

		assert.Equal(t, entity.DoctorStatusInactive, doctorStatus(t, db, a.ID))
		assert.Equal(t, entity.DoctorStatusInactive, doctorStatus(t, db, b.ID))
	})

	t.Run("reactivation restores at work", func(t *testing.T) {
		require.NoError(t, consumer.handleOfficeStatusChanged(ctx, payload(office, true)))

		assert.Equal(t, entity.DoctorStatusAtWork, doctorStatus(t, db, a.ID))
		assert.Equal(t, entity.DoctorStatusAtWork, doctorStatus(t, db, b.ID))
		assert.Equal(t, entity.DoctorStatusAtWork, doctorStatus(t, db, c.ID))
	})

	t.Run("unknown office changes nothing", func(t *testing.T) {
		require.NoError(t, consumer.handleOfficeStatusChanged(ctx, payload(uuid.New(), false)))

		assert.Equal(t, entity.DoctorStatusAtWork, doctorStatus(t, db, a.ID))
	})

	t.Run("malformed payload", func(t *testing.T) {
		assert.Error(t, consumer.handleOfficeStatusChanged(ctx, []byte("{not json")))
	})
}

func TestHandleSpecializationChanged(t *testing.T) {
	db := setupTestDB(t)
	consumer := NewStatusSyncConsumer(db, setupRedis(t), testLogger(), repository.NewDoctorRepository(), "test-consumer")
	ctx := context.Background()

	office := uuid.New()
	specialization := uuid.New()
	otherSpecialization := uuid.New()

	a := seedDoctor(t, db, office, specialization, entity.DoctorStatusAtWork)
	b := seedDoctor(t, db, office, otherSpecialization, entity.DoctorStatusAtWork)

	payload, err := json.Marshal(SpecializationChanged{ID: specialization, IsActive: false})
	require.NoError(t, err)

	require.NoError(t, consumer.handleSpecializationChanged(ctx, payload))

	assert.Equal(t, entity.DoctorStatusInactive, doctorStatus(t, db, a.ID))
	assert.Equal(t, entity.DoctorStatusAtWork, doctorStatus(t, db, b.ID))
}

func TestConsumeLoop(t *testing.T) {
	db := setupTestDB(t)
	client := setupRedis(t)
	consumer := NewStatusSyncConsumer(db, client, testLogger(), repository.NewDoctorRepository(), "test-consumer")
	ctx := context.Background()

	office := uuid.New()
	doctor := seedDoctor(t, db, office, uuid.New(), entity.DoctorStatusAtWork)

	consumer.Start()
	defer consumer.Stop()

	payload, err := json.Marshal(OfficeStatusChanged{ID: office, IsActive: false})
	require.NoError(t, err)

	require.NoError(t, client.XAdd(ctx, &redis.XAddArgs{
		Stream: OfficeStatusStream,
		Values: map[string]interface{}{payloadField: string(payload)},
	}).Err())

	assert.Eventually(t, func() bool {
		return doctorStatus(t, db, doctor.ID) == entity.DoctorStatusInactive
	}, 5*time.Second, 50*time.Millisecond)
}

func TestStopIsIdempotent(t *testing.T) {
	consumer := NewStatusSyncConsumer(setupTestDB(t), setupRedis(t), testLogger(), repository.NewDoctorRepository(), "test-consumer")

	consumer.Start()
	consumer.Stop()
	consumer.Stop()
}

func TestPublishDoctorNameChanged(t *testing.T) {
	client := setupRedis(t)
	publisher := NewRedisPublisher(client, testLogger())
	ctx := context.Background()

	middle := "James"
	event := &DoctorNameChanged{
		ID:         uuid.New(),
		FirstName:  "Robert",
		LastName:   "Chase",
		MiddleName: &middle,
	}
	require.NoError(t, publisher.PublishDoctorNameChanged(ctx, event))

	entries, err := client.XRange(ctx, DoctorNameChangedStream, "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, entries, 1)

	raw, ok := entries[0].Values[payloadField].(string)
	require.True(t, ok)

	var decoded DoctorNameChanged
	require.NoError(t, json.Unmarshal([]byte(raw), &decoded))
	assert.Equal(t, event.ID, decoded.ID)
	assert.Equal(t, "Chase", decoded.LastName)
	require.NotNil(t, decoded.MiddleName)
	assert.Equal(t, "James", *decoded.MiddleName)
}
