package usecase

import (
	"context"
	"io"
	"testing"

	"clinic-profiles-service/internal/domain/entity"
	"clinic-profiles-service/internal/messaging"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// In-memory sqlite exists per connection; transactions must reuse
	// the one that holds the schema.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&entity.Doctor{}, &entity.Patient{}, &entity.Receptionist{}))

	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type stubPublisher struct {
	events []*messaging.DoctorNameChanged
	err    error
}

func (p *stubPublisher) PublishDoctorNameChanged(_ context.Context, event *messaging.DoctorNameChanged) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}
