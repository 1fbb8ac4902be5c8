package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"clinic-profiles-service/internal/domain/entity"
	"clinic-profiles-service/internal/domain/repository"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	readBatchSize     = 10
	readBlockInterval = 2 * time.Second
	readRetryDelay    = time.Second
)

// StatusSyncConsumer reconciles doctor work status from office and
// specialization activity events. Two independent loops, one per stream,
// each applying a bulk conditional status update and committing once per
// message. Processing is idempotent at the data level but not deduplicated:
// a redelivered message converges to the same end state.
//
// The two streams are unordered relative to each other; when office and
// specialization events disagree within a short window the last one
// processed wins. There is no retry or dead-letter policy: a failed message
// is logged and left pending in the consumer group.
type StatusSyncConsumer struct {
	db         *gorm.DB
	client     *redis.Client
	log        *logrus.Logger
	doctorRepo repository.DoctorRepository

	consumerName string

	stopChan chan struct{}
	wg       sync.WaitGroup
	stopped  atomic.Bool
}

func NewStatusSyncConsumer(
	db *gorm.DB,
	client *redis.Client,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	consumerName string,
) *StatusSyncConsumer {
	return &StatusSyncConsumer{
		db:           db,
		client:       client,
		log:          log,
		doctorRepo:   doctorRepo,
		consumerName: consumerName,
		stopChan:     make(chan struct{}),
	}
}

// Start launches one consume loop per subscribed stream.
func (c *StatusSyncConsumer) Start() {
	c.wg.Add(2)
	go c.consumeLoop(OfficeStatusStream, c.handleOfficeStatusChanged)
	go c.consumeLoop(SpecializationStream, c.handleSpecializationChanged)
	c.log.Infof("Status sync consumer started (consumer=%s)", c.consumerName)
}

// Stop shuts down the consume loops and waits for in-flight messages.
// Safe to call multiple times.
func (c *StatusSyncConsumer) Stop() {
	if c.stopped.CompareAndSwap(false, true) {
		close(c.stopChan)
		c.wg.Wait()
		c.log.Info("Status sync consumer stopped")
	}
}

func (c *StatusSyncConsumer) consumeLoop(stream string, handle func(ctx context.Context, payload []byte) error) {
	defer c.wg.Done()

	ctx := context.Background()

	if err := c.ensureGroup(ctx, stream); err != nil {
		c.log.Errorf("Failed to create consumer group on %s: %+v", stream, err)
	}

	for {
		select {
		case <-c.stopChan:
			return
		default:
		}

		streams, err := c.client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    consumerGroup,
			Consumer: c.consumerName,
			Streams:  []string{stream, ">"},
			Count:    readBatchSize,
			Block:    readBlockInterval,
		}).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			if c.stopped.Load() {
				return
			}
			c.log.Warnf("Failed to read from stream %s: %+v", stream, err)
			time.Sleep(readRetryDelay)
			continue
		}

		for _, s := range streams {
			for _, msg := range s.Messages {
				payload, ok := msg.Values[payloadField].(string)
				if !ok {
					c.log.Warnf("Discarding malformed message %s on %s", msg.ID, stream)
					c.client.XAck(ctx, stream, consumerGroup, msg.ID)
					continue
				}

				if err := handle(ctx, []byte(payload)); err != nil {
					// No retry or dead-letter contract; the entry stays
					// pending in the group.
					c.log.Warnf("Failed to process message %s on %s: %+v", msg.ID, stream, err)
					continue
				}

				if err := c.client.XAck(ctx, stream, consumerGroup, msg.ID).Err(); err != nil {
					// Crash window between commit and ack: the message is
					// redelivered and harmlessly re-applied.
					c.log.Warnf("Failed to ack message %s on %s: %+v", msg.ID, stream, err)
				}
			}
		}
	}
}

func (c *StatusSyncConsumer) ensureGroup(ctx context.Context, stream string) error {
	err := c.client.XGroupCreateMkStream(ctx, stream, consumerGroup, "0").Err()
	if err != nil && !strings.Contains(err.Error(), "BUSYGROUP") {
		return err
	}
	return nil
}

func (c *StatusSyncConsumer) handleOfficeStatusChanged(ctx context.Context, payload []byte) error {
	var event OfficeStatusChanged
	if err := json.Unmarshal(payload, &event); err != nil {
		return fmt.Errorf("decode office status changed event: %w", err)
	}

	return c.applyActivity(ctx, event.IsActive, func(tx *gorm.DB) ([]entity.Doctor, error) {
		return c.doctorRepo.FindByOfficeID(tx, event.ID)
	})
}

func (c *StatusSyncConsumer) handleSpecializationChanged(ctx context.Context, payload []byte) error {
	var event SpecializationChanged
	if err := json.Unmarshal(payload, &event); err != nil {
		return fmt.Errorf("decode specialization changed event: %w", err)
	}

	return c.applyActivity(ctx, event.IsActive, func(tx *gorm.DB) ([]entity.Doctor, error) {
		return c.doctorRepo.FindBySpecializationID(tx, event.ID)
	})
}

// applyActivity sets every matched doctor to AtWork or Inactive and commits
// once, covering all matched doctors as a single unit of work.
func (c *StatusSyncConsumer) applyActivity(ctx context.Context, isActive bool, fetch func(tx *gorm.DB) ([]entity.Doctor, error)) error {
	tx := c.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctors, err := fetch(tx)
	if err != nil {
		return fmt.Errorf("fetch doctors for status sync: %w", err)
	}

	status := entity.DoctorStatusInactive
	if isActive {
		status = entity.DoctorStatusAtWork
	}

	for i := range doctors {
		doctors[i].Status = status
		if err := c.doctorRepo.Update(tx, &doctors[i]); err != nil {
			return fmt.Errorf("update doctor %s status: %w", doctors[i].ID, err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("commit status sync: %w", err)
	}

	c.log.Debugf("Status sync applied: %d doctor(s) set to %s", len(doctors), status)
	return nil
}
