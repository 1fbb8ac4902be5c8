package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Publisher emits domain events to the broker. There is no outbox or retry:
// a publish failure is part of the calling operation's failure surface.
type Publisher interface {
	PublishDoctorNameChanged(ctx context.Context, event *DoctorNameChanged) error
}

type redisPublisher struct {
	client *redis.Client
	log    *logrus.Logger
}

func NewRedisPublisher(client *redis.Client, log *logrus.Logger) Publisher {
	return &redisPublisher{
		client: client,
		log:    log,
	}
}

func (p *redisPublisher) PublishDoctorNameChanged(ctx context.Context, event *DoctorNameChanged) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal doctor name changed event: %w", err)
	}

	err = p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: DoctorNameChangedStream,
		Values: map[string]interface{}{payloadField: string(payload)},
	}).Err()
	if err != nil {
		p.log.Warnf("Failed to publish doctor name changed event for %s: %+v", event.ID, err)
		return fmt.Errorf("publish doctor name changed event: %w", err)
	}

	return nil
}
