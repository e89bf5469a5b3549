package notify

import (
	"context"
	"encoding/json"

	domain "tokenvest-backend/internal/domain/notify"

	"github.com/redis/go-redis/v9"
)

const DefaultChannel = "notifications:investor"

// RedisNotifier publishes transition events to a redis channel consumed by
// the messaging workers (email/SMS fan-out lives downstream).
type RedisNotifier struct {
	rdb     *redis.Client
	channel string
}

func NewRedisNotifier(rdb *redis.Client, channel string) *RedisNotifier {
	if channel == "" {
		channel = DefaultChannel
	}
	return &RedisNotifier{rdb: rdb, channel: channel}
}

func (n *RedisNotifier) Notify(ctx context.Context, ev domain.Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return n.rdb.Publish(ctx, n.channel, payload).Err()
}
