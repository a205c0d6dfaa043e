// Package queue carries notification IDs between the web process and the
// delivery worker.
package queue

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const popTimeout = 5 * time.Second

// DefaultKey is the Redis list shared by the web process and the worker.
const DefaultKey = "rannaghore:notifications"

// RedisQueue is a notification queue backed by a Redis list. Push and Pop
// operate on opposite ends so delivery order follows enqueue order.
type RedisQueue struct {
	client *redis.Client
	key    string
}

func NewRedisQueue(client *redis.Client, key string) *RedisQueue {
	return &RedisQueue{
		client: client,
		key:    key,
	}
}

func (q *RedisQueue) Push(ctx context.Context, notificationID uint) error {
	if err := q.client.LPush(ctx, q.key, notificationID).Err(); err != nil {
		return fmt.Errorf("failed to push notification to queue: %w", err)
	}
	return nil
}

// Pop blocks until an ID is available or the context is done. The BRPOP
// timeout bounds each wait so context cancellation is noticed promptly.
func (q *RedisQueue) Pop(ctx context.Context) (uint, error) {
	for {
		values, err := q.client.BRPop(ctx, popTimeout, q.key).Result()
		if err == redis.Nil {
			if ctx.Err() != nil {
				return 0, ctx.Err()
			}
			continue
		}
		if err != nil {
			return 0, fmt.Errorf("failed to pop notification from queue: %w", err)
		}

		// BRPOP returns [key, value].
		id, err := strconv.ParseUint(values[1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("malformed notification ID on queue: %w", err)
		}
		return uint(id), nil
	}
}
