package websocket

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// NewRedisClient connects to addr and checks the connection. An empty addr
// means no Redis and returns a nil client.
func NewRedisClient(ctx context.Context, addr, password string) (*redis.Client, error) {
	if addr == "" {
		return nil, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("websocket: redis ping %s: %w", addr, err)
	}
	return client, nil
}

func publish(ctx context.Context, rdb *redis.Client, frame *WSMessage) error {
	if frame.RoomID == "" {
		return fmt.Errorf("websocket publish: roomID required")
	}
	body, err := json.Marshal(frame)
	if err != nil {
		return fmt.Errorf("websocket publish: marshal frame: %w", err)
	}
	if err := rdb.Publish(ctx, redisChannelPrefix+frame.RoomID, body).Err(); err != nil {
		return fmt.Errorf("websocket publish: redis publish: %w", err)
	}
	return nil
}
