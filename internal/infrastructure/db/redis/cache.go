package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taskdeck/todo-api/internal/core/domain"
)

const listTTL = 5 * time.Minute

// TodoCache caches each user's todo list as a JSON blob.
// Key format: todos:<owner_id>
type TodoCache struct {
	client *redis.Client
}

// NewTodoCache creates a TodoCache wrapping the given Redis client.
func NewTodoCache(client *redis.Client) *TodoCache {
	return &TodoCache{client: client}
}

// GetList returns the cached list for an owner, or (nil, nil) on a miss.
func (c *TodoCache) GetList(ctx context.Context, ownerID string) ([]*domain.Todo, error) {
	raw, err := c.client.Get(ctx, c.key(ownerID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("todo cache get: %w", err)
	}

	var todos []*domain.Todo
	if err := json.Unmarshal(raw, &todos); err != nil {
		// A corrupt entry is treated as a miss; the next write replaces it.
		return nil, nil
	}
	return todos, nil
}

// SetList stores the owner's list, expiring after listTTL.
func (c *TodoCache) SetList(ctx context.Context, ownerID string, todos []*domain.Todo) error {
	raw, err := json.Marshal(todos)
	if err != nil {
		return fmt.Errorf("todo cache marshal: %w", err)
	}
	return c.client.Set(ctx, c.key(ownerID), raw, listTTL).Err()
}

// Invalidate drops the owner's cached list after a mutation.
func (c *TodoCache) Invalidate(ctx context.Context, ownerID string) error {
	return c.client.Del(ctx, c.key(ownerID)).Err()
}

func (c *TodoCache) key(ownerID string) string {
	return "todos:" + ownerID
}
