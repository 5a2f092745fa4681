package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"budget-backend/internal/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const jobItemsTTL = 5 * time.Minute

// Cache is a read-through cache for per-job item lists backed by Redis.
// When Redis is unreachable (or not configured) the client stays nil and
// every method degrades to a no-op, so the application keeps serving from
// Postgres alone.
type Cache struct {
	client *redis.Client
}

// New connects to Redis at addr. An empty addr or a failed ping yields a
// disabled cache rather than an error.
func New(addr, password string, db int) *Cache {
	if addr == "" {
		log.Println("[Cache] Redis not configured, caching disabled")
		return &Cache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("[Cache] Redis unavailable at %s, caching disabled: %v", addr, err)
		return &Cache{}
	}

	log.Printf("[Cache] Connected to Redis at %s", addr)
	return &Cache{client: client}
}

func jobItemsKey(jobID uuid.UUID) string {
	return fmt.Sprintf("job:%s:items", jobID)
}

// GetJobItems returns the cached item list for a job, or ok=false on a miss.
func (c *Cache) GetJobItems(ctx context.Context, jobID uuid.UUID) ([]*models.Item, bool) {
	if c.client == nil {
		return nil, false
	}

	data, err := c.client.Get(ctx, jobItemsKey(jobID)).Bytes()
	if err != nil {
		return nil, false
	}

	var items []*models.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, false
	}
	return items, true
}

// SetJobItems stores a job's item list. Failures are swallowed; the cache is
// best-effort.
func (c *Cache) SetJobItems(ctx context.Context, jobID uuid.UUID, items []*models.Item) {
	if c.client == nil {
		return
	}

	data, err := json.Marshal(items)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, jobItemsKey(jobID), data, jobItemsTTL).Err(); err != nil {
		log.Printf("[Cache] Failed to cache items for job %s: %v", jobID, err)
	}
}

// InvalidateJobItems drops the cached item list after any item mutation.
func (c *Cache) InvalidateJobItems(ctx context.Context, jobID uuid.UUID) {
	if c.client == nil {
		return
	}
	if err := c.client.Del(ctx, jobItemsKey(jobID)).Err(); err != nil {
		log.Printf("[Cache] Failed to invalidate items for job %s: %v", jobID, err)
	}
}

// Close releases the underlying connection if the cache is enabled.
func (c *Cache) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}
