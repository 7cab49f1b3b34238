// Package cache provides Redis-backed caches for the integration layer.
package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/carbon-tracker/backend/internal/application/adapter"
)

// drilldownKeyPrefix namespaces drill-down entries in the shared Redis instance.
const drilldownKeyPrefix = "drilldown:"

// drilldownCache implements adapter.DrilldownCache on Redis. Entries are
// written without expiry: the footprint API guarantees that a drill path
// resolves to the same data item indefinitely.
type drilldownCache struct {
	client *redis.Client
}

// NewDrilldownCache creates a Redis-backed drill-down cache.
func NewDrilldownCache(client *redis.Client) adapter.DrilldownCache {
	return &drilldownCache{client: client}
}

// Get returns the cached data item UID for a drill path.
func (c *drilldownCache) Get(ctx context.Context, drillPath string) (string, bool, error) {
	uid, err := c.client.Get(ctx, drilldownKeyPrefix+drillPath).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read drilldown cache: %w", err)
	}
	return uid, true, nil
}

// Set stores a drill-down resolution without expiry.
func (c *drilldownCache) Set(ctx context.Context, drillPath, dataItemUID string) error {
	if err := c.client.Set(ctx, drilldownKeyPrefix+drillPath, dataItemUID, 0).Err(); err != nil {
		return fmt.Errorf("failed to write drilldown cache: %w", err)
	}
	return nil
}
