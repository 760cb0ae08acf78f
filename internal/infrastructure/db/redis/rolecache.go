package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/summercamp/enrollment-api/internal/api/metrics"
	"github.com/summercamp/enrollment-api/internal/core/domain"
)

const roleCacheTTL = 30 * time.Second

// RoleCache caches resolved account roles with a bounded TTL.
// Key format: role:<email>
//
// Elevation invalidates the key, so role changes are visible immediately in
// the normal case; the TTL only bounds staleness if an invalidation is lost.
type RoleCache struct {
	client *redis.Client
}

// NewRoleCache creates a RoleCache wrapping the given Redis client.
func NewRoleCache(client *redis.Client) *RoleCache {
	return &RoleCache{client: client}
}

// Get returns the cached role for email and whether it was present.
func (c *RoleCache) Get(ctx context.Context, email string) (domain.Role, bool, error) {
	val, err := c.client.Get(ctx, c.key(email)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.RoleCacheTotal.WithLabelValues("miss").Inc()
			return domain.RoleNone, false, nil
		}
		return domain.RoleNone, false, fmt.Errorf("role cache get: %w", err)
	}
	metrics.RoleCacheTotal.WithLabelValues("hit").Inc()
	return domain.ParseRole(val), true, nil
}

// Set records the resolved role for email (expires after roleCacheTTL).
func (c *RoleCache) Set(ctx context.Context, email string, role domain.Role) error {
	return c.client.Set(ctx, c.key(email), string(role), roleCacheTTL).Err()
}

// Invalidate drops the cached role for email.
func (c *RoleCache) Invalidate(ctx context.Context, email string) error {
	return c.client.Del(ctx, c.key(email)).Err()
}

func (c *RoleCache) key(email string) string {
	return "role:" + email
}
