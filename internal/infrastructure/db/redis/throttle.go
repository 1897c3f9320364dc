package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	failureWindow = 15 * time.Minute
	maxFailures   = 10
)

// SigninThrottle limits repeated failed signin attempts per email, backed
// by Redis. Key format: signin_fail:<email>, expiring after failureWindow.
type SigninThrottle struct {
	client *redis.Client
}

// NewSigninThrottle creates a SigninThrottle wrapping the given Redis client.
func NewSigninThrottle(client *redis.Client) *SigninThrottle {
	return &SigninThrottle{client: client}
}

// TooMany reports whether the email has exhausted its failure budget within
// the current window.
func (t *SigninThrottle) TooMany(ctx context.Context, email string) (bool, error) {
	n, err := t.client.Get(ctx, t.key(email)).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("throttle check: %w", err)
	}
	return n >= maxFailures, nil
}

// RecordFailure counts one failed attempt. The window starts at the first
// failure and is not extended by later ones.
func (t *SigninThrottle) RecordFailure(ctx context.Context, email string) error {
	key := t.key(email)
	pipe := t.client.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, failureWindow)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("throttle record: %w", err)
	}
	return nil
}

// Reset clears the counter after a successful signin.
func (t *SigninThrottle) Reset(ctx context.Context, email string) error {
	return t.client.Del(ctx, t.key(email)).Err()
}

func (t *SigninThrottle) key(email string) string {
	return fmt.Sprintf("signin_fail:%s", email)
}
