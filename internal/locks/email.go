package locks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/student-management-api/internal/logger"
)

// ErrLockNotAcquired is returned when the lock cannot be taken before the
// context deadline.
var ErrLockNotAcquired = errors.New("email lock not acquired")

// EmailLock serializes check-then-write sequences on the same email across
// requests and across instances sharing the Redis. The key carries a TTL so
// a crashed holder cannot wedge it.
type EmailLock struct {
	client *redis.Client
	ttl    time.Duration
	retry  time.Duration
}

// NewEmailLock creates a lock with the given key TTL.
func NewEmailLock(client *redis.Client, ttl time.Duration) *EmailLock {
	return &EmailLock{
		client: client,
		ttl:    ttl,
		retry:  25 * time.Millisecond,
	}
}

// NormalizeEmail produces the lock key form of an email. Only the lock key
// is normalized; the stored email keeps its original form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Acquire takes the lock for the given email and returns a release func.
// It polls SET NX until the lock is taken or the context is done.
func (l *EmailLock) Acquire(ctx context.Context, email string) (func(), error) {
	key := fmt.Sprintf("student_email_lock:%s", NormalizeEmail(email))
	token := uuid.NewString()

	for {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			logger.Log.Errorw("email lock setnx failed", "key", key, "error", err)
			return nil, err
		}
		if ok {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ErrLockNotAcquired
		case <-time.After(l.retry):
		}
	}

	release := func() {
		// Delete only if we still hold the lock; a TTL expiry followed by
		// another holder must not be released by us.
		const script = `
			if redis.call("get", KEYS[1]) == ARGV[1] then
				return redis.call("del", KEYS[1])
			end
			return 0
		`
		if err := l.client.Eval(context.Background(), script, []string{key}, token).Err(); err != nil {
			logger.Log.Errorw("email lock release failed", "key", key, "error", err)
		}
	}

	return release, nil
}
