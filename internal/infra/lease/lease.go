package lease

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"seat-reservation/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -source=lease.go -destination=../../../tests/mock/lease/lease.go -package=leasemock

const ReaperKey = "seat-reservation:reaper:lease"

// Deletes the key only while it still holds our token, so a lease that
// expired and was taken by another replica is left alone.
const releaseScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`

// Lease grants at most one holder at a time. Release must be given the token
// that Acquire returned.
type Lease interface {
	Acquire(ctx context.Context) (token string, ok bool, err error)
	Release(ctx context.Context, token string) error
}

type RedisLease struct {
	client   redis.Cmdable
	key      string
	ttl      time.Duration
	newToken func() (string, error)
}

func NewRedisLease(client redis.Cmdable, key string, ttl time.Duration) *RedisLease {
	return &RedisLease{
		client:   client,
		key:      key,
		ttl:      ttl,
		newToken: randomToken,
	}
}

func (l *RedisLease) Acquire(ctx context.Context) (string, bool, error) {
	token, err := l.newToken()
	if err != nil {
		return "", false, errs.Wrap(err, "failed to generate lease token")
	}
	ok, err := l.client.SetNX(ctx, l.key, token, l.ttl).Result()
	if err != nil {
		return "", false, errs.Wrapf(err, "failed to acquire lease %s", l.key)
	}
	if !ok {
		return "", false, nil
	}
	return token, true, nil
}

func (l *RedisLease) Release(ctx context.Context, token string) error {
	if err := l.client.Eval(ctx, releaseScript, []string{l.key}, token).Err(); err != nil {
		return errs.Wrapf(err, "failed to release lease %s", l.key)
	}
	return nil
}

func randomToken() (string, error) {
	var buf [16]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf[:]), nil
}

// NopLease always grants. Used when no Redis is configured.
type NopLease struct{}

func (NopLease) Acquire(context.Context) (string, bool, error) { return "", true, nil }
func (NopLease) Release(context.Context, string) error         { return nil }
