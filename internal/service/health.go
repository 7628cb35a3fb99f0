package service

import (
	"context"

	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/glentakahashi/spt-pityloot/internal/repo"
)

var (
	ErrTrackerNotReadable = errors.New("tracker record not readable")
	ErrRedisNotReachable  = errors.New("redis not reachable")
	ErrNATSNotReachable   = errors.New("nats not reachable")
)

type Health struct {
	TrackerRepo *repo.Tracker
	Redis       *redis.Client
	NATS        *nats.Conn
}

func NewHealth(trackerRepo *repo.Tracker, redis *redis.Client, nats *nats.Conn) *Health {
	return &Health{
		TrackerRepo: trackerRepo,
		Redis:       redis,
		NATS:        nats,
	}
}

// Ping checks the tracker record and whichever optional backends are configured.
func (s *Health) Ping(ctx context.Context) error {
	if _, err := s.TrackerRepo.Load(ctx); err != nil {
		return errors.Wrap(ErrTrackerNotReadable, err.Error())
	}

	if s.Redis != nil {
		if err := s.Redis.Ping(ctx).Err(); err != nil {
			return errors.Wrap(ErrRedisNotReachable, err.Error())
		}
	}

	// nats does automatic ping for 20 seconds interval (configured at infra/nats.go)
	if s.NATS != nil {
		status := s.NATS.Status()
		if status != nats.CONNECTED && status != nats.DRAINING_PUBS && status != nats.DRAINING_SUBS {
			return errors.Wrap(ErrNATSNotReachable, status.String())
		}
	}

	return nil
}
