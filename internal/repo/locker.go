package repo

import (
	"context"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/glentakahashi/spt-pityloot/internal/app/appconfig"
	"github.com/glentakahashi/spt-pityloot/internal/constant"
	"github.com/glentakahashi/spt-pityloot/internal/pkg/plerr"
)

// RecordLocker serializes writers of the tracker record. Within a process a single
// slot is used; when Redis is configured a redsync mutex additionally excludes other
// processes sharing the data directory.
type RecordLocker struct {
	slot    chan struct{}
	rs      *redsync.Redsync
	timeout time.Duration
}

func NewRecordLocker(conf *appconfig.Config, rs *redsync.Redsync) *RecordLocker {
	return &RecordLocker{
		slot:    make(chan struct{}, 1),
		rs:      rs,
		timeout: conf.LockTimeout,
	}
}

// Lock blocks until the record is exclusively held or the lock timeout elapses. The
// returned function releases the lock.
func (l *RecordLocker) Lock(ctx context.Context) (func(), error) {
	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	select {
	case l.slot <- struct{}{}:
	case <-ctx.Done():
		return nil, plerr.ErrLocked.Msg("tracker record lock: %s", ctx.Err())
	}

	if l.rs == nil {
		return l.releaseLocal, nil
	}

	mutex := l.rs.NewMutex(constant.LockNameTrackerRecord,
		redsync.WithExpiry(30*time.Second),
		redsync.WithTries(64),
		redsync.WithRetryDelay(50*time.Millisecond))
	if err := mutex.LockContext(ctx); err != nil {
		l.releaseLocal()
		return nil, errors.Wrap(err, "repo: failed to acquire distributed tracker record lock")
	}

	return func() {
		if _, err := mutex.Unlock(); err != nil {
			log.Warn().
				Str("evt.name", "tracker.unlock").
				Err(err).
				Msg("failed to release distributed tracker record lock")
		}
		l.releaseLocal()
	}, nil
}

func (l *RecordLocker) releaseLocal() {
	<-l.slot
}
