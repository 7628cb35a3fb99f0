package repo

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/glentakahashi/spt-pityloot/internal/app/appconfig"
	"github.com/glentakahashi/spt-pityloot/internal/constant"
	"github.com/glentakahashi/spt-pityloot/internal/model"
	"github.com/glentakahashi/spt-pityloot/internal/pkg/cache"
	"github.com/glentakahashi/spt-pityloot/internal/pkg/observability"
)

// Tracker is the durable pity tracker record: one pretty-printed JSON file mapping
// profile ids to their tracker.
type Tracker struct {
	path     string
	locker   *RecordLocker
	cache    *cache.Singular[model.PityTrackerRecord]
	cacheTTL time.Duration
}

func NewTracker(conf *appconfig.Config, locker *RecordLocker) *Tracker {
	return &Tracker{
		path:     filepath.Join(conf.DataDir, constant.TrackerFileName),
		locker:   locker,
		cache:    cache.NewSingular[model.PityTrackerRecord]("tracker-record"),
		cacheTTL: conf.TrackerCacheTTL,
	}
}

// Path is the location of the record on disk.
func (r *Tracker) Path() string {
	return r.path
}

// Load returns the whole record, creating an empty one on disk if none exists yet.
// The returned map may be modified by the caller; the trackers it holds may not.
func (r *Tracker) Load(ctx context.Context) (model.PityTrackerRecord, error) {
	record, err := r.cache.MutexGetSet(func() (model.PityTrackerRecord, error) {
		return r.readOrCreate(ctx)
	}, r.cacheTTL)
	if err != nil {
		return nil, err
	}
	return record.Clone(), nil
}

// LoadForProfile returns a private copy of the profile's tracker, or a fresh empty one.
// A fresh tracker is not persisted until it is saved.
func (r *Tracker) LoadForProfile(ctx context.Context, profileID string) (*model.UserPityTracker, error) {
	record, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}
	if tracker, ok := record[profileID]; ok && tracker != nil {
		return tracker.Clone(), nil
	}
	return model.NewUserPityTracker(), nil
}

// Peek is LoadForProfile without side effects: the record is never created and a
// record read from disk is not cached.
func (r *Tracker) Peek(profileID string) (*model.UserPityTracker, error) {
	record, err := r.cache.Get()
	if err != nil {
		if record, err = r.read(); err != nil {
			return nil, err
		}
	}
	if tracker, ok := record[profileID]; ok && tracker != nil {
		return tracker.Clone(), nil
	}
	return model.NewUserPityTracker(), nil
}

// Save replaces the profile's entry and rewrites the whole record. The read and the
// write happen under the record lock; the last writer wins.
func (r *Tracker) Save(ctx context.Context, profileID string, tracker *model.UserPityTracker) error {
	unlock, err := r.locker.Lock(ctx)
	if err != nil {
		observability.TrackerSaves.WithLabelValues("locked").Inc()
		return err
	}
	defer unlock()

	// read from disk rather than the cache: another process may have written since
	record, err := r.read()
	if err != nil {
		observability.TrackerSaves.WithLabelValues("error").Inc()
		return err
	}
	record[profileID] = tracker.Clone()

	if err := r.write(record); err != nil {
		observability.TrackerSaves.WithLabelValues("error").Inc()
		return err
	}
	r.cache.Set(record, r.cacheTTL)
	observability.TrackerSaves.WithLabelValues("ok").Inc()

	log.Debug().
		Str("evt.name", "tracker.save").
		Str("profileId", profileID).
		Int("hideout", len(tracker.Hideout)).
		Int("quests", len(tracker.Quests)).
		Msg("saved pity tracker")
	return nil
}

func (r *Tracker) readOrCreate(ctx context.Context) (model.PityTrackerRecord, error) {
	if _, err := os.Stat(r.path); err == nil {
		return r.read()
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "repo: failed to stat %s", r.path)
	}

	unlock, err := r.locker.Lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	record, err := r.read()
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(r.path); os.IsNotExist(err) {
		log.Info().
			Str("evt.name", "tracker.create").
			Str("path", r.path).
			Msg("tracker record not found, creating an empty one")
		if err := r.write(record); err != nil {
			return nil, err
		}
	}
	return record, nil
}

// read decodes the record from disk. A missing file is an empty record.
func (r *Tracker) read() (model.PityTrackerRecord, error) {
	b, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.PityTrackerRecord{}, nil
		}
		return nil, errors.Wrapf(err, "repo: failed to read %s", r.path)
	}

	record := model.PityTrackerRecord{}
	if err := json.Unmarshal(b, &record); err != nil {
		return nil, errors.Wrapf(err, "repo: failed to decode %s", r.path)
	}
	for profileID, tracker := range record {
		if tracker == nil {
			record[profileID] = model.NewUserPityTracker()
			continue
		}
		if tracker.Hideout == nil {
			tracker.Hideout = map[model.AreaType]model.AreaProgress{}
		}
		if tracker.Quests == nil {
			tracker.Quests = map[string]model.QuestProgress{}
		}
	}
	return record, nil
}

// write replaces the record atomically: a temp file in the same directory is renamed over it.
func (r *Tracker) write(record model.PityTrackerRecord) error {
	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "repo: failed to create %s", dir)
	}

	b, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return errors.Wrap(err, "repo: failed to encode tracker record")
	}

	tmp, err := os.CreateTemp(dir, constant.TrackerFileName+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "repo: failed to create temp file")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return errors.Wrap(err, "repo: failed to write temp file")
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return errors.Wrap(err, "repo: failed to sync temp file")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "repo: failed to close temp file")
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return errors.Wrapf(err, "repo: failed to replace %s", r.path)
	}
	return nil
}
