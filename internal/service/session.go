package service

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/zeebo/xxh3"

	"github.com/glentakahashi/spt-pityloot/internal/app/appconfig"
	"github.com/glentakahashi/spt-pityloot/internal/model"
	"github.com/glentakahashi/spt-pityloot/internal/model/types"
	"github.com/glentakahashi/spt-pityloot/internal/pkg/cache"
	"github.com/glentakahashi/spt-pityloot/internal/pkg/observability"
	"github.com/glentakahashi/spt-pityloot/internal/pkg/plerr"
)

// Session holds the baseline tables of every active game session, keyed by profile id.
type Session struct {
	sessions *cache.Set[*model.Session]
	now      func() time.Time
}

func NewSession(conf *appconfig.Config) *Session {
	return &Session{
		sessions: cache.NewSet[*model.Session]("session", conf.SessionTTL),
		now:      time.Now,
	}
}

// Capture stores the tables of req as the baseline of the profile's session, replacing
// any previous one.
func (s *Session) Capture(req *types.SessionStartRequest) (*model.Session, error) {
	fingerprint, err := Fingerprint(req)
	if err != nil {
		return nil, err
	}

	session := &model.Session{
		ProfileID:    req.Profile.Info.ID,
		Locations:    req.Locations,
		Bots:         req.Bots,
		Quests:       req.Quests,
		HideoutAreas: req.HideoutAreas,
		CapturedAt:   s.now(),
		Fingerprint:  fingerprint,
	}
	if session.Quests == nil {
		session.Quests = map[string]*model.Quest{}
	}

	s.sessions.Set(session.ProfileID, session)
	observability.ActiveSessions.Set(float64(s.sessions.Count()))

	log.Info().
		Str("evt.name", "session.capture").
		Str("profile", session.ProfileID).
		Str("fingerprint", fingerprint).
		Int("locations", len(req.Locations.Maps)).
		Int("bots", len(req.Bots.Types)).
		Msg("captured session baseline")

	return session, nil
}

// Get returns the captured session of profileID and refreshes its expiry.
func (s *Session) Get(profileID string) (*model.Session, error) {
	session, err := s.sessions.Get(profileID)
	if err != nil {
		if errors.Is(err, cache.ErrNotFound) {
			return nil, plerr.ErrSessionNotFound.Msg("no session captured for profile %s", profileID)
		}
		return nil, err
	}
	s.sessions.Touch(profileID)
	return session, nil
}

func (s *Session) Delete(profileID string) {
	s.sessions.Delete(profileID)
	observability.ActiveSessions.Set(float64(s.sessions.Count()))
}

// Count is the number of sessions currently held.
func (s *Session) Count() int {
	return s.sessions.Count()
}

// Fingerprint hashes the host tables of req. Equal tables always produce equal fingerprints.
func Fingerprint(req *types.SessionStartRequest) (string, error) {
	h := xxh3.New()
	enc := json.NewEncoder(h)
	for _, v := range []any{req.Locations, req.Bots, req.Quests, req.HideoutAreas} {
		if err := enc.Encode(v); err != nil {
			return "", errors.Wrap(err, "failed to fingerprint session tables")
		}
	}
	return fmt.Sprintf("%016x", h.Sum64()), nil
}
