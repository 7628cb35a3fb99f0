package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/glentakahashi/spt-pityloot/internal/model"
	"github.com/glentakahashi/spt-pityloot/internal/repo"
)

type Tracker struct {
	TrackerRepo *repo.Tracker

	now func() time.Time
}

func NewTracker(trackerRepo *repo.Tracker) *Tracker {
	return &Tracker{
		TrackerRepo: trackerRepo,
		now:         time.Now,
	}
}

func (s *Tracker) Get(ctx context.Context, profileID string) (*model.UserPityTracker, error) {
	return s.TrackerRepo.LoadForProfile(ctx, profileID)
}

// Peek returns the stored tracker of profileID without creating the record on disk.
func (s *Tracker) Peek(profileID string) (*model.UserPityTracker, error) {
	return s.TrackerRepo.Peek(profileID)
}

// Next derives the tracker that follows prev for the given profile state. Only started
// quests and attainable upgrades are kept. An upgrade whose level is above the tracked
// one starts over; otherwise its raid count carries on and its start time is kept.
func (s *Tracker) Next(prev *model.UserPityTracker, profile *model.Profile, upgrades []*model.HideoutUpgrade, incrementRaidCount bool) *model.UserPityTracker {
	increment := 0
	if incrementRaidCount {
		increment = 1
	}
	now := s.now().UnixMilli()

	next := model.NewUserPityTracker()
	for _, status := range profile.Characters.PMC.Quests {
		if status.Status != model.QuestStatusStarted {
			continue
		}
		next.Quests[status.QID] = model.QuestProgress{
			RaidsSinceStarted: prev.Quests[status.QID].RaidsSinceStarted + increment,
		}
	}

	for _, upgrade := range upgrades {
		old, ok := prev.Hideout[upgrade.Area]
		if !ok {
			old = model.AreaProgress{TimeAvailable: now}
		}
		if upgrade.Level > old.CurrentLevel {
			next.Hideout[upgrade.Area] = model.AreaProgress{
				CurrentLevel:      upgrade.Level,
				TimeAvailable:     now,
				RaidsSinceStarted: increment,
			}
			continue
		}
		old.RaidsSinceStarted += increment
		next.Hideout[upgrade.Area] = old
	}

	return next
}

// Update advances the stored tracker of profile and persists it.
func (s *Tracker) Update(ctx context.Context, profile *model.Profile, upgrades []*model.HideoutUpgrade, incrementRaidCount bool) (*model.UserPityTracker, error) {
	prev, err := s.TrackerRepo.LoadForProfile(ctx, profile.Info.ID)
	if err != nil {
		return nil, err
	}

	next := s.Next(prev, profile, upgrades, incrementRaidCount)
	if err := s.TrackerRepo.Save(ctx, profile.Info.ID, next); err != nil {
		return nil, err
	}

	log.Debug().
		Str("evt.name", "tracker.update").
		Str("profile", profile.Info.ID).
		Bool("increment", incrementRaidCount).
		Int("quests", len(next.Quests)).
		Int("areas", len(next.Hideout)).
		Msg("updated pity tracker")

	return next, nil
}
