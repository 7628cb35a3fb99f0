package service

import (
	"context"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/glentakahashi/spt-pityloot/internal/app/appconfig"
	"github.com/glentakahashi/spt-pityloot/internal/model"
	"github.com/glentakahashi/spt-pityloot/internal/model/types"
	"github.com/glentakahashi/spt-pityloot/internal/pkg/observability"
)

var tracer = otel.Tracer("service")

var requirementTypes = []model.RequirementType{
	model.RequirementTypeQuest,
	model.RequirementTypeQuestKey,
	model.RequirementTypeHideout,
	model.RequirementTypeGunsmith,
}

// Recalculation runs the whole pipeline for one host event: tracker update, requirement
// collection, reconciliation, multipliers and loot table rewriting.
type Recalculation struct {
	Settings model.Settings

	RequirementService *Requirement
	ReconcilerService  *Reconciler
	MultiplierService  *Multiplier
	LootTableService   *LootTable
	TrackerService     *Tracker
	NotifierService    *Notifier

	locksMu      sync.Mutex
	profileLocks map[string]*profileLock
}

type profileLock struct {
	mu   sync.Mutex
	refs int
}

func NewRecalculation(conf *appconfig.Config, requirementService *Requirement, reconcilerService *Reconciler, multiplierService *Multiplier, lootTableService *LootTable, trackerService *Tracker, notifierService *Notifier) *Recalculation {
	return &Recalculation{
		Settings:           conf.Tuning,
		RequirementService: requirementService,
		ReconcilerService:  reconcilerService,
		MultiplierService:  multiplierService,
		LootTableService:   lootTableService,
		TrackerService:     trackerService,
		NotifierService:    notifierService,
		profileLocks:       map[string]*profileLock{},
	}
}

// lock serializes passes of profileID. An entry lives only while a pass holds or waits on it.
func (s *Recalculation) lock(profileID string) func() {
	s.locksMu.Lock()
	l, ok := s.profileLocks[profileID]
	if !ok {
		l = &profileLock{}
		s.profileLocks[profileID] = l
	}
	l.refs++
	s.locksMu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()

		s.locksMu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.profileLocks, profileID)
		}
		s.locksMu.Unlock()
	}
}

// IncrementsRaidCount reports whether event ends a raid that counts towards pity.
func (s *Recalculation) IncrementsRaidCount(event types.EventKind, isScav bool) bool {
	return event == types.EventRaidEnd && (!isScav || s.Settings.IncludeScavRaids)
}

// Recalculate rewrites the baseline tables of session for the current state of profile.
// Passes of the same profile never overlap. When the engine is disabled the baseline
// tables are returned as-is and the tracker is left alone.
func (s *Recalculation) Recalculate(ctx context.Context, session *model.Session, profile *model.Profile, event types.EventKind, isScav bool) (*model.RecalculationResult, error) {
	profileID := profile.Info.ID
	unlock := s.lock(profileID)
	defer unlock()

	start := time.Now()
	passID := ulid.Make().String()

	ctx, span := tracer.Start(ctx, "service.recalculation",
		trace.WithAttributes(
			attribute.String("pityloot.profile", profileID),
			attribute.String("pityloot.event", string(event)),
			attribute.String("pityloot.pass", passID),
		))
	defer span.End()

	logger := log.With().
		Str("pass", passID).
		Str("profile", profileID).
		Str("event", string(event)).
		Logger()

	if !s.Settings.Enabled {
		tracker, err := s.TrackerService.Peek(profileID)
		if err != nil {
			return nil, err
		}
		logger.Debug().Str("evt.name", "recalculation.disabled").Msg("engine disabled, returning baseline tables")
		return &model.RecalculationResult{
			PassID:      passID,
			ProfileID:   profileID,
			Locations:   session.Locations,
			Bots:        session.Bots,
			Multipliers: map[string]model.ItemDropRateMultiplier{},
			Tracker:     tracker,

			IncompleteRequirements: []*model.ItemRequirement{},
		}, nil
	}

	upgrades := s.RequirementService.PossibleHideoutUpgrades(session.HideoutAreas, profile)
	tracker, err := s.TrackerService.Update(ctx, profile, upgrades, s.IncrementsRaidCount(event, isScav))
	if err != nil {
		return nil, errors.Wrap(err, "failed to update tracker")
	}

	_, reqSpan := tracer.Start(ctx, "service.recalculation.requirements")
	var questReqs, hideoutReqs []*model.ItemRequirement
	if s.Settings.QuestsEnabled {
		questReqs = s.RequirementService.QuestRequirements(profile, session.Quests, tracker)
	}
	if s.Settings.HideoutEnabled {
		hideoutReqs = s.RequirementService.HideoutRequirements(upgrades, tracker)
	}
	incomplete := s.ReconcilerService.IncompleteRequirements(profile, questReqs, hideoutReqs)
	updater := s.MultiplierService.NewUpdater(profile, incomplete)
	reqSpan.End()

	for _, req := range incomplete {
		logger.Debug().
			Str("evt.name", "recalculation.incomplete").
			Str("type", string(req.Type)).
			Str("item", req.ItemID).
			Int("amount", req.AmountRequired).
			Msg("found incomplete item requirement")
	}

	rewriteCtx, rewriteSpan := tracer.Start(ctx, "service.recalculation.rewrite")
	locations, err := s.LootTableService.UpdatedLocationLoot(rewriteCtx, updater.Update, session.Locations, incomplete)
	if err != nil {
		rewriteSpan.End()
		return nil, errors.Wrap(err, "failed to rewrite location loot")
	}
	bots := s.LootTableService.UpdatedBotTables(updater.Update, session.Bots)
	rewriteSpan.End()

	byType := lo.GroupBy(incomplete, func(r *model.ItemRequirement) model.RequirementType { return r.Type })
	for _, t := range requirementTypes {
		observability.IncompleteRequirements.WithLabelValues(string(t)).Set(float64(len(byType[t])))
	}
	observability.BoostedItems.Set(float64(updater.Boosted()))
	observability.RecalculationDuration.WithLabelValues(string(event)).Observe(time.Since(start).Seconds())

	if err := s.NotifierService.Recalculated(&types.RecalculationSummary{
		PassID:                 passID,
		ProfileID:              profileID,
		Event:                  string(event),
		IncompleteRequirements: len(incomplete),
		BoostedItems:           updater.Boosted(),
	}); err != nil {
		logger.Warn().Err(err).Str("evt.name", "recalculation.notify").Msg("failed to publish recalculation summary")
	}

	logger.Info().
		Str("evt.name", "recalculation.done").
		Int("incomplete", len(incomplete)).
		Int("boosted", updater.Boosted()).
		Dur("took", time.Since(start)).
		Msg("recalculated loot tables")

	if incomplete == nil {
		incomplete = []*model.ItemRequirement{}
	}
	return &model.RecalculationResult{
		PassID:                 passID,
		ProfileID:              profileID,
		Locations:              locations,
		Bots:                   bots,
		IncompleteRequirements: incomplete,
		Multipliers:            updater.Multipliers(),
		Tracker:                tracker,
	}, nil
}
