package service

import (
	"github.com/rs/zerolog/log"

	"github.com/glentakahashi/spt-pityloot/internal/app/appconfig"
	"github.com/glentakahashi/spt-pityloot/internal/model"
	"github.com/glentakahashi/spt-pityloot/internal/util"
)

// UpdateFunc maps an item's relative spawn probability at label to its boosted value.
type UpdateFunc func(itemID string, relativeProbability float64, label string) float64

type Multiplier struct {
	Settings model.Settings
}

func NewMultiplier(conf *appconfig.Config) *Multiplier {
	return &Multiplier{Settings: conf.Tuning}
}

// LootProbabilityUpdater rewrites relative probabilities for one recalculation pass.
type LootProbabilityUpdater struct {
	settings    model.Settings
	multipliers map[string]model.ItemDropRateMultiplier
	wishlist    map[string]float64
}

// NewUpdater derives per-item multipliers from incomplete requirements and the
// profile's wishlist.
func (s *Multiplier) NewUpdater(profile *model.Profile, incomplete []*model.ItemRequirement) *LootProbabilityUpdater {
	u := &LootProbabilityUpdater{
		settings:    s.Settings,
		multipliers: s.ItemMultipliers(incomplete),
		wishlist:    map[string]float64{},
	}

	if s.Settings.AppliesToWishlist {
		for itemID, category := range profile.Characters.PMC.WishList {
			mult := s.Settings.WishlistMultipliers.ForCategory(category)
			if mult == 0 {
				continue
			}
			u.wishlist[itemID] = mult
			log.Debug().
				Str("evt.name", "multiplier.wishlist").
				Str("item", itemID).
				Int("category", int(category)).
				Float64("multiplier", mult).
				Msg("applied static wishlist multiplier")
		}
	}

	return u
}

// ItemMultipliers computes the time and raid based multiplier of every item with an
// incomplete requirement. Multipliers start at 1 and never decrease. With increasesStack
// each requirement adds its increment on top of the running value, otherwise the
// largest single requirement wins.
func (s *Multiplier) ItemMultipliers(incomplete []*model.ItemRequirement) map[string]model.ItemDropRateMultiplier {
	multipliers := map[string]model.ItemDropRateMultiplier{}
	for _, req := range incomplete {
		stats, ok := multipliers[req.ItemID]
		if !ok {
			stats = model.ItemDropRateMultiplier{
				TimeBasedDropRateMultiplier: 1,
				RaidBasedDropRateMultiplier: 1,
				IsKey:                       req.Type == model.RequirementTypeQuestKey,
			}
		}

		hours := util.RoundHalfUp(float64(req.SecondsSinceStarted) / 3600)
		timeBase, raidBase := 1.0, 1.0
		if s.Settings.IncreasesStack {
			timeBase, raidBase = stats.TimeBasedDropRateMultiplier, stats.RaidBasedDropRateMultiplier
		}
		stats.TimeBasedDropRateMultiplier = max(stats.TimeBasedDropRateMultiplier,
			hours*s.Settings.DropRateIncreasePerHour+timeBase)
		stats.RaidBasedDropRateMultiplier = max(stats.RaidBasedDropRateMultiplier,
			float64(req.RaidsSinceStarted)*s.Settings.DropRateIncreasePerRaid+raidBase)

		multipliers[req.ItemID] = stats
	}

	for itemID, stats := range multipliers {
		log.Debug().
			Str("evt.name", "multiplier.item").
			Str("item", itemID).
			Str("type", s.Settings.DropRateIncreaseType).
			Float64("multiplier", stats.Active(s.Settings.ByRaid())).
			Msg("calculated drop rate multiplier")
	}

	return multipliers
}

// Update returns the boosted relative probability of itemID. Wishlist multipliers take
// precedence and are applied unrounded. Requirement multipliers are capped, scaled for
// keys and rounded to the nearest integer. Other items are returned unchanged.
func (u *LootProbabilityUpdater) Update(itemID string, relativeProbability float64, label string) float64 {
	updated := relativeProbability
	if mult, ok := u.wishlist[itemID]; ok {
		updated *= mult
	} else if stats, ok := u.multipliers[itemID]; ok {
		updated *= min(u.settings.MaxDropRateMultiplier, stats.Active(u.settings.ByRaid()))
		if stats.IsKey {
			updated *= u.settings.KeysAdditionalMultiplier
		}
		updated = util.RoundHalfUp(updated)
	}

	log.Trace().
		Str("evt.name", "multiplier.update").
		Str("item", itemID).
		Str("label", label).
		Float64("from", relativeProbability).
		Float64("to", updated).
		Msg("updated drop rate")

	return updated
}

// Multipliers returns a copy of the per-item requirement multipliers.
func (u *LootProbabilityUpdater) Multipliers() map[string]model.ItemDropRateMultiplier {
	c := make(map[string]model.ItemDropRateMultiplier, len(u.multipliers))
	for k, v := range u.multipliers {
		c[k] = v
	}
	return c
}

// Boosted is the number of distinct items whose probability the updater changes.
func (u *LootProbabilityUpdater) Boosted() int {
	n := len(u.wishlist)
	for itemID := range u.multipliers {
		if _, ok := u.wishlist[itemID]; !ok {
			n++
		}
	}
	return n
}
