package service

import (
	"context"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/glentakahashi/spt-pityloot/internal/app/appconfig"
	"github.com/glentakahashi/spt-pityloot/internal/constant"
	"github.com/glentakahashi/spt-pityloot/internal/model"
	"github.com/glentakahashi/spt-pityloot/internal/pkg/async"
	"github.com/glentakahashi/spt-pityloot/internal/pkg/wrap"
)

// LootTable produces rewritten copies of the host's location and bot loot tables.
// Inputs are never modified.
type LootTable struct {
	Concurrency int
}

func NewLootTable(conf *appconfig.Config) *LootTable {
	return &LootTable{Concurrency: conf.RewriteConcurrency}
}

// UpdatedLocationLoot rewrites every location's static containers, loose loot spawn
// points and static ammo through update. Missing gunsmith parts and quest keys are
// seeded into their dedicated containers first so they can spawn at all. The "base"
// pseudo-location and locations lacking any of the three tables are passed through.
func (s *LootTable) UpdatedLocationLoot(ctx context.Context, update UpdateFunc, locations *model.Locations, incomplete []*model.ItemRequirement) (*model.Locations, error) {
	var missingKeys, missingParts []string
	for _, req := range incomplete {
		if req.Type == model.RequirementTypeQuestKey || req.ItemID == constant.LabsKeycardID {
			missingKeys = append(missingKeys, req.ItemID)
		}
		if req.Type == model.RequirementTypeGunsmith {
			missingParts = append(missingParts, req.ItemID)
		}
	}
	missingKeys, missingParts = lo.Uniq(missingKeys), lo.Uniq(missingParts)

	rewritten, err := async.Map(ctx, wrap.Entries(locations.Maps), s.Concurrency,
		func(ctx context.Context, t wrap.Entry[string, *model.Location]) (wrap.Entry[string, *model.Location], error) {
			if err := ctx.Err(); err != nil {
				return t, err
			}
			if !t.Val.HasLootTables() {
				log.Warn().
					Str("evt.name", "loottable.location.invalid").
					Str("location", t.Key).
					Msg("location is missing loot tables, passing through")
				return t, nil
			}
			location, err := s.updatedLocation(update, t.Val, missingKeys, missingParts)
			if err != nil {
				return t, errors.Wrapf(err, "failed to rewrite location %s", t.Key)
			}
			return wrap.Entry[string, *model.Location]{Key: t.Key, Val: location}, nil
		})
	if err != nil {
		return nil, err
	}

	return &model.Locations{
		Base: locations.Base,
		Maps: wrap.Collect(rewritten),
	}, nil
}

func (s *LootTable) updatedLocation(update UpdateFunc, location *model.Location, missingKeys, missingParts []string) (*model.Location, error) {
	staticLoot := make(map[string]*model.StaticLootDetails, len(location.StaticLoot))
	for containerID, container := range location.StaticLoot {
		if container == nil {
			staticLoot[containerID] = nil
			continue
		}

		dist := make([]model.ItemDistribution, len(container.ItemDistribution))
		copy(dist, container.ItemDistribution)
		if lo.Contains(constant.GunsmithContainerIDs, containerID) {
			dist = seedContainer(containerID, dist, missingParts, "gunsmith part")
		}
		if lo.Contains(constant.QuestKeyContainerIDs, containerID) {
			dist = seedContainer(containerID, dist, missingKeys, "quest key")
		}

		label := "container " + containerID
		for i := range dist {
			dist[i].RelativeProbability = update(dist[i].Tpl, dist[i].RelativeProbability, label)
		}

		details := &model.StaticLootDetails{ItemDistribution: dist}
		if err := copier.CopyWithOption(&details.ItemcountDistribution, container.ItemcountDistribution, copier.Option{DeepCopy: true}); err != nil {
			return nil, errors.Wrapf(err, "failed to copy item count distribution of container %s", containerID)
		}
		staticLoot[containerID] = details
	}

	spawnpoints := make([]*model.Spawnpoint, len(location.LooseLoot.Spawnpoints))
	for i, spawnpoint := range location.LooseLoot.Spawnpoints {
		if spawnpoint == nil {
			continue
		}
		items := spawnpoint.TemplateItems()
		label := fmt.Sprintf("spawnpoint %s (%s)", spawnpoint.LocationID, spawnpoint.TemplateID())

		dist := make([]model.LooseLootItemDistribution, len(spawnpoint.ItemDistribution))
		for j, d := range spawnpoint.ItemDistribution {
			dist[j] = d
			tpl, ok := items[d.ComposedKey.Key]
			if !ok {
				continue
			}
			dist[j].RelativeProbability = update(tpl, d.RelativeProbability, label)
		}
		spawnpoints[i] = spawnpoint.WithItemDistribution(dist)
	}

	staticAmmo := make(map[string][]model.StaticAmmoDetails, len(location.StaticAmmo))
	for ammoID, details := range location.StaticAmmo {
		label := "ammo " + ammoID
		rewritten := make([]model.StaticAmmoDetails, len(details))
		for i, d := range details {
			rewritten[i] = model.StaticAmmoDetails{
				Tpl:                 d.Tpl,
				RelativeProbability: update(d.Tpl, d.RelativeProbability, label),
			}
		}
		staticAmmo[ammoID] = rewritten
	}

	return location.WithLootTables(location.LooseLoot.WithSpawnpoints(spawnpoints), staticLoot, staticAmmo), nil
}

// seedContainer appends every missing item the container does not already list.
func seedContainer(containerID string, dist []model.ItemDistribution, missing []string, kind string) []model.ItemDistribution {
	for _, itemID := range missing {
		if lo.ContainsBy(dist, func(d model.ItemDistribution) bool { return d.Tpl == itemID }) {
			continue
		}
		log.Debug().
			Str("evt.name", "loottable.container.seed").
			Str("container", containerID).
			Str("item", itemID).
			Str("kind", kind).
			Float64("probability", constant.SyntheticSpawnWeight).
			Msg("adding missing item to container")
		dist = append(dist, model.ItemDistribution{
			Tpl:                 itemID,
			RelativeProbability: constant.SyntheticSpawnWeight,
		})
	}
	return dist
}

// UpdatedBotTables rewrites the equipment and item pools of every bot role except
// player-faction and event roles.
func (s *LootTable) UpdatedBotTables(update UpdateFunc, bots *model.Bots) *model.Bots {
	types := make(map[string]*model.BotType, len(bots.Types))
	for botType, bot := range bots.Types {
		if bot == nil || lo.Contains(constant.IgnoredBotTypes, botType) {
			types[botType] = bot
			continue
		}
		types[botType] = bot.WithPools(
			updatedPools(update, bot.Equipment, fmt.Sprintf("bot %s equipment", botType)),
			updatedPools(update, bot.Items, fmt.Sprintf("bot %s items", botType)),
		)
	}
	return bots.WithTypes(types)
}

func updatedPools(update UpdateFunc, pools model.ProbabilityPools, label string) model.ProbabilityPools {
	rewritten := pools.Clone()
	for name, pool := range rewritten {
		poolLabel := label + " " + name
		for itemID, weight := range pool {
			pool[itemID] = update(itemID, weight, poolLabel)
		}
	}
	return rewritten
}
