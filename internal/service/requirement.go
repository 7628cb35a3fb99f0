package service

import (
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/glentakahashi/spt-pityloot/internal/app/appconfig"
	"github.com/glentakahashi/spt-pityloot/internal/model"
	"github.com/glentakahashi/spt-pityloot/internal/util"
)

// Requirement collects the item requirements of a profile's open quests and attainable
// hideout upgrades.
type Requirement struct {
	Settings model.Settings

	now func() time.Time
}

func NewRequirement(conf *appconfig.Config) *Requirement {
	return &Requirement{
		Settings: conf.Tuning,
		now:      time.Now,
	}
}

// PossibleHideoutUpgrades returns, for every area whose next level has all its area,
// skill and trader prerequisites met, that level and the items it needs.
func (s *Requirement) PossibleHideoutUpgrades(areas []*model.HideoutArea, profile *model.Profile) []*model.HideoutUpgrade {
	pmc := &profile.Characters.PMC

	completed := map[model.AreaType]int{}
	for _, a := range pmc.Hideout.Areas {
		if a.Constructing {
			continue
		}
		completed[a.Type] = a.Level
	}
	skills := map[string]int{}
	for _, skill := range pmc.Skills.Common {
		skills[skill.ID] = util.SkillLevelFromProgress(skill.Progress)
	}

	upgrades := make([]*model.HideoutUpgrade, 0, len(areas))
	for _, area := range areas {
		if area == nil {
			continue
		}
		next := completed[area.Type] + 1
		stage, ok := area.Stages[strconv.Itoa(next)]
		if !ok {
			continue
		}

		canUpgrade := true
		var requiredItems []model.RequiredItem
		for _, req := range stage.Requirements {
			switch req.Type {
			case model.StageRequirementArea:
				if !req.AreaType.Valid || !req.RequiredLevel.Valid {
					logMalformedStage(area, next, req, "missing area details")
					continue
				}
				if int64(completed[model.AreaType(req.AreaType.Int64)]) < req.RequiredLevel.Int64 {
					canUpgrade = false
				}
			case model.StageRequirementSkill:
				if !req.SkillLevel.Valid || req.SkillName.String == "" {
					logMalformedStage(area, next, req, "missing skill details")
					continue
				}
				if int64(skills[req.SkillName.String]) < req.SkillLevel.Int64 {
					canUpgrade = false
				}
			case model.StageRequirementTraderLoyalty:
				if req.TraderID.String == "" || !req.LoyaltyLevel.Valid {
					logMalformedStage(area, next, req, "missing trader details")
					continue
				}
				if int64(pmc.TradersInfo[req.TraderID.String].LoyaltyLevel) < req.LoyaltyLevel.Int64 {
					canUpgrade = false
				}
			case model.StageRequirementItem:
				if !req.Count.Valid || req.TemplateID.String == "" {
					logMalformedStage(area, next, req, "missing item details")
					continue
				}
				if req.Count.Int64 <= 0 {
					continue
				}
				requiredItems = append(requiredItems, model.RequiredItem{
					ID:    req.TemplateID.String,
					Count: int(req.Count.Int64),
				})
			default:
				log.Debug().
					Str("evt.name", "requirement.hideout.unknown").
					Int("area", int(area.Type)).
					Int("level", next).
					Str("type", req.Type).
					Msg("ignoring unknown hideout stage requirement")
			}
		}

		if canUpgrade {
			upgrades = append(upgrades, &model.HideoutUpgrade{
				Area:          area.Type,
				Level:         next,
				RequiredItems: requiredItems,
			})
		}
	}

	return upgrades
}

func logMalformedStage(area *model.HideoutArea, level int, req model.StageRequirement, msg string) {
	log.Warn().
		Str("evt.name", "requirement.hideout.malformed").
		Int("area", int(area.Type)).
		Int("level", level).
		Str("type", req.Type).
		Msg(msg)
}

// HideoutRequirements turns upgrades into requirements aged by the tracked progress of their area.
func (s *Requirement) HideoutRequirements(upgrades []*model.HideoutUpgrade, tracker *model.UserPityTracker) []*model.ItemRequirement {
	nowMilli := s.now().UnixMilli()

	var reqs []*model.ItemRequirement
	for _, upgrade := range upgrades {
		var seconds int64
		var raids int
		if progress, ok := tracker.Hideout[upgrade.Area]; ok {
			raids = progress.RaidsSinceStarted
			if progress.TimeAvailable > 0 {
				seconds = max(0, int64(util.RoundHalfUp(float64(nowMilli-progress.TimeAvailable)/1000)))
			}
		}

		for _, item := range upgrade.RequiredItems {
			reqs = append(reqs, &model.ItemRequirement{
				Type:                model.RequirementTypeHideout,
				ItemID:              item.ID,
				AmountRequired:      item.Count,
				SecondsSinceStarted: seconds,
				RaidsSinceStarted:   raids,
			})
		}
	}
	return reqs
}

// QuestRequirements returns the requirements of every started quest: its incomplete
// hand-over and leave-at-location conditions, its keys when key tracking is enabled,
// and its weapon assembly parts when gunsmith tracking is enabled.
func (s *Requirement) QuestRequirements(profile *model.Profile, quests map[string]*model.Quest, tracker *model.UserPityTracker) []*model.ItemRequirement {
	nowSeconds := float64(s.now().UnixMilli()) / 1000

	var reqs []*model.ItemRequirement
	for _, status := range profile.Characters.PMC.Quests {
		if status.Status != model.QuestStatusStarted {
			continue
		}
		quest, ok := quests[status.QID]
		if !ok || quest == nil {
			continue
		}

		seconds := questSecondsSinceStarted(status, nowSeconds)
		raids := tracker.Quests[status.QID].RaidsSinceStarted
		aged := func(r *model.ItemRequirement) *model.ItemRequirement {
			r.SecondsSinceStarted = seconds
			r.RaidsSinceStarted = raids
			return r
		}

		for _, cond := range quest.Conditions.AvailableForFinish {
			if lo.Contains(status.CompletedConditions, cond.ID) {
				continue
			}

			switch cond.ConditionType {
			case model.ConditionTypeHandoverItem, model.ConditionTypeLeaveItemAtLocation:
				if len(cond.Target) == 0 || cond.Target[0] == "" || cond.Value <= 0 {
					continue
				}
				reqs = append(reqs, aged(&model.ItemRequirement{
					Type:           model.RequirementTypeQuest,
					ItemID:         cond.Target[0],
					AmountRequired: int(cond.Value),
					ConditionID:    cond.ID,
					FoundInRaid:    cond.OnlyFoundInRaid,
				}))
			case model.ConditionTypeWeaponAssembly:
				if !s.Settings.IncludeGunsmithParts {
					continue
				}
				for _, part := range lo.Uniq([]string(cond.ContainsItems)) {
					reqs = append(reqs, aged(&model.ItemRequirement{
						Type:           model.RequirementTypeGunsmith,
						ItemID:         part,
						AmountRequired: 1,
					}))
				}
			}
		}

		if s.Settings.IncludeKeys {
			for _, key := range s.Settings.QuestKeys[status.QID] {
				reqs = append(reqs, aged(&model.ItemRequirement{
					Type:           model.RequirementTypeQuestKey,
					ItemID:         key,
					AmountRequired: 1,
				}))
			}
		}
	}
	return reqs
}

// questSecondsSinceStarted prefers the status start time and falls back to the Started
// status timer. The host sometimes records a start time of 0.
func questSecondsSinceStarted(status model.QuestStatus, nowSeconds float64) int64 {
	startTime := status.StartTime
	if startTime <= 0 {
		startTime = status.StatusTimers[strconv.Itoa(int(model.QuestStatusStarted))]
	}
	if startTime <= 0 {
		return 0
	}
	return max(0, int64(util.RoundHalfUp(nowSeconds-startTime)))
}
