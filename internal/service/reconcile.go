package service

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/glentakahashi/spt-pityloot/internal/app/appconfig"
	"github.com/glentakahashi/spt-pityloot/internal/constant"
	"github.com/glentakahashi/spt-pityloot/internal/model"
)

// Reconciler matches collected requirements against what the player already owns.
type Reconciler struct {
	Settings model.Settings
}

func NewReconciler(conf *appconfig.Config) *Reconciler {
	return &Reconciler{Settings: conf.Tuning}
}

// InventoryCounts tallies the inventory by item template, split by found-in-raid status.
func (s *Reconciler) InventoryCounts(profile *model.Profile) map[string]*model.InventoryCount {
	counts := map[string]*model.InventoryCount{}
	for i := range profile.Characters.PMC.Inventory.Items {
		item := &profile.Characters.PMC.Inventory.Items[i]
		if item.Tpl == "" {
			continue
		}
		count, ok := counts[item.Tpl]
		if !ok {
			count = &model.InventoryCount{}
			counts[item.Tpl] = count
		}
		if item.FoundInRaid() {
			count.FoundInRaid += item.StackCount()
		} else {
			count.NotFoundInRaid += item.StackCount()
		}
	}
	return counts
}

// IncompleteRequirements returns the requirements the inventory cannot cover, in a
// stable order. Found-in-raid quest requirements are served first so that they claim
// found-in-raid stock before requirements that would accept anything; the rest are
// served oldest first. Currencies are never incomplete.
func (s *Reconciler) IncompleteRequirements(profile *model.Profile, questReqs, hideoutReqs []*model.ItemRequirement) []*model.ItemRequirement {
	inventory := s.InventoryCounts(profile)
	counters := profile.Characters.PMC.TaskConditionCounters

	all := make([]*model.ItemRequirement, 0, len(questReqs)+len(hideoutReqs))
	all = append(all, questReqs...)
	all = append(all, hideoutReqs...)

	byRaid := s.Settings.ByRaid()
	sort.SliceStable(all, func(i, j int) bool {
		a, b := all[i], all[j]
		if a.RequiresFoundInRaid() != b.RequiresFoundInRaid() {
			return a.RequiresFoundInRaid()
		}
		if byRaid {
			return a.RaidsSinceStarted < b.RaidsSinceStarted
		}
		return a.SecondsSinceStarted < b.SecondsSinceStarted
	})

	var incomplete []*model.ItemRequirement
	for _, req := range all {
		if lo.Contains(constant.CurrencyItemIDs, req.ItemID) {
			continue
		}

		stock, ok := inventory[req.ItemID]
		if !ok {
			incomplete = append(incomplete, req)
			continue
		}

		needed := neededAmount(req, counters)
		if needed <= 0 {
			continue
		}
		if !consume(stock, needed, req.RequiresFoundInRaid()) {
			incomplete = append(incomplete, req)
		}
	}

	log.Trace().
		Str("evt.name", "reconcile.incomplete").
		Int("requirements", len(all)).
		Int("incomplete", len(incomplete)).
		Msg("reconciled requirements against inventory")

	return incomplete
}

func neededAmount(req *model.ItemRequirement, counters map[string]model.TaskConditionCounter) int {
	switch req.Type {
	case model.RequirementTypeQuestKey:
		return 1
	case model.RequirementTypeQuest:
		progress := 0
		if counter, ok := counters[req.ConditionID]; ok {
			progress = int(counter.Value)
		}
		return req.AmountRequired - progress
	case model.RequirementTypeHideout, model.RequirementTypeGunsmith:
		return req.AmountRequired
	default:
		panic(fmt.Sprintf("service: unknown requirement type %q", req.Type))
	}
}

// consume takes needed items from stock if it can cover them and reports whether it did.
// Stock is left untouched when it cannot. Requirements that accept either kind draw on
// non-found-in-raid items first.
func consume(stock *model.InventoryCount, needed int, foundInRaidOnly bool) bool {
	if foundInRaidOnly {
		if stock.FoundInRaid < needed {
			return false
		}
		stock.FoundInRaid -= needed
		return true
	}

	if stock.FoundInRaid+stock.NotFoundInRaid < needed {
		return false
	}
	if stock.NotFoundInRaid >= needed {
		stock.NotFoundInRaid -= needed
		return true
	}
	stock.FoundInRaid -= needed - stock.NotFoundInRaid
	stock.NotFoundInRaid = 0
	return true
}
