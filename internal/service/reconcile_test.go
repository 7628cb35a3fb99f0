package service

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"

	"github.com/glentakahashi/spt-pityloot/internal/model"
)

func TestInventoryCounts(t *testing.T) {
	s := NewReconciler(newTestConfig(t, nil))
	profile := newProfile("p1",
		item(wiresID, nil),
		item(wiresID, &model.ItemUpdate{SpawnedInSession: true}),
		item(boltsID, stack(7)),
		item(boltsID, &model.ItemUpdate{StackObjectsCount: stack(2).StackObjectsCount, SpawnedInSession: true}),
	)

	assert.Equal(t, map[string]*model.InventoryCount{
		wiresID: {FoundInRaid: 1, NotFoundInRaid: 1},
		boltsID: {FoundInRaid: 2, NotFoundInRaid: 7},
	}, s.InventoryCounts(profile))
}

func TestIncompleteRequirements(t *testing.T) {
	fir := &model.ItemUpdate{SpawnedInSession: true}

	questWires := func(amount int, foundInRaid bool) *model.ItemRequirement {
		return &model.ItemRequirement{Type: model.RequirementTypeQuest, ItemID: wiresID, AmountRequired: amount, ConditionID: "cond-wires", FoundInRaid: foundInRaid}
	}
	hideoutWires := func(amount int) *model.ItemRequirement {
		return &model.ItemRequirement{Type: model.RequirementTypeHideout, ItemID: wiresID, AmountRequired: amount}
	}

	type testCase struct {
		name       string
		items      []model.InventoryItem
		counters   map[string]model.TaskConditionCounter
		quest      []*model.ItemRequirement
		hideout    []*model.ItemRequirement
		incomplete []*model.ItemRequirement
	}

	lackedKey := &model.ItemRequirement{Type: model.RequirementTypeQuestKey, ItemID: keyID, AmountRequired: 1}
	firQuest := questWires(2, true)
	hideout := hideoutWires(2)

	testCases := []testCase{
		{
			name:       "nothing held",
			quest:      []*model.ItemRequirement{questWires(5, false)},
			incomplete: []*model.ItemRequirement{questWires(5, false)},
		},
		{
			name:  "enough non found in raid",
			items: []model.InventoryItem{item(wiresID, stack(5))},
			quest: []*model.ItemRequirement{questWires(5, false)},
		},
		{
			name:       "found in raid required but only non found in raid held",
			items:      []model.InventoryItem{item(wiresID, stack(5))},
			quest:      []*model.ItemRequirement{questWires(5, true)},
			incomplete: []*model.ItemRequirement{questWires(5, true)},
		},
		{
			name:     "progress counter lowers the need",
			items:    []model.InventoryItem{item(wiresID, stack(2))},
			counters: map[string]model.TaskConditionCounter{"cond-wires": {ID: "cond-wires", Value: 3}},
			quest:    []*model.ItemRequirement{questWires(5, false)},
		},
		{
			name:     "already handed over in full",
			items:    []model.InventoryItem{item(wiresID, nil)},
			counters: map[string]model.TaskConditionCounter{"cond-wires": {ID: "cond-wires", Value: 5}},
			quest:    []*model.ItemRequirement{questWires(5, false)},
		},
		{
			name:  "non found in raid spills over into found in raid",
			items: []model.InventoryItem{item(wiresID, stack(2)), item(wiresID, &model.ItemUpdate{StackObjectsCount: stack(3).StackObjectsCount, SpawnedInSession: true})},
			quest: []*model.ItemRequirement{questWires(5, false)},
		},
		{
			name:       "found in raid quest claims stock first",
			items:      []model.InventoryItem{item(wiresID, fir), item(wiresID, fir)},
			hideout:    []*model.ItemRequirement{hideout},
			quest:      []*model.ItemRequirement{firQuest},
			incomplete: []*model.ItemRequirement{hideout},
		},
		{
			name:  "stock is shared across requirements",
			items: []model.InventoryItem{item(wiresID, stack(3))},
			quest: []*model.ItemRequirement{questWires(2, false)},
			hideout: []*model.ItemRequirement{
				hideoutWires(2),
			},
			incomplete: []*model.ItemRequirement{hideoutWires(2)},
		},
		{
			name:       "quest key lacked",
			quest:      []*model.ItemRequirement{lackedKey},
			incomplete: []*model.ItemRequirement{lackedKey},
		},
		{
			name:  "quest key held",
			items: []model.InventoryItem{item(keyID, nil)},
			quest: []*model.ItemRequirement{lackedKey},
		},
		{
			name:    "currencies are never incomplete",
			hideout: []*model.ItemRequirement{{Type: model.RequirementTypeHideout, ItemID: roublesID, AmountRequired: 100000}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewReconciler(newTestConfig(t, nil))
			profile := newProfile("p1", tc.items...)
			if tc.counters != nil {
				profile.Characters.PMC.TaskConditionCounters = tc.counters
			}

			got := s.IncompleteRequirements(profile, tc.quest, tc.hideout)
			assert.Equal(t, tc.incomplete, got, spew.Sdump(got))
		})
	}
}

func TestIncompleteRequirementsOrder(t *testing.T) {
	old := &model.ItemRequirement{Type: model.RequirementTypeHideout, ItemID: boltsID, AmountRequired: 1, RaidsSinceStarted: 9, SecondsSinceStarted: 10}
	young := &model.ItemRequirement{Type: model.RequirementTypeHideout, ItemID: wiresID, AmountRequired: 1, RaidsSinceStarted: 1, SecondsSinceStarted: 5000}
	fir := &model.ItemRequirement{Type: model.RequirementTypeQuest, ItemID: partID, AmountRequired: 1, RaidsSinceStarted: 20, FoundInRaid: true}

	byRaid := NewReconciler(newTestConfig(t, nil))
	assert.Equal(t, []*model.ItemRequirement{fir, young, old},
		byRaid.IncompleteRequirements(newProfile("p1"), []*model.ItemRequirement{fir}, []*model.ItemRequirement{old, young}))

	byTime := NewReconciler(newTestConfig(t, func(s *model.Settings) { s.DropRateIncreaseType = model.DropRateIncreaseTime }))
	assert.Equal(t, []*model.ItemRequirement{fir, old, young},
		byTime.IncompleteRequirements(newProfile("p1"), []*model.ItemRequirement{fir}, []*model.ItemRequirement{young, old}))
}

func TestIncompleteRequirementsUnknownType(t *testing.T) {
	s := NewReconciler(newTestConfig(t, nil))
	profile := newProfile("p1", item(wiresID, nil))

	assert.Panics(t, func() {
		s.IncompleteRequirements(profile, []*model.ItemRequirement{{Type: "barter", ItemID: wiresID, AmountRequired: 1}}, nil)
	})
}
