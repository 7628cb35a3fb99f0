package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/glentakahashi/spt-pityloot/internal/constant"
	"github.com/glentakahashi/spt-pityloot/internal/model"
)

const (
	gunsmithContainer = "5909d5ef86f77467974efbd8"
	keyContainer      = "578f8778245977358849a9b5"
	plainContainer    = "5d6fd13186f77424ad2a8c69"
)

func identity(_ string, p float64, _ string) float64 { return p }

func doubling(itemID string) UpdateFunc {
	return func(id string, p float64, _ string) float64 {
		if id == itemID {
			return p * 2
		}
		return p
	}
}

func containerProbability(t *testing.T, doc, container, tpl string) gjson.Result {
	t.Helper()
	return gjson.Get(doc, "bigmap.staticLoot."+container+".itemDistribution.#(tpl==\""+tpl+"\").relativeProbability")
}

func TestUpdatedLocationLootIdentity(t *testing.T) {
	s := NewLootTable(newTestConfig(t, nil))
	locations := decode[model.Locations](t, locationsFixture)

	updated, err := s.UpdatedLocationLoot(context.Background(), identity, locations, nil)
	require.NoError(t, err)
	assert.JSONEq(t, locationsFixture, encode(t, updated))
}

func TestUpdatedLocationLootSeedsContainers(t *testing.T) {
	s := NewLootTable(newTestConfig(t, nil))
	locations := decode[model.Locations](t, locationsFixture)
	before := encode(t, locations)

	incomplete := []*model.ItemRequirement{
		{Type: model.RequirementTypeGunsmith, ItemID: partID, AmountRequired: 1},
		{Type: model.RequirementTypeGunsmith, ItemID: boltsID, AmountRequired: 1},
		{Type: model.RequirementTypeQuestKey, ItemID: keyID, AmountRequired: 1},
		{Type: model.RequirementTypeQuestKey, ItemID: "5780cf7f2459777de4559322", AmountRequired: 1},
		{Type: model.RequirementTypeHideout, ItemID: constant.LabsKeycardID, AmountRequired: 1},
		{Type: model.RequirementTypeHideout, ItemID: wiresID, AmountRequired: 1},
	}

	updated, err := s.UpdatedLocationLoot(context.Background(), identity, locations, incomplete)
	require.NoError(t, err)
	doc := encode(t, updated)

	assert.Equal(t, 999.0, containerProbability(t, doc, gunsmithContainer, partID).Float())
	assert.Equal(t, 20.0, containerProbability(t, doc, gunsmithContainer, boltsID).Float(), "listed parts keep their weight")
	assert.Equal(t, 2, int(gjson.Get(doc, "bigmap.staticLoot."+gunsmithContainer+".itemDistribution.#").Int()))
	assert.False(t, containerProbability(t, doc, gunsmithContainer, keyID).Exists())

	assert.Equal(t, 1.0, containerProbability(t, doc, keyContainer, keyID).Float(), "listed keys are not duplicated")
	assert.Equal(t, 999.0, containerProbability(t, doc, keyContainer, "5780cf7f2459777de4559322").Float())
	assert.Equal(t, 999.0, containerProbability(t, doc, keyContainer, constant.LabsKeycardID).Float())
	assert.Equal(t, 3, int(gjson.Get(doc, "bigmap.staticLoot."+keyContainer+".itemDistribution.#").Int()))
	assert.JSONEq(t,
		`[{"count": 0, "relativeProbability": 5}, {"count": 1, "relativeProbability": 2}]`,
		gjson.Get(doc, "bigmap.staticLoot."+keyContainer+".itemcountDistribution").Raw)

	assert.Equal(t, 1, int(gjson.Get(doc, "bigmap.staticLoot."+plainContainer+".itemDistribution.#").Int()))
	assert.False(t, containerProbability(t, doc, plainContainer, partID).Exists(), "ordinary containers are never seeded")

	assert.JSONEq(t, before, encode(t, locations), "input tables must not change")
}

func TestUpdatedLocationLootRewritesEveryTable(t *testing.T) {
	s := NewLootTable(newTestConfig(t, nil))
	locations := decode[model.Locations](t, locationsFixture)

	var mu sync.Mutex
	var labels []string
	update := func(id string, p float64, label string) float64 {
		mu.Lock()
		labels = append(labels, label)
		mu.Unlock()
		return doubling(wiresID)(id, p, label)
	}

	updated, err := s.UpdatedLocationLoot(context.Background(), update, locations, nil)
	require.NoError(t, err)
	doc := encode(t, updated)

	dist := gjson.Get(doc, "bigmap.looseLoot.spawnpoints.0.itemDistribution")
	assert.Equal(t, 20.0, dist.Get("0.relativeProbability").Float())
	assert.Equal(t, 4.0, dist.Get("1.relativeProbability").Float())
	assert.Equal(t, 7.0, dist.Get("2.relativeProbability").Float(), "unresolved keys pass through")
	assert.Equal(t, 100.0, containerProbability(t, doc, plainContainer, wiresID).Float())
	assert.Equal(t, 12.0, gjson.Get(doc, "bigmap.staticAmmo.Caliber9x19PARA.0.relativeProbability").Float())

	assert.Equal(t, 0.35, gjson.Get(doc, "bigmap.looseLoot.spawnpoints.0.probability").Float(), "unknown fields survive")
	assert.Equal(t, "Customs", gjson.Get(doc, "bigmap.base.Name").String())
	assert.Equal(t, "bigmap", gjson.Get(doc, "base.locations.bigmap.Id").String())
	assert.Equal(t, "hideout", gjson.Get(doc, "hideout.base.Id").String())
	assert.Equal(t, gjson.Null, gjson.Get(doc, "develop").Type)

	assert.Contains(t, labels, "spawnpoint (10.1, 1.2, -3.4) (loot_wires_1)")
	assert.Contains(t, labels, "container "+plainContainer)
	assert.Contains(t, labels, "ammo Caliber9x19PARA")
}

func TestUpdatedLocationLootIsIdempotent(t *testing.T) {
	s := NewLootTable(newTestConfig(t, nil))
	locations := decode[model.Locations](t, locationsFixture)
	incomplete := []*model.ItemRequirement{{Type: model.RequirementTypeGunsmith, ItemID: partID, AmountRequired: 1}}

	first, err := s.UpdatedLocationLoot(context.Background(), doubling(partID), locations, incomplete)
	require.NoError(t, err)
	second, err := s.UpdatedLocationLoot(context.Background(), doubling(partID), locations, incomplete)
	require.NoError(t, err)

	assert.JSONEq(t, encode(t, first), encode(t, second))
	assert.Equal(t, 1998.0, containerProbability(t, encode(t, first), gunsmithContainer, partID).Float())
}

func TestUpdatedLocationLootCancelled(t *testing.T) {
	s := NewLootTable(newTestConfig(t, nil))
	locations := decode[model.Locations](t, locationsFixture)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.UpdatedLocationLoot(ctx, identity, locations, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestUpdatedBotTables(t *testing.T) {
	s := NewLootTable(newTestConfig(t, nil))
	bots := decode[model.Bots](t, botsFixture)
	before := encode(t, bots)

	doc := encode(t, s.UpdatedBotTables(doubling(wiresID), bots))

	assert.Equal(t, 10.0, gjson.Get(doc, "types.assault.inventory.equipment.Headwear."+wiresID).Float())
	assert.Equal(t, 40.0, gjson.Get(doc, "types.assault.inventory.equipment.Headwear.59e7711e86f7746cae05fbe1").Float())
	assert.Equal(t, 6.0, gjson.Get(doc, "types.assault.inventory.items.Pockets."+wiresID).Float())
	assert.Equal(t, 5.0, gjson.Get(doc, "types.bear.inventory.equipment.Headwear."+wiresID).Float(), "player factions are never rewritten")
	assert.Equal(t, 3.0, gjson.Get(doc, "types.bear.inventory.items.Pockets."+wiresID).Float())
	assert.True(t, gjson.Get(doc, "types.assault.difficulty.easy").Exists())
	assert.True(t, gjson.Get(doc, "core").Exists())

	assert.JSONEq(t, before, encode(t, bots), "input tables must not change")
	assert.JSONEq(t, botsFixture, encode(t, s.UpdatedBotTables(identity, bots)))
}
