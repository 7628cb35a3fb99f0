package service

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/glentakahashi/spt-pityloot/internal/app/appconfig"
	"github.com/glentakahashi/spt-pityloot/internal/model"
)

const (
	wiresID     = "5c06779c86f77426e00dd782"
	boltsID     = "57347c5b245977448d35f6e1"
	roublesID   = "5449016a4bdc2d6f028b456f"
	keyID       = "5938144586f77473c2087145"
	partID      = "5c0e2f26d174af02a9625114"
	questID     = "5936d90786f7742b1420ba5b"
	gunsmithQID = "5ac23c6186f7741247042bad"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return testNow }

func newTestConfig(t *testing.T, mutate func(s *model.Settings)) *appconfig.Config {
	t.Helper()
	settings := model.DefaultSettings()
	if mutate != nil {
		mutate(&settings)
	}
	return &appconfig.Config{
		ConfigSpec: appconfig.ConfigSpec{
			DataDir:            t.TempDir(),
			SessionTTL:         time.Hour,
			TrackerCacheTTL:    time.Minute,
			LockTimeout:        time.Second,
			RewriteConcurrency: 2,
		},
		Tuning: settings,
	}
}

func stack(n float64) *model.ItemUpdate {
	return &model.ItemUpdate{StackObjectsCount: &n}
}

func item(tpl string, upd *model.ItemUpdate) model.InventoryItem {
	return model.InventoryItem{ID: tpl + "-inst", Tpl: tpl, Upd: upd}
}

func newProfile(id string, items ...model.InventoryItem) *model.Profile {
	p := &model.Profile{}
	p.Info.ID = id
	p.Characters.PMC.Inventory.Items = items
	p.Characters.PMC.TaskConditionCounters = map[string]model.TaskConditionCounter{}
	p.Characters.PMC.TradersInfo = map[string]model.TraderInfo{}
	return p
}

func decode[T any](t *testing.T, raw string) *T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	return &v
}

func encode(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

const locationsFixture = `{
  "base": {"locations": {"bigmap": {"Id": "bigmap"}}},
  "bigmap": {
    "base": {"Id": "bigmap", "Name": "Customs"},
    "looseLoot": {
      "spawnpointCount": {"mean": 10, "std": 2},
      "spawnpoints": [
        {
          "locationId": "(10.1, 1.2, -3.4)",
          "probability": 0.35,
          "template": {
            "Id": "loot_wires_1",
            "Items": [
              {"_id": "a1", "_tpl": "5c06779c86f77426e00dd782"},
              {"_id": "a2", "_tpl": "57347c5b245977448d35f6e1"}
            ]
          },
          "itemDistribution": [
            {"composedKey": {"key": "a1"}, "relativeProbability": 10},
            {"composedKey": {"key": "a2"}, "relativeProbability": 4},
            {"composedKey": {"key": "orphan"}, "relativeProbability": 7}
          ]
        }
      ]
    },
    "staticLoot": {
      "5909d5ef86f77467974efbd8": {
        "itemcountDistribution": [{"count": 1, "relativeProbability": 3}],
        "itemDistribution": [{"tpl": "57347c5b245977448d35f6e1", "relativeProbability": 20}]
      },
      "578f8778245977358849a9b5": {
        "itemcountDistribution": [{"count": 0, "relativeProbability": 5}, {"count": 1, "relativeProbability": 2}],
        "itemDistribution": [{"tpl": "5938144586f77473c2087145", "relativeProbability": 1}]
      },
      "5d6fd13186f77424ad2a8c69": {
        "itemcountDistribution": [{"count": 2, "relativeProbability": 1}],
        "itemDistribution": [{"tpl": "5c06779c86f77426e00dd782", "relativeProbability": 50}]
      }
    },
    "staticAmmo": {
      "Caliber9x19PARA": [{"tpl": "56d59d3ad2720bdb418b4577", "relativeProbability": 12}]
    }
  },
  "hideout": {"base": {"Id": "hideout"}},
  "develop": null
}`

const botsFixture = `{
  "core": {"ACTIVE_HALLOWEEN_ZOMBIES_EVENT": false},
  "types": {
    "assault": {
      "difficulty": {"easy": {}},
      "inventory": {
        "equipment": {
          "Headwear": {"5c06779c86f77426e00dd782": 5, "59e7711e86f7746cae05fbe1": 40}
        },
        "items": {
          "Pockets": {"5c06779c86f77426e00dd782": 3},
          "SpecialLoot": {}
        },
        "mods": {}
      }
    },
    "bear": {
      "inventory": {
        "equipment": {"Headwear": {"5c06779c86f77426e00dd782": 5}},
        "items": {"Pockets": {"5c06779c86f77426e00dd782": 3}}
      }
    }
  }
}`
