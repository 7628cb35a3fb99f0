package model

import (
	"bytes"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// LocationBase is the key of the pseudo-location holding shared location settings.
const LocationBase = "base"

// Locations is the host's location table: the "base" pseudo-location plus one entry per map.
type Locations struct {
	Base json.RawMessage
	Maps map[string]*Location
}

func (l *Locations) UnmarshalJSON(data []byte) error {
	var entries map[string]json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}

	l.Maps = make(map[string]*Location, len(entries))
	for id, entry := range entries {
		if id == LocationBase {
			l.Base = cloneRaw(entry)
			continue
		}
		if isNull(entry) {
			l.Maps[id] = nil
			continue
		}
		var location Location
		if err := json.Unmarshal(entry, &location); err != nil {
			return errors.Wrapf(err, "model: failed to decode location %s", id)
		}
		l.Maps[id] = &location
	}
	return nil
}

func (l Locations) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(l.Maps)+1)
	if l.Base != nil {
		out[LocationBase] = l.Base
	}
	for id, location := range l.Maps {
		out[id] = location
	}
	return json.Marshal(out)
}

// Location is a single map. Only the loot tables are decoded; everything else in the
// host document is carried through untouched.
type Location struct {
	LooseLoot  *LooseLoot                     `json:"looseLoot,omitempty"`
	StaticLoot map[string]*StaticLootDetails  `json:"staticLoot,omitempty"`
	StaticAmmo map[string][]StaticAmmoDetails `json:"staticAmmo,omitempty"`

	raw []byte
}

// HasLootTables reports whether all three loot tables are present.
func (l *Location) HasLootTables() bool {
	return l != nil && l.LooseLoot != nil && l.StaticLoot != nil && l.StaticAmmo != nil
}

// WithLootTables returns a copy of l carrying the given tables. l is left unchanged.
func (l *Location) WithLootTables(looseLoot *LooseLoot, staticLoot map[string]*StaticLootDetails, staticAmmo map[string][]StaticAmmoDetails) *Location {
	return &Location{
		LooseLoot:  looseLoot,
		StaticLoot: staticLoot,
		StaticAmmo: staticAmmo,
		raw:        l.raw,
	}
}

func (l *Location) UnmarshalJSON(data []byte) error {
	type plain Location
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*l = Location(p)
	l.raw = cloneRaw(data)
	return nil
}

func (l Location) MarshalJSON() ([]byte, error) {
	return overlay(l.raw,
		overlayField{path: "looseLoot", value: l.LooseLoot, skip: l.LooseLoot == nil},
		overlayField{path: "staticLoot", value: l.StaticLoot, skip: l.StaticLoot == nil},
		overlayField{path: "staticAmmo", value: l.StaticAmmo, skip: l.StaticAmmo == nil},
	)
}

type LooseLoot struct {
	Spawnpoints []*Spawnpoint `json:"spawnpoints"`

	raw []byte
}

// WithSpawnpoints returns a copy of ll carrying spawnpoints. ll is left unchanged.
func (ll *LooseLoot) WithSpawnpoints(spawnpoints []*Spawnpoint) *LooseLoot {
	return &LooseLoot{Spawnpoints: spawnpoints, raw: ll.raw}
}

func (ll *LooseLoot) UnmarshalJSON(data []byte) error {
	type plain LooseLoot
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*ll = LooseLoot(p)
	ll.raw = cloneRaw(data)
	return nil
}

func (ll LooseLoot) MarshalJSON() ([]byte, error) {
	return overlay(ll.raw, overlayField{path: "spawnpoints", value: ll.Spawnpoints, skip: ll.Spawnpoints == nil})
}

type Spawnpoint struct {
	LocationID       string                      `json:"locationId"`
	Template         json.RawMessage             `json:"template"`
	ItemDistribution []LooseLootItemDistribution `json:"itemDistribution"`

	raw []byte
}

// WithItemDistribution returns a copy of s carrying dist. s is left unchanged.
func (s *Spawnpoint) WithItemDistribution(dist []LooseLootItemDistribution) *Spawnpoint {
	return &Spawnpoint{
		LocationID:       s.LocationID,
		Template:         s.Template,
		ItemDistribution: dist,
		raw:              s.raw,
	}
}

// TemplateID is the id of the spawn point's item template.
func (s *Spawnpoint) TemplateID() string {
	return gjson.GetBytes(s.Template, "Id").String()
}

// TemplateItems maps every item instance id of the spawn point template to its item template id.
func (s *Spawnpoint) TemplateItems() map[string]string {
	items := map[string]string{}
	gjson.GetBytes(s.Template, "Items").ForEach(func(_, item gjson.Result) bool {
		id, tpl := item.Get("_id").String(), item.Get("_tpl").String()
		if id != "" && tpl != "" {
			items[id] = tpl
		}
		return true
	})
	return items
}

func (s *Spawnpoint) UnmarshalJSON(data []byte) error {
	type plain Spawnpoint
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*s = Spawnpoint(p)
	s.raw = cloneRaw(data)
	return nil
}

func (s Spawnpoint) MarshalJSON() ([]byte, error) {
	if len(s.raw) == 0 {
		type plain Spawnpoint
		return json.Marshal(plain(s))
	}
	return overlay(s.raw, overlayField{path: "itemDistribution", value: s.ItemDistribution})
}

type LooseLootItemDistribution struct {
	ComposedKey         ComposedKey `json:"composedKey"`
	RelativeProbability float64     `json:"relativeProbability"`
}

type ComposedKey struct {
	Key string `json:"key"`
}

type StaticLootDetails struct {
	ItemcountDistribution []ItemCountDistribution `json:"itemcountDistribution"`
	ItemDistribution      []ItemDistribution      `json:"itemDistribution"`
}

type ItemCountDistribution struct {
	Count               int     `json:"count"`
	RelativeProbability float64 `json:"relativeProbability"`
}

type ItemDistribution struct {
	Tpl                 string  `json:"tpl"`
	RelativeProbability float64 `json:"relativeProbability"`
}

type StaticAmmoDetails struct {
	Tpl                 string  `json:"tpl"`
	RelativeProbability float64 `json:"relativeProbability"`
}

func isNull(data []byte) bool {
	return len(bytes.TrimSpace(data)) == 0 || bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}
