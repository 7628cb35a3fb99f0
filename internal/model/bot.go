package model

import (
	"strings"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// ProbabilityPools maps a pool name (equipment slot, inventory slot) to item template id -> weight.
type ProbabilityPools map[string]map[string]float64

// Clone returns a deep copy of p.
func (p ProbabilityPools) Clone() ProbabilityPools {
	if p == nil {
		return nil
	}
	c := make(ProbabilityPools, len(p))
	for name, pool := range p {
		cp := make(map[string]float64, len(pool))
		for id, w := range pool {
			cp[id] = w
		}
		c[name] = cp
	}
	return c
}

// Bots is the host's bot table. Only "types" is decoded.
type Bots struct {
	Types map[string]*BotType `json:"types"`

	raw []byte
}

// WithTypes returns a copy of b carrying types. b is left unchanged.
func (b *Bots) WithTypes(types map[string]*BotType) *Bots {
	return &Bots{Types: types, raw: b.raw}
}

func (b *Bots) UnmarshalJSON(data []byte) error {
	type plain Bots
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*b = Bots(p)
	b.raw = cloneRaw(data)
	return nil
}

func (b Bots) MarshalJSON() ([]byte, error) {
	return overlay(b.raw, overlayField{path: "types", value: b.Types, skip: b.Types == nil})
}

// BotType is one bot role. Its equipment and item pools are decoded from
// inventory.equipment and inventory.items; pools that are not objects of numeric
// weights are left out and survive untouched in the raw document.
type BotType struct {
	Equipment ProbabilityPools
	Items     ProbabilityPools

	raw []byte
}

// WithPools returns a copy of bt carrying the given pools. bt is left unchanged.
func (bt *BotType) WithPools(equipment, items ProbabilityPools) *BotType {
	return &BotType{Equipment: equipment, Items: items, raw: bt.raw}
}

func (bt *BotType) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return errors.New("model: invalid bot type document")
	}
	inventory := gjson.GetBytes(data, "inventory")
	bt.Equipment = readPools(inventory.Get("equipment"))
	bt.Items = readPools(inventory.Get("items"))
	bt.raw = cloneRaw(data)
	return nil
}

func (bt BotType) MarshalJSON() ([]byte, error) {
	fields := make([]overlayField, 0, len(bt.Equipment)+len(bt.Items))
	for name, pool := range bt.Equipment {
		fields = append(fields, overlayField{path: "inventory.equipment." + escapePath(name), value: pool})
	}
	for name, pool := range bt.Items {
		fields = append(fields, overlayField{path: "inventory.items." + escapePath(name), value: pool})
	}
	return overlay(bt.raw, fields...)
}

func readPools(r gjson.Result) ProbabilityPools {
	if !r.IsObject() {
		return nil
	}
	pools := ProbabilityPools{}
	r.ForEach(func(name, pool gjson.Result) bool {
		if !pool.IsObject() {
			return true
		}
		weights := map[string]float64{}
		numeric := true
		pool.ForEach(func(id, w gjson.Result) bool {
			if w.Type != gjson.Number {
				numeric = false
				return false
			}
			weights[id.String()] = w.Float()
			return true
		})
		if numeric {
			pools[name.String()] = weights
		}
		return true
	})
	return pools
}

var pathEscaper = strings.NewReplacer(`\`, `\\`, ".", `\.`, "*", `\*`, "?", `\?`, "|", `\|`, "#", `\#`, "@", `\@`)

func escapePath(key string) string {
	return pathEscaper.Replace(key)
}
