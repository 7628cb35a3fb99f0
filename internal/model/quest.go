package model

import (
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

const (
	ConditionTypeHandoverItem        = "HandoverItem"
	ConditionTypeLeaveItemAtLocation = "LeaveItemAtLocation"
	ConditionTypeWeaponAssembly      = "WeaponAssembly"
)

type Quest struct {
	ID         string          `json:"_id"`
	Conditions QuestConditions `json:"conditions"`
}

type QuestConditions struct {
	AvailableForFinish []QuestCondition `json:"AvailableForFinish"`
}

type QuestCondition struct {
	ID              string     `json:"id"`
	ConditionType   string     `json:"conditionType"`
	Target          StringList `json:"target,omitempty"`
	Value           Amount     `json:"value"`
	OnlyFoundInRaid bool       `json:"onlyFoundInRaid,omitempty"`
	ContainsItems   StringList `json:"containsItems,omitempty"`
}

// UnmarshalJSON understands both the flat condition layout and the older
// {"_parent": type, "_props": {...}} layout.
func (c *QuestCondition) UnmarshalJSON(data []byte) error {
	type flat QuestCondition
	var legacy struct {
		Parent string `json:"_parent"`
		Props  *flat  `json:"_props"`
	}
	if err := json.Unmarshal(data, &legacy); err == nil && legacy.Parent != "" && legacy.Props != nil {
		*c = QuestCondition(*legacy.Props)
		c.ConditionType = legacy.Parent
		return nil
	}

	var f flat
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*c = QuestCondition(f)
	return nil
}

// StringList accepts either a single string or a list of strings.
type StringList []string

func (s *StringList) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		if one == "" {
			*s = nil
		} else {
			*s = StringList{one}
		}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*s = many
	return nil
}

// Amount is a quantity the host encodes either as a number or as a numeric string.
// Anything unparsable decodes to zero instead of failing the whole document.
type Amount int

func (a *Amount) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*a = Amount(math.Trunc(n))
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			*a = 0
			return nil
		}
		*a = Amount(math.Trunc(v))
		return nil
	}
	*a = 0
	return nil
}
