package model

type RequirementType string

const (
	RequirementTypeQuest    RequirementType = "quest"
	RequirementTypeQuestKey RequirementType = "questKey"
	RequirementTypeHideout  RequirementType = "hideout"
	RequirementTypeGunsmith RequirementType = "gunsmith"
)

// ItemRequirement is an outstanding need for AmountRequired of ItemID, annotated with how long the
// objective that needs it has been open. ConditionID and FoundInRaid are only meaningful when Type is
// RequirementTypeQuest.
type ItemRequirement struct {
	Type                RequirementType `json:"type"`
	ItemID              string          `json:"itemId"`
	AmountRequired      int             `json:"amountRequired"`
	SecondsSinceStarted int64           `json:"secondsSinceStarted"`
	RaidsSinceStarted   int             `json:"raidsSinceStarted"`

	ConditionID string `json:"conditionId,omitempty"`
	FoundInRaid bool   `json:"foundInRaid,omitempty"`
}

// RequiresFoundInRaid reports whether only found-in-raid stock may satisfy the requirement.
func (r *ItemRequirement) RequiresFoundInRaid() bool {
	return r.Type == RequirementTypeQuest && r.FoundInRaid
}

type InventoryCount struct {
	FoundInRaid    int `json:"foundInRaid"`
	NotFoundInRaid int `json:"notFoundInRaid"`
}

type ItemDropRateMultiplier struct {
	TimeBasedDropRateMultiplier float64 `json:"timeBasedDropRateMultiplier"`
	RaidBasedDropRateMultiplier float64 `json:"raidBasedDropRateMultiplier"`
	IsKey                       bool    `json:"isKey"`
}

// Active returns the multiplier selected by the configured increase type.
func (m ItemDropRateMultiplier) Active(byRaid bool) float64 {
	if byRaid {
		return m.RaidBasedDropRateMultiplier
	}
	return m.TimeBasedDropRateMultiplier
}
