package model

import (
	"gopkg.in/guregu/null.v3"
)

// AreaType is the host's numeric hideout area identifier.
type AreaType int

const (
	StageRequirementArea          = "Area"
	StageRequirementSkill         = "Skill"
	StageRequirementTraderLoyalty = "TraderLoyalty"
	StageRequirementItem          = "Item"
)

// HideoutArea is a hideout area definition from the host database.
type HideoutArea struct {
	ID     string                  `json:"_id"`
	Type   AreaType                `json:"type"`
	Stages map[string]HideoutStage `json:"stages"`
}

type HideoutStage struct {
	Requirements []StageRequirement `json:"requirements"`
}

// StageRequirement is one prerequisite row of a hideout stage. Which fields are
// populated depends on Type; rows missing the fields their type needs are malformed.
type StageRequirement struct {
	Type string `json:"type"`

	AreaType      null.Int    `json:"areaType"`
	RequiredLevel null.Int    `json:"requiredLevel"`
	SkillName     null.String `json:"skillName"`
	SkillLevel    null.Int    `json:"skillLevel"`
	TraderID      null.String `json:"traderId"`
	LoyaltyLevel  null.Int    `json:"loyaltyLevel"`
	TemplateID    null.String `json:"templateId"`
	Count         null.Int    `json:"count"`
}

// HideoutUpgrade is the next attainable level of an area whose prerequisites are all met.
type HideoutUpgrade struct {
	Area          AreaType       `json:"area"`
	Level         int            `json:"level"`
	RequiredItems []RequiredItem `json:"requiredItems"`
}

type RequiredItem struct {
	ID    string `json:"id"`
	Count int    `json:"count"`
}
