package types

import (
	"github.com/glentakahashi/spt-pityloot/internal/model"
)

type EventKind string

const (
	EventSessionStart     EventKind = "sessionStart"
	EventRaidStart        EventKind = "raidStart"
	EventRaidEnd          EventKind = "raidEnd"
	EventInventoryChanged EventKind = "inventoryChanged"
)

// SessionStartRequest carries the profile and the untouched host tables at session start.
type SessionStartRequest struct {
	Profile      *model.Profile          `json:"profile" validate:"required"`
	Locations    *model.Locations        `json:"locations" validate:"required"`
	Bots         *model.Bots             `json:"bots" validate:"required"`
	Quests       map[string]*model.Quest `json:"quests"`
	HideoutAreas []*model.HideoutArea    `json:"hideoutAreas"`
}

type SessionEventRequest struct {
	Event   EventKind      `json:"event" validate:"required,oneof=raidStart raidEnd inventoryChanged"`
	IsScav  bool           `json:"isScav"`
	Profile *model.Profile `json:"profile" validate:"required"`
}

type RecalculationResponse struct {
	PassID                 string                                  `json:"passId"`
	ProfileID              string                                  `json:"profileId"`
	Fingerprint            string                                  `json:"fingerprint"`
	Locations              *model.Locations                        `json:"locations"`
	Bots                   *model.Bots                             `json:"bots"`
	IncompleteRequirements []*model.ItemRequirement                `json:"incompleteRequirements"`
	Multipliers            map[string]model.ItemDropRateMultiplier `json:"multipliers"`
}

// RecalculationSummary is published after every pass.
type RecalculationSummary struct {
	PassID                 string `json:"passId"`
	ProfileID              string `json:"profileId"`
	Event                  string `json:"event"`
	IncompleteRequirements int    `json:"incompleteRequirements"`
	BoostedItems           int    `json:"boostedItems"`
}
