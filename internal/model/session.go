package model

import "time"

// Session is the baseline captured when a profile's game session starts. Recalculations
// always run against these tables, never against previously boosted ones, so it is
// treated as read-only once created.
type Session struct {
	ProfileID    string
	Locations    *Locations
	Bots         *Bots
	Quests       map[string]*Quest
	HideoutAreas []*HideoutArea
	CapturedAt   time.Time
	// Fingerprint identifies the captured tables, so hosts can tell whether two sessions share a baseline.
	Fingerprint string
}

// RecalculationResult is the output of a single pass.
type RecalculationResult struct {
	PassID                 string                            `json:"passId"`
	ProfileID              string                            `json:"profileId"`
	Locations              *Locations                        `json:"locations"`
	Bots                   *Bots                             `json:"bots"`
	IncompleteRequirements []*ItemRequirement                `json:"incompleteRequirements"`
	Multipliers            map[string]ItemDropRateMultiplier `json:"multipliers"`
	Tracker                *UserPityTracker                  `json:"tracker"`
}
