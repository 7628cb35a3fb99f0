package model

import (
	"github.com/goccy/go-json"
)

// Profile is the subset of a host save profile the engine reads.
type Profile struct {
	Info       ProfileInfo `json:"info"`
	Characters Characters  `json:"characters"`
}

type ProfileInfo struct {
	ID string `json:"id" validate:"required"`
}

type Characters struct {
	PMC Character `json:"pmc"`
}

type Character struct {
	Inventory             Inventory                       `json:"Inventory"`
	Quests                []QuestStatus                   `json:"Quests"`
	TaskConditionCounters map[string]TaskConditionCounter `json:"TaskConditionCounters"`
	Hideout               CharacterHideout                `json:"Hideout"`
	Skills                Skills                          `json:"Skills"`
	TradersInfo           map[string]TraderInfo           `json:"TradersInfo"`
	WishList              Wishlist                        `json:"WishList"`
}

type Inventory struct {
	Items []InventoryItem `json:"items"`
}

type InventoryItem struct {
	ID  string      `json:"_id"`
	Tpl string      `json:"_tpl"`
	Upd *ItemUpdate `json:"upd,omitempty"`
}

type ItemUpdate struct {
	StackObjectsCount *float64 `json:"StackObjectsCount,omitempty"`
	SpawnedInSession  bool     `json:"SpawnedInSession,omitempty"`
}

// StackCount is the number of items in the stack; items without a count are single items.
func (i *InventoryItem) StackCount() int {
	if i.Upd == nil || i.Upd.StackObjectsCount == nil {
		return 1
	}
	return int(*i.Upd.StackObjectsCount)
}

func (i *InventoryItem) FoundInRaid() bool {
	return i.Upd != nil && i.Upd.SpawnedInSession
}

type QuestStatusCode int

const (
	QuestStatusLocked QuestStatusCode = iota
	QuestStatusAvailableForStart
	QuestStatusStarted
	QuestStatusAvailableForFinish
	QuestStatusSuccess
	QuestStatusFail
	QuestStatusFailRestartable
	QuestStatusMarkedAsFailed
	QuestStatusExpired
	QuestStatusAvailableAfter
)

type QuestStatus struct {
	QID string `json:"qid"`
	// StartTime is a unix epoch in seconds. The host sometimes leaves it at 0.
	StartTime           float64            `json:"startTime"`
	Status              QuestStatusCode    `json:"status"`
	StatusTimers        map[string]float64 `json:"statusTimers,omitempty"`
	CompletedConditions []string           `json:"completedConditions,omitempty"`
}

type TaskConditionCounter struct {
	ID       string  `json:"id"`
	SourceID string  `json:"sourceId"`
	Type     string  `json:"type"`
	Value    float64 `json:"value"`
}

type CharacterHideout struct {
	Areas []HideoutAreaState `json:"Areas"`
}

type HideoutAreaState struct {
	Type         AreaType `json:"type"`
	Level        int      `json:"level"`
	Constructing bool     `json:"constructing"`
}

type Skills struct {
	Common []Skill `json:"Common"`
}

type Skill struct {
	ID       string  `json:"Id"`
	Progress float64 `json:"Progress"`
}

type TraderInfo struct {
	LoyaltyLevel int `json:"loyaltyLevel"`
}

type WishlistCategory int

const (
	WishlistCategoryTasks WishlistCategory = iota
	WishlistCategoryHideout
	WishlistCategoryBarter
	WishlistCategoryEquipment
	WishlistCategoryOther
)

// Wishlist maps item template ids to the wishlist category the player filed them under.
type Wishlist map[string]WishlistCategory

// UnmarshalJSON also accepts the legacy list-of-ids form, filing every entry under "other".
func (w *Wishlist) UnmarshalJSON(data []byte) error {
	var categorized map[string]WishlistCategory
	if err := json.Unmarshal(data, &categorized); err == nil {
		*w = categorized
		return nil
	}

	var legacy []string
	if err := json.Unmarshal(data, &legacy); err != nil {
		return err
	}
	m := make(Wishlist, len(legacy))
	for _, id := range legacy {
		m[id] = WishlistCategoryOther
	}
	*w = m
	return nil
}
