package model

const (
	DropRateIncreaseRaid = "raid"
	DropRateIncreaseTime = "time"
)

// Settings are the behavioural switches of the engine. They are loaded once at startup
// and never mutated afterwards.
type Settings struct {
	Enabled          bool `yaml:"enabled" json:"enabled"`
	IncludeScavRaids bool `yaml:"includeScavRaids" json:"includeScavRaids"`
	QuestsEnabled    bool `yaml:"questsEnabled" json:"questsEnabled"`
	HideoutEnabled   bool `yaml:"hideoutEnabled" json:"hideoutEnabled"`

	DropRateIncreaseType     string  `yaml:"dropRateIncreaseType" json:"dropRateIncreaseType" validate:"oneof=raid time"`
	DropRateIncreasePerRaid  float64 `yaml:"dropRateIncreasePerRaid" json:"dropRateIncreasePerRaid" validate:"gte=0"`
	DropRateIncreasePerHour  float64 `yaml:"dropRateIncreasePerHour" json:"dropRateIncreasePerHour" validate:"gte=0"`
	IncreasesStack           bool    `yaml:"increasesStack" json:"increasesStack"`
	MaxDropRateMultiplier    float64 `yaml:"maxDropRateMultiplier" json:"maxDropRateMultiplier" validate:"gte=1"`
	KeysAdditionalMultiplier float64 `yaml:"keysAdditionalMultiplier" json:"keysAdditionalMultiplier" validate:"gt=0"`

	IncludeKeys          bool `yaml:"includeKeys" json:"includeKeys"`
	IncludeGunsmithParts bool `yaml:"includeGunsmithParts" json:"includeGunsmithParts"`

	AppliesToWishlist   bool                `yaml:"appliesToWishlist" json:"appliesToWishlist"`
	WishlistMultipliers WishlistMultipliers `yaml:"wishlistMultipliers" json:"wishlistMultipliers"`

	// QuestKeys maps a quest id to the key item ids needed to complete it.
	QuestKeys map[string][]string `yaml:"questKeys" json:"questKeys"`

	Debug bool `yaml:"debug" json:"debug"`
	Trace bool `yaml:"trace" json:"trace"`
}

// WishlistMultipliers are flat multipliers per wishlist category. Zero disables a category.
type WishlistMultipliers struct {
	Tasks     float64 `yaml:"tasks" json:"tasks" validate:"gte=0"`
	Hideout   float64 `yaml:"hideout" json:"hideout" validate:"gte=0"`
	Barter    float64 `yaml:"barter" json:"barter" validate:"gte=0"`
	Equipment float64 `yaml:"equipment" json:"equipment" validate:"gte=0"`
	Other     float64 `yaml:"other" json:"other" validate:"gte=0"`
}

// ForCategory returns the multiplier of c. Unknown categories count as "other".
func (w WishlistMultipliers) ForCategory(c WishlistCategory) float64 {
	switch c {
	case WishlistCategoryTasks:
		return w.Tasks
	case WishlistCategoryHideout:
		return w.Hideout
	case WishlistCategoryBarter:
		return w.Barter
	case WishlistCategoryEquipment:
		return w.Equipment
	default:
		return w.Other
	}
}

// ByRaid reports whether requirement age is measured in raids rather than elapsed time.
func (s *Settings) ByRaid() bool {
	return s.DropRateIncreaseType == DropRateIncreaseRaid
}

// QuestKeysMissing reports whether key tracking is on but no quest lists a key, in which
// case no questKey requirement can ever be produced.
func (s *Settings) QuestKeysMissing() bool {
	return s.IncludeKeys && len(s.QuestKeys) == 0
}

func DefaultSettings() Settings {
	return Settings{
		Enabled:                  true,
		IncludeScavRaids:         false,
		QuestsEnabled:            true,
		HideoutEnabled:           true,
		DropRateIncreaseType:     DropRateIncreaseRaid,
		DropRateIncreasePerRaid:  0.2,
		DropRateIncreasePerHour:  0.5,
		IncreasesStack:           false,
		MaxDropRateMultiplier:    5,
		KeysAdditionalMultiplier: 1,
		IncludeKeys:              true,
		IncludeGunsmithParts:     true,
		QuestKeys:                map[string][]string{},
	}
}
