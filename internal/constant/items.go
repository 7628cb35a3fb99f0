package constant

// CurrencyItemIDs are never tracked as requirements: roubles, dollars, euros.
var CurrencyItemIDs = []string{
	"5449016a4bdc2d6f028b456f",
	"5696686a4bdc2da3298b456a",
	"569668774bdc2da2298b4568",
}

// GunsmithContainerIDs are static containers that receive missing gunsmith parts.
var GunsmithContainerIDs = []string{
	"5909d5ef86f77467974efbd8",
	"5909d76c86f77471e53d2adf",
	"5909d7cf86f77470ee57d75a",
	"5909d89086f77472591234a0",
	"578f87ad245977356274f2cc",
}

// QuestKeyContainerIDs are static containers that receive missing quest keys.
var QuestKeyContainerIDs = []string{
	"578f8778245977358849a9b5",
	"578f87b7245977356274f2cd",
}

// LabsKeycardID is the TerraGroup Labs access keycard. It is seeded into quest key
// containers whenever it is an outstanding requirement, whatever its requirement type.
const LabsKeycardID = "5c94bbff86f7747ee735c08f"

// SyntheticSpawnWeight is the relative probability given to items inserted into a
// container that would otherwise never spawn them.
const SyntheticSpawnWeight = 999

// IgnoredBotTypes are bot roles whose loadouts are never rewritten.
var IgnoredBotTypes = []string{"bear", "usec", "gifter"}
