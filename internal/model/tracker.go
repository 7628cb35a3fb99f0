package model

// AreaProgress tracks how long the next upgrade of a hideout area has been attainable.
type AreaProgress struct {
	CurrentLevel int `json:"currentLevel"`
	// TimeAvailable is the unix epoch in milliseconds at which CurrentLevel became attainable.
	TimeAvailable     int64 `json:"timeAvailable"`
	RaidsSinceStarted int   `json:"raidsSinceStarted"`
}

type QuestProgress struct {
	RaidsSinceStarted int `json:"raidsSinceStarted"`
}

type UserPityTracker struct {
	Hideout map[AreaType]AreaProgress `json:"hideout"`
	Quests  map[string]QuestProgress  `json:"quests"`
}

func NewUserPityTracker() *UserPityTracker {
	return &UserPityTracker{
		Hideout: map[AreaType]AreaProgress{},
		Quests:  map[string]QuestProgress{},
	}
}

// Clone returns a copy that shares no maps with t.
func (t *UserPityTracker) Clone() *UserPityTracker {
	c := NewUserPityTracker()
	if t == nil {
		return c
	}
	for k, v := range t.Hideout {
		c.Hideout[k] = v
	}
	for k, v := range t.Quests {
		c.Quests[k] = v
	}
	return c
}

// PityTrackerRecord is the whole durable record, keyed by profile id.
type PityTrackerRecord map[string]*UserPityTracker

// Clone returns a shallow copy of the record: trackers are shared, the map is not.
func (r PityTrackerRecord) Clone() PityTrackerRecord {
	c := make(PityTrackerRecord, len(r)+1)
	for k, v := range r {
		c[k] = v
	}
	return c
}
