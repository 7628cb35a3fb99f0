package util

// SkillLevelFromProgress converts accumulated skill progress into a level. Level 1 costs
// 10 points, every further level costs 10 more than the previous one, up to 100 per level.
// A level is only reached once progress strictly exceeds its cost.
func SkillLevelFromProgress(progress float64) int {
	xpToLevel := 10.0
	level := 0
	for progress > xpToLevel {
		level++
		progress -= xpToLevel
		xpToLevel = min(100, xpToLevel+10)
	}
	return level
}
