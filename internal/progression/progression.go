// Package progression maps accumulated experience points to levels and
// progress-bar fractions, and defines the reward constants used by the
// state transitions.
package progression

// XPPerLevel is the experience required to advance one level.
const XPPerLevel = 1000

// Reward amounts, in experience points.
const (
	// XPPerTopic is awarded per topic logged when a study session ends.
	XPPerTopic = 20
	// SessionBonusXP is the flat bonus for finishing a session with at
	// least one topic logged.
	SessionBonusXP = 100
	// RestXP is awarded when a break ends, or a session ends with no
	// topics logged.
	RestXP = 50
	// AttendanceXP is the first-activation-of-the-day bonus for starting
	// school mode.
	AttendanceXP = 200
)

// LevelFor returns the level for the given experience total: level 1 covers
// [0, XPPerLevel), level 2 covers [XPPerLevel, 2*XPPerLevel), and so on.
func LevelFor(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/XPPerLevel + 1
}

// ProgressFraction returns how far through the current level the given
// experience total is, in [0, 1).
func ProgressFraction(xp int) float64 {
	if xp < 0 {
		xp = 0
	}
	return float64(xp%XPPerLevel) / float64(XPPerLevel)
}

// LevelXP returns the experience accumulated within the current level.
func LevelXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp % XPPerLevel
}
