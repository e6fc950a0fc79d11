package tetris

// Drop bonuses, in points per cell descended.
const (
	SoftDropPoints = 1
	HardDropPoints = 2
)

// clearPoints is the base score for clearing n rows at once, before the
// level multiplier. Index 0 is unused.
var clearPoints = [5]int{0, 100, 300, 500, 800}

// ClearPoints returns the score for clearing count rows simultaneously at
// the given level. Counts beyond four (possible only under rule variants on
// wider boards) score as a four-line clear.
func ClearPoints(count, level int) int {
	if count <= 0 {
		return 0
	}
	if count > 4 {
		count = 4
	}
	if level < 1 {
		level = 1
	}
	return clearPoints[count] * level
}

// LevelFor computes the current level from the total cleared lines and the
// session's start level: one level gained per ten lines. Monotonic within a
// session since lines never decrease.
func LevelFor(totalLines, startLevel int) int {
	if startLevel < 1 {
		startLevel = 1
	}
	return totalLines/10 + startLevel
}
