package tetris

import "time"

// FallInterval returns the time between automatic gravity ticks at the
// given level. Levels 1-9 step down from 1000ms to 200ms in 100ms
// increments; from level 10 on the interval shrinks by 10ms per level with
// a floor of 50ms.
func FallInterval(level int) time.Duration {
	if level < 1 {
		level = 1
	}
	var ms int
	if level <= 9 {
		ms = 1000 - (level-1)*100
	} else {
		ms = 200 - (level-10)*10
		if ms < 50 {
			ms = 50
		}
	}
	return time.Duration(ms) * time.Millisecond
}

// GravityTicks converts the fall interval for a level into a number of
// fixed-rate simulation ticks, never less than one tick.
func GravityTicks(level, tickRate int) int {
	if tickRate <= 0 {
		tickRate = 60
	}
	ticks := int(FallInterval(level) * time.Duration(tickRate) / time.Second)
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}
