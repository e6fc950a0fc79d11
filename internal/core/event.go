package core

// EventType identifies a discrete gameplay event emitted by a game step.
type EventType int

const (
	EventNone EventType = iota
	EventLock            // A falling piece settled into the board
	EventLineClear       // One or more rows were removed
	EventLevelUp         // The level increased after a clear
	EventGameOver        // The round ended
)

// Event is a gameplay occurrence emitted by the engine as plain data.
// The platform layer maps events to presentation cues (flash animations,
// sound hooks); the engine never calls back into presentation.
type Event struct {
	Type  EventType
	Rows  []int // Original row indices, top to bottom (EventLineClear)
	Count int   // Number of rows removed (EventLineClear)
	Level int   // New level (EventLevelUp)
}

// String returns a human-readable name for the event type.
func (t EventType) String() string {
	switch t {
	case EventLock:
		return "lock"
	case EventLineClear:
		return "line_clear"
	case EventLevelUp:
		return "level_up"
	case EventGameOver:
		return "game_over"
	default:
		return "none"
	}
}
