package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Phase is the session's lifecycle state.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseFalling
	PhasePaused
	PhaseGameOver
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseFalling:
		return "falling"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Start level bounds for a new session.
const (
	MinStartLevel = 1
	MaxStartLevel = 30
)

// Session is one game round: the single writer of the board, the falling
// piece and all counters. Intents that cannot apply are rejected with a
// boolean refusal and leave the state untouched; nothing here returns an
// error. All operations are synchronous and run to completion, so a session
// must be driven from one goroutine.
//
// The line-clear computation inside a lock is atomic: any sweep animation
// is the presentation layer's concern, sequenced from the emitted events.
type Session struct {
	board      *Board
	gen        *Generator
	current    Piece
	pos        Position
	hasCurrent bool
	next       Kind

	score      int
	level      int
	lines      int
	startLevel int
	phase      Phase
}

// NewSession creates a session with an empty board in PhaseNotStarted.
// The seed drives the 7-bag generator for the whole session.
func NewSession(width, height int, seed int64) *Session {
	return &Session{
		board:      NewBoard(width, height),
		gen:        NewGenerator(seed),
		next:       KindNone,
		startLevel: MinStartLevel,
		level:      MinStartLevel,
	}
}

// SetStartLevel adjusts the start level by delta, clamped to
// [MinStartLevel, MaxStartLevel]. Only permitted before the first piece
// falls; rejected in any other phase.
func (s *Session) SetStartLevel(delta int) bool {
	if s.phase != PhaseNotStarted {
		return false
	}
	s.startLevel = core.Clamp(s.startLevel+delta, MinStartLevel, MaxStartLevel)
	return true
}

// Start begins a new round: empty board, zeroed counters, fresh bag cycle,
// first piece spawned. It may be issued from any phase and unconditionally
// resets the session; the configured start level is kept.
func (s *Session) Start() []core.Event {
	s.board = NewBoard(s.board.width, s.board.height)
	s.score = 0
	s.lines = 0
	s.level = s.startLevel
	s.phase = PhaseFalling
	s.gen.Reset()
	s.next = s.gen.Next()
	return s.spawn()
}

// spawn promotes the preview piece to the falling piece and draws a new
// preview. If the spawn position is already blocked the round ends.
func (s *Session) spawn() []core.Event {
	k := s.next
	s.next = s.gen.Next()
	s.current = NewPiece(k)
	s.pos = Position{X: (s.board.width - s.current.Size()) / 2, Y: 0}
	s.hasCurrent = true

	if !s.board.IsValidPlacement(s.current, s.pos) {
		s.hasCurrent = false
		s.phase = PhaseGameOver
		return []core.Event{{Type: core.EventGameOver}}
	}
	return nil
}

// Move attempts to shift the falling piece by (dx, dy). A valid move
// commits and returns accepted=true, awarding one soft-drop point per cell
// when a player pushes the piece down. A blocked downward move means the
// piece has landed and triggers the lock sequence; a blocked sideways or
// upward move changes nothing.
func (s *Session) Move(dx, dy int, playerInitiated bool) (bool, []core.Event) {
	if s.phase != PhaseFalling {
		return false, nil
	}

	candidate := Position{X: s.pos.X + dx, Y: s.pos.Y + dy}
	if s.board.IsValidPlacement(s.current, candidate) {
		s.pos = candidate
		if dy > 0 && playerInitiated {
			s.score += SoftDropPoints * dy
		}
		return true, nil
	}

	if dy > 0 {
		return false, s.lockAndSpawn()
	}
	return false, nil
}

// GravityTick is the implicit downward intent issued by the clock driver.
// A failed tick locks the piece exactly as a failed player move does.
func (s *Session) GravityTick() []core.Event {
	_, events := s.Move(0, 1, false)
	return events
}

// Rotate turns the falling piece clockwise, kicking it into a nearby valid
// position if the centered rotation is blocked. A rotation with no valid
// kick is rejected and leaves the piece unchanged.
func (s *Session) Rotate() bool {
	if s.phase != PhaseFalling {
		return false
	}
	piece, pos, ok := ResolveRotation(s.board, s.current, s.pos)
	if !ok {
		return false
	}
	s.current = piece
	s.pos = pos
	return true
}

// HardDrop sends the falling piece straight to the lowest legal row,
// awarding two points per cell descended, then locks it.
func (s *Session) HardDrop() []core.Event {
	if s.phase != PhaseFalling {
		return nil
	}
	dist := s.dropDistance()
	s.pos.Y += dist
	s.score += HardDropPoints * dist
	return s.lockAndSpawn()
}

// dropDistance probes downward validity to find how far the falling piece
// can descend in one step.
func (s *Session) dropDistance() int {
	dist := 0
	for s.board.IsValidPlacement(s.current, Position{X: s.pos.X, Y: s.pos.Y + dist + 1}) {
		dist++
	}
	return dist
}

// GhostPosition returns where the falling piece would land if hard-dropped
// now. A pure query for preview rendering; ok is false unless a piece is
// falling.
func (s *Session) GhostPosition() (Position, bool) {
	if s.phase != PhaseFalling {
		return Position{}, false
	}
	return Position{X: s.pos.X, Y: s.pos.Y + s.dropDistance()}, true
}

// lockAndSpawn writes the landed piece into the board, clears full rows,
// applies scoring and level progression, then spawns the next piece. The
// whole sequence is atomic; the emitted events record what happened in
// order.
func (s *Session) lockAndSpawn() []core.Event {
	events := []core.Event{{Type: core.EventLock}}

	s.board = s.board.Place(s.current, s.pos)
	s.hasCurrent = false

	cleared, count, rows := s.board.ClearFullRows()
	if count > 0 {
		// The multiplier is the level at the moment of the clear.
		s.score += ClearPoints(count, s.level)
		s.lines += count
		events = append(events, core.Event{Type: core.EventLineClear, Rows: rows, Count: count})

		if next := LevelFor(s.lines, s.startLevel); next != s.level {
			s.level = next
			events = append(events, core.Event{Type: core.EventLevelUp, Level: next})
		}
		s.board = cleared
	}

	return append(events, s.spawn()...)
}

// TogglePause flips between PhaseFalling and PhasePaused. Rejected in any
// other phase; no board mutation happens while paused because every intent
// except Start is refused.
func (s *Session) TogglePause() bool {
	switch s.phase {
	case PhaseFalling:
		s.phase = PhasePaused
	case PhasePaused:
		s.phase = PhaseFalling
	default:
		return false
	}
	return true
}

// Board returns the settled playfield. Callers must treat it as read-only.
func (s *Session) Board() *Board {
	return s.board
}

// Current returns the falling piece and its position; ok is false when no
// piece is falling (before start, after game over).
func (s *Session) Current() (Piece, Position, bool) {
	return s.current, s.pos, s.hasCurrent
}

// NextKind returns the preview kind, or KindNone before the first start.
func (s *Session) NextKind() Kind {
	return s.next
}

// Score returns the session score. Monotonically non-decreasing.
func (s *Session) Score() int {
	return s.score
}

// Level returns the current level.
func (s *Session) Level() int {
	return s.level
}

// Lines returns the total cleared lines. Monotonically non-decreasing.
func (s *Session) Lines() int {
	return s.lines
}

// StartLevel returns the configured start level.
func (s *Session) StartLevel() int {
	return s.startLevel
}

// Phase returns the session phase.
func (s *Session) Phase() Phase {
	return s.phase
}
