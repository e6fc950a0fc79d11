package tetris

import (
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// findEvent returns the first event of the given type, if any.
func findEvent(events []core.Event, typ core.EventType) (core.Event, bool) {
	for _, e := range events {
		if e.Type == typ {
			return e, true
		}
	}
	return core.Event{}, false
}

// forcePiece replaces the falling piece for scenario setup.
func forcePiece(s *Session, p Piece, pos Position) {
	s.current = p
	s.pos = pos
	s.hasCurrent = true
}

func TestSessionStart(t *testing.T) {
	s := NewSession(10, 20, 42)

	if s.Phase() != PhaseNotStarted {
		t.Fatalf("New session phase = %v, expected not_started", s.Phase())
	}
	if _, _, ok := s.Current(); ok {
		t.Error("New session should have no falling piece")
	}

	events := s.Start()

	if s.Phase() != PhaseFalling {
		t.Errorf("Phase after Start = %v, expected falling", s.Phase())
	}
	if events != nil {
		t.Errorf("Start on an empty board emitted %v", events)
	}
	if _, _, ok := s.Current(); !ok {
		t.Error("Start should spawn a falling piece")
	}
	if !s.NextKind().Valid() {
		t.Error("Start should arm the preview piece")
	}
	if s.Score() != 0 || s.Lines() != 0 || s.Level() != 1 {
		t.Errorf("Fresh counters expected, got score=%d lines=%d level=%d", s.Score(), s.Lines(), s.Level())
	}
}

func TestSessionSpawnCentered(t *testing.T) {
	s := NewSession(10, 20, 3)
	s.Start()

	_, pos, ok := s.Current()
	if !ok {
		t.Fatal("Expected a falling piece")
	}
	if pos.Y != 0 {
		t.Errorf("Spawn row = %d, expected 0", pos.Y)
	}
	// Centered within the board for any bounding box size (4 -> x=3,
	// 3 -> x=3, 2 -> x=4).
	if pos.X < 3 || pos.X > 4 {
		t.Errorf("Spawn column = %d, expected 3 or 4", pos.X)
	}
}

func TestSessionIntentsRequireFalling(t *testing.T) {
	s := NewSession(10, 20, 1)

	if ok, _ := s.Move(-1, 0, true); ok {
		t.Error("Move before start should be rejected")
	}
	if s.Rotate() {
		t.Error("Rotate before start should be rejected")
	}
	if events := s.HardDrop(); events != nil {
		t.Error("HardDrop before start should do nothing")
	}
	if s.TogglePause() {
		t.Error("Pause before start should be rejected")
	}
	if events := s.GravityTick(); events != nil {
		t.Error("Gravity before start should do nothing")
	}
}

func TestSessionMove(t *testing.T) {
	s := NewSession(10, 20, 7)
	s.Start()
	forcePiece(s, NewPiece(KindO), Position{4, 5})

	if ok, _ := s.Move(-1, 0, true); !ok {
		t.Error("Open left move should be accepted")
	}
	if _, pos, _ := s.Current(); pos.X != 3 {
		t.Errorf("Position after left move = %d, expected 3", pos.X)
	}

	// Walk into the left wall; the refusals leave the piece in place.
	for i := 0; i < 5; i++ {
		s.Move(-1, 0, true)
	}
	if _, pos, _ := s.Current(); pos.X != 0 {
		t.Errorf("Position at wall = %d, expected 0", pos.X)
	}
	if ok, events := s.Move(-1, 0, true); ok || events != nil {
		t.Error("Blocked sideways move should be a plain refusal")
	}
}

func TestSessionSoftDropPoints(t *testing.T) {
	s := NewSession(10, 20, 7)
	s.Start()
	forcePiece(s, NewPiece(KindO), Position{4, 0})

	s.Move(0, 1, true)
	if s.Score() != 1 {
		t.Errorf("Score after one soft drop = %d, expected 1", s.Score())
	}

	// The same descent by gravity awards nothing.
	s.GravityTick()
	if s.Score() != 1 {
		t.Errorf("Score after gravity tick = %d, expected 1", s.Score())
	}
}

func TestSessionSingleLineClear(t *testing.T) {
	s := NewSession(10, 20, 11)
	s.Start()

	// Row 19 needs columns 0-1; the O block at the bottom-left supplies
	// them and leaves its top half in row 18.
	fillRow(s.board, 19, 0, 1)
	forcePiece(s, NewPiece(KindO), Position{0, 18})

	events := s.GravityTick()

	if _, ok := findEvent(events, core.EventLock); !ok {
		t.Error("Landing should emit a lock event")
	}
	clear, ok := findEvent(events, core.EventLineClear)
	if !ok {
		t.Fatal("Completed row should emit a line clear event")
	}
	if clear.Count != 1 || len(clear.Rows) != 1 || clear.Rows[0] != 19 {
		t.Errorf("Line clear = count %d rows %v, expected count 1 rows [19]", clear.Count, clear.Rows)
	}

	if s.Score() != 100 {
		t.Errorf("Score = %d, expected 100", s.Score())
	}
	if s.Lines() != 1 {
		t.Errorf("Lines = %d, expected 1", s.Lines())
	}

	// The block's top half shifted down into the cleared row.
	if s.Board().At(0, 19) != KindO || s.Board().At(1, 19) != KindO {
		t.Errorf("Expected shifted O cells at the bottom, board:\n%s", s.Board())
	}
}

func TestSessionTetrisScoredAtCurrentLevel(t *testing.T) {
	s := NewSession(10, 20, 11)
	if !s.SetStartLevel(2) {
		t.Fatal("SetStartLevel before start should be accepted")
	}
	s.Start()
	if s.Level() != 3 {
		t.Fatalf("Level after start = %d, expected 3", s.Level())
	}

	// Four bottom rows complete except column 0; a vertical I fills it.
	for y := 16; y <= 19; y++ {
		fillRow(s.board, y, 0)
	}
	forcePiece(s, NewPiece(KindI).Rotated(), Position{-2, 16})

	events := s.GravityTick()

	clear, ok := findEvent(events, core.EventLineClear)
	if !ok {
		t.Fatal("Expected a line clear event")
	}
	if clear.Count != 4 {
		t.Errorf("Cleared %d rows, expected 4", clear.Count)
	}
	if s.Score() != 2400 {
		t.Errorf("Score = %d, expected 800 x level 3 = 2400", s.Score())
	}
	if s.Lines() != 4 {
		t.Errorf("Lines = %d, expected 4", s.Lines())
	}
	// Four lines is short of the next level threshold.
	if _, ok := findEvent(events, core.EventLevelUp); ok {
		t.Error("No level up expected at 4 lines")
	}
}

func TestSessionLevelUp(t *testing.T) {
	s := NewSession(10, 20, 5)
	s.Start()
	s.lines = 9 // one line short of the threshold

	fillRow(s.board, 19, 0, 1)
	forcePiece(s, NewPiece(KindO), Position{0, 18})

	events := s.GravityTick()

	up, ok := findEvent(events, core.EventLevelUp)
	if !ok {
		t.Fatal("Tenth line should emit a level up event")
	}
	if up.Level != 2 {
		t.Errorf("Level up to %d, expected 2", up.Level)
	}
	if s.Level() != 2 {
		t.Errorf("Level = %d, expected 2", s.Level())
	}

	// The clear itself still pays at the pre-advance level.
	if s.Score() != 100 {
		t.Errorf("Score = %d, expected 100 (multiplier from the level at clear time)", s.Score())
	}
}

func TestSessionHardDrop(t *testing.T) {
	s := NewSession(10, 20, 9)
	s.Start()
	forcePiece(s, NewPiece(KindO), Position{4, 0})

	events := s.HardDrop()

	if _, ok := findEvent(events, core.EventLock); !ok {
		t.Error("Hard drop should lock the piece")
	}
	// 18 cells of descent at two points each.
	if s.Score() != 36 {
		t.Errorf("Score = %d, expected 36", s.Score())
	}
	if s.Board().At(4, 19) != KindO || s.Board().At(5, 18) != KindO {
		t.Errorf("Piece should settle on the floor, board:\n%s", s.Board())
	}

	// A new piece falls immediately.
	if _, pos, ok := s.Current(); !ok || pos.Y != 0 {
		t.Error("Hard drop should spawn the next piece at the top")
	}
}

func TestSessionGhostPosition(t *testing.T) {
	s := NewSession(10, 20, 9)

	if _, ok := s.GhostPosition(); ok {
		t.Error("No ghost before start")
	}

	s.Start()
	forcePiece(s, NewPiece(KindO), Position{4, 0})

	ghost, ok := s.GhostPosition()
	if !ok {
		t.Fatal("Expected a ghost position while falling")
	}
	if ghost != (Position{4, 18}) {
		t.Errorf("Ghost = %+v, expected {4 18}", ghost)
	}

	// Ghost is a pure query
	if _, pos, _ := s.Current(); pos.Y != 0 {
		t.Error("GhostPosition moved the piece")
	}
	if s.Score() != 0 {
		t.Error("GhostPosition changed the score")
	}
}

func TestSessionRotateKicksOffWall(t *testing.T) {
	s := NewSession(10, 20, 2)
	s.Start()

	// A right-pointing T hugging the left wall at x=-1 rotates to point
	// down, which needs a cell past the wall; the right kick resolves it.
	forcePiece(s, NewPiece(KindT).Rotated(), Position{-1, 5})

	if !s.Rotate() {
		t.Fatal("Rotation with an open kick should be accepted")
	}
	_, pos, _ := s.Current()
	if pos.X != 0 {
		t.Errorf("Kicked to x=%d, expected 0", pos.X)
	}
}

func TestSessionGameOver(t *testing.T) {
	s := NewSession(10, 20, 6)
	s.Start()

	// Block the next piece's spawn cells, then land the current piece
	// without completing a row.
	s.next = KindO
	setCell(s.board, 4, 0, KindJ)
	forcePiece(s, NewPiece(KindO), Position{0, 18})

	events := s.GravityTick()

	if _, ok := findEvent(events, core.EventGameOver); !ok {
		t.Fatal("Blocked spawn should end the game")
	}
	if s.Phase() != PhaseGameOver {
		t.Errorf("Phase = %v, expected game_over", s.Phase())
	}
	if _, _, ok := s.Current(); ok {
		t.Error("No falling piece after game over")
	}

	// The final lock is still recorded on the board.
	if s.Board().At(0, 19) != KindO {
		t.Error("Final piece should remain settled")
	}

	// Everything except Start is now refused.
	if ok, _ := s.Move(-1, 0, true); ok {
		t.Error("Move after game over should be rejected")
	}
	if s.TogglePause() {
		t.Error("Pause after game over should be rejected")
	}
}

func TestSessionPause(t *testing.T) {
	s := NewSession(10, 20, 4)
	s.Start()

	if !s.TogglePause() {
		t.Fatal("Pause while falling should be accepted")
	}
	if s.Phase() != PhasePaused {
		t.Fatalf("Phase = %v, expected paused", s.Phase())
	}

	// Paused state is inert.
	before := s.Board().String()
	if ok, _ := s.Move(0, 1, true); ok {
		t.Error("Move while paused should be rejected")
	}
	if s.Rotate() {
		t.Error("Rotate while paused should be rejected")
	}
	if events := s.GravityTick(); events != nil {
		t.Error("Gravity while paused should do nothing")
	}
	if s.Board().String() != before {
		t.Error("Board changed while paused")
	}

	if !s.TogglePause() {
		t.Fatal("Unpause should be accepted")
	}
	if s.Phase() != PhaseFalling {
		t.Errorf("Phase = %v, expected falling", s.Phase())
	}
}

func TestSessionSetStartLevel(t *testing.T) {
	s := NewSession(10, 20, 8)

	if !s.SetStartLevel(4) {
		t.Fatal("SetStartLevel before start should be accepted")
	}
	if s.StartLevel() != 5 {
		t.Errorf("StartLevel = %d, expected 5", s.StartLevel())
	}

	// Clamped at both ends
	s.SetStartLevel(-100)
	if s.StartLevel() != MinStartLevel {
		t.Errorf("StartLevel = %d, expected floor %d", s.StartLevel(), MinStartLevel)
	}
	s.SetStartLevel(100)
	if s.StartLevel() != MaxStartLevel {
		t.Errorf("StartLevel = %d, expected ceiling %d", s.StartLevel(), MaxStartLevel)
	}

	s.Start()
	if s.SetStartLevel(1) {
		t.Error("SetStartLevel after start should be rejected")
	}
}

func TestSessionRestartResets(t *testing.T) {
	s := NewSession(10, 20, 13)
	s.Start()
	forcePiece(s, NewPiece(KindO), Position{4, 0})
	s.HardDrop()

	if s.Score() == 0 {
		t.Fatal("Setup should have produced a score")
	}

	s.Start()

	if s.Score() != 0 || s.Lines() != 0 {
		t.Errorf("Restart kept counters: score=%d lines=%d", s.Score(), s.Lines())
	}
	if s.Phase() != PhaseFalling {
		t.Errorf("Phase after restart = %v, expected falling", s.Phase())
	}

	// The settled board is wiped except the fresh falling piece.
	settled := 0
	for y := 0; y < s.Board().Height(); y++ {
		for x := 0; x < s.Board().Width(); x++ {
			if s.Board().At(x, y) != KindNone {
				settled++
			}
		}
	}
	if settled != 0 {
		t.Errorf("Restart left %d settled cells", settled)
	}
}

func TestSessionDeterministicReplay(t *testing.T) {
	run := func() Snapshot {
		s := NewSession(10, 20, 777)
		s.Start()
		for i := 0; i < 30; i++ {
			s.Move(-1, 0, true)
			s.Rotate()
			s.HardDrop()
			if s.Phase() == PhaseGameOver {
				break
			}
		}
		return s.Snapshot()
	}

	a, b := run(), run()
	if a.Score != b.Score || a.Lines != b.Lines || a.Phase != b.Phase {
		t.Errorf("Same seed and inputs diverged: %+v vs %+v", a, b)
	}
	for i := range a.Board {
		if a.Board[i] != b.Board[i] {
			t.Fatalf("Board row %d diverged:\n%s\n%s", i, a.Board[i], b.Board[i])
		}
	}
}
