package tetris

// Snapshot captures the observable session state for determinism testing
// and for consumers that want a plain-data view of the round.
type Snapshot struct {
	Phase      Phase
	Score      int
	Level      int
	Lines      int
	StartLevel int

	Board []string // One row per line, "." for empty cells

	HasCurrent  bool
	CurrentKind Kind
	CurrentX    int
	CurrentY    int
	NextKind    Kind
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	rows := make([]string, s.board.height)
	for y := range rows {
		rows[y] = s.board.Row(y)
	}

	snap := Snapshot{
		Phase:      s.phase,
		Score:      s.score,
		Level:      s.level,
		Lines:      s.lines,
		StartLevel: s.startLevel,
		Board:      rows,
		HasCurrent: s.hasCurrent,
		NextKind:   s.next,
	}
	if s.hasCurrent {
		snap.CurrentKind = s.current.Kind
		snap.CurrentX = s.pos.X
		snap.CurrentY = s.pos.Y
	} else {
		snap.CurrentKind = KindNone
	}
	return snap
}
