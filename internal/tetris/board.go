package tetris

import "strings"

// Default playfield dimensions.
const (
	DefaultWidth  = 10
	DefaultHeight = 20
)

// Board is the settled playfield: a fixed W×H grid of cells, each empty
// (KindNone) or holding the kind of the piece that locked there. Rows are
// indexed top to bottom, columns left to right. Boards are value-like:
// mutating operations return a new board and leave the receiver untouched.
type Board struct {
	width  int
	height int
	cells  [][]Kind
}

// NewBoard creates an empty board with the given dimensions.
func NewBoard(width, height int) *Board {
	b := &Board{width: width, height: height}
	b.cells = make([][]Kind, height)
	for y := range b.cells {
		b.cells[y] = emptyRow(width)
	}
	return b
}

func emptyRow(width int) []Kind {
	row := make([]Kind, width)
	for x := range row {
		row[x] = KindNone
	}
	return row
}

// Width returns the board width in cells.
func (b *Board) Width() int {
	return b.width
}

// Height returns the board height in cells.
func (b *Board) Height() int {
	return b.height
}

// At returns the cell at (x, y). Coordinates outside the grid report
// KindNone, matching the convention that rows above the board are open.
func (b *Board) At(x, y int) Kind {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return KindNone
	}
	return b.cells[y][x]
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	nb := &Board{width: b.width, height: b.height}
	nb.cells = make([][]Kind, b.height)
	for y := range b.cells {
		nb.cells[y] = make([]Kind, b.width)
		copy(nb.cells[y], b.cells[y])
	}
	return nb
}

// IsValidPlacement reports whether the piece can occupy the given position.
// An occupied piece cell is invalid if its column leaves [0, W), its row
// reaches H, or it lands on a settled cell. Rows above the board (y < 0)
// are never checked against occupancy, which permits spawning and kicking
// above the visible top.
func (b *Board) IsValidPlacement(p Piece, pos Position) bool {
	for r, row := range p.Shape {
		for c, occupied := range row {
			if !occupied {
				continue
			}
			x := pos.X + c
			y := pos.Y + r
			if x < 0 || x >= b.width || y >= b.height {
				return false
			}
			if y >= 0 && b.cells[y][x] != KindNone {
				return false
			}
		}
	}
	return true
}

// Place returns a copy of the board with the piece's cells written at the
// given position. Cells above the top edge (y < 0) are silently dropped so
// an overflowing lock never faults; game-over detection happens at the next
// spawn, not here.
func (b *Board) Place(p Piece, pos Position) *Board {
	nb := b.Clone()
	for r, row := range p.Shape {
		for c, occupied := range row {
			if !occupied {
				continue
			}
			x := pos.X + c
			y := pos.Y + r
			if y < 0 {
				continue
			}
			if x >= 0 && x < nb.width && y < nb.height {
				nb.cells[y][x] = p.Kind
			}
		}
	}
	return nb
}

// ClearFullRows removes every full row simultaneously and prepends that
// many empty rows at the top, keeping the relative order of the remaining
// rows. It returns the new board, the number of rows removed and their
// original top-to-bottom indices (for presentation-side animation). The
// count is not capped: rule variants on wide boards may clear more than 4.
func (b *Board) ClearFullRows() (*Board, int, []int) {
	var cleared []int
	kept := make([][]Kind, 0, b.height)

	for y, row := range b.cells {
		if rowFull(row) {
			cleared = append(cleared, y)
			continue
		}
		keptRow := make([]Kind, b.width)
		copy(keptRow, row)
		kept = append(kept, keptRow)
	}

	if len(cleared) == 0 {
		return b.Clone(), 0, nil
	}

	nb := &Board{width: b.width, height: b.height}
	nb.cells = make([][]Kind, 0, b.height)
	for i := 0; i < len(cleared); i++ {
		nb.cells = append(nb.cells, emptyRow(b.width))
	}
	nb.cells = append(nb.cells, kept...)

	return nb, len(cleared), cleared
}

func rowFull(row []Kind) bool {
	for _, cell := range row {
		if cell == KindNone {
			return false
		}
	}
	return true
}

// String renders the board as text, one letter per settled cell and a dot
// for empty cells. Used by tests and snapshots.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.width + 1) * b.height)
	for y, row := range b.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, cell := range row {
			sb.WriteString(cell.String())
		}
	}
	return sb.String()
}

// Row returns the y-th row rendered as text, for test assertions.
func (b *Board) Row(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	for _, cell := range b.cells[y] {
		sb.WriteString(cell.String())
	}
	return sb.String()
}
