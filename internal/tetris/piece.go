// Package tetris implements the falling-block game engine: piece catalog,
// 7-bag randomizer, board model, rotation with wall kicks, session state
// machine, gravity timing and scoring. The package contains pure logic with
// no presentation dependencies and is deterministic under a fixed seed.
package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Kind identifies one of the seven tetromino shapes.
type Kind int8

const (
	// KindNone marks an empty board cell.
	KindNone Kind = iota - 1
	KindI
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// KindCount is the number of distinct tetromino kinds.
const KindCount = 7

// baseShapes holds the spawn orientation of each kind. Shapes live on a
// square bounding grid so a 90° rotation stays within the same grid.
// Flat-side-down orientation, I on a 4x4 with the occupied row second from
// the top so the first rotation pivots around the grid center.
var baseShapes = [KindCount][][]bool{
	KindI: {
		{false, false, false, false},
		{true, true, true, true},
		{false, false, false, false},
		{false, false, false, false},
	},
	KindO: {
		{true, true},
		{true, true},
	},
	KindT: {
		{false, true, false},
		{true, true, true},
		{false, false, false},
	},
	KindS: {
		{false, true, true},
		{true, true, false},
		{false, false, false},
	},
	KindZ: {
		{true, true, false},
		{false, true, true},
		{false, false, false},
	},
	KindJ: {
		{true, false, false},
		{true, true, true},
		{false, false, false},
	},
	KindL: {
		{false, false, true},
		{true, true, true},
		{false, false, false},
	},
}

// kindColors maps each kind to its canonical color tag.
var kindColors = [KindCount]core.Color{
	KindI: core.ColorBrightCyan,
	KindO: core.ColorBrightYellow,
	KindT: core.ColorBrightMagenta,
	KindS: core.ColorBrightGreen,
	KindZ: core.ColorBrightRed,
	KindJ: core.ColorBrightBlue,
	KindL: core.ColorOrange,
}

// kindNames maps kinds to their single-letter names.
var kindNames = [KindCount]string{"I", "O", "T", "S", "Z", "J", "L"}

// String returns the letter name of the kind, or "." for KindNone.
func (k Kind) String() string {
	if k < 0 || int(k) >= KindCount {
		return "."
	}
	return kindNames[k]
}

// Valid reports whether k names one of the seven tetromino kinds.
func (k Kind) Valid() bool {
	return k >= 0 && int(k) < KindCount
}

// Color returns the color tag associated with the kind.
func (k Kind) Color() core.Color {
	if !k.Valid() {
		return core.ColorDefault
	}
	return kindColors[k]
}

// Shape returns a fresh copy of the kind's base shape grid.
// Callers own the returned grid and may rotate it freely.
func (k Kind) Shape() [][]bool {
	base := baseShapes[k]
	shape := make([][]bool, len(base))
	for i := range base {
		shape[i] = make([]bool, len(base[i]))
		copy(shape[i], base[i])
	}
	return shape
}

// Position is the board column/row of a piece's bounding-box origin.
// Y grows downward; negative rows are above the visible board.
type Position struct {
	X, Y int
}

// Piece is a tetromino in a specific rotation. The shape grid is never
// mutated in place: rotation produces a new Piece.
type Piece struct {
	Kind  Kind
	Shape [][]bool
}

// NewPiece creates a piece of the given kind in its spawn orientation.
func NewPiece(k Kind) Piece {
	return Piece{Kind: k, Shape: k.Shape()}
}

// Size returns the side length of the piece's bounding grid.
func (p Piece) Size() int {
	return len(p.Shape)
}

// Rotated returns a copy of the piece turned 90° clockwise: the bounding
// matrix is transposed and each row reversed. Kind and color are preserved
// and the board is not consulted.
func (p Piece) Rotated() Piece {
	n := len(p.Shape)
	shape := make([][]bool, n)
	for i := range shape {
		shape[i] = make([]bool, n)
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			shape[c][n-1-r] = p.Shape[r][c]
		}
	}
	return Piece{Kind: p.Kind, Shape: shape}
}

// Color returns the piece's color tag.
func (p Piece) Color() core.Color {
	return p.Kind.Color()
}
