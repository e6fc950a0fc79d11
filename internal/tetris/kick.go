package tetris

// kickOffsets is the ordered list of positions tried when resolving a
// rotation. The order is a deliberate tie-break: centered first, pure
// horizontal kicks next, vertical and diagonal kicks last. The first valid
// candidate wins even when later ones would also fit.
var kickOffsets = []Position{
	{0, 0},   // center
	{-1, 0},  // left
	{1, 0},   // right
	{0, -1},  // up
	{-1, -1}, // up-left
	{1, -1},  // up-right
}

// ResolveRotation rotates the piece clockwise and searches the kick offsets
// for a valid placement. On success it returns the rotated piece, its
// resolved position and true. If no candidate fits, the rotation is
// rejected and the original piece and position are returned unchanged.
func ResolveRotation(b *Board, p Piece, pos Position) (Piece, Position, bool) {
	rotated := p.Rotated()
	for _, off := range kickOffsets {
		candidate := Position{X: pos.X + off.X, Y: pos.Y + off.Y}
		if b.IsValidPlacement(rotated, candidate) {
			return rotated, candidate, true
		}
	}
	return p, pos, false
}
