// Package config provides YAML-based gameplay configuration for the
// tetris platform.
package config

// TetrisConfig contains all tunable gameplay parameters.
type TetrisConfig struct {
	Board    BoardConfig    `yaml:"board"`
	Gameplay GameplayConfig `yaml:"gameplay"`
}

// BoardConfig defines the playfield dimensions. The canonical well is
// 10x20; wider or taller variants are allowed and flow through scoring
// unchanged (clears beyond four rows score as four).
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GameplayConfig defines round behavior.
type GameplayConfig struct {
	// StartLevel is the default level a round starts at (1-30); the
	// player can still adjust it on the start screen.
	StartLevel int `yaml:"start_level"`

	// GhostPiece toggles the landing preview.
	GhostPiece bool `yaml:"ghost_piece"`
}

// Validate clamps out-of-range values to playable ones.
func (c *TetrisConfig) Validate() {
	if c.Board.Width < 4 {
		c.Board.Width = 10
	}
	if c.Board.Height < 4 {
		c.Board.Height = 20
	}
	if c.Gameplay.StartLevel < 1 {
		c.Gameplay.StartLevel = 1
	}
	if c.Gameplay.StartLevel > 30 {
		c.Gameplay.StartLevel = 30
	}
}
