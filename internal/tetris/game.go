package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Game adapts a Session to the platform's Game interface: it maps input
// actions to session intents, drives the gravity clock from the level's
// fall interval, and renders the playfield into a screen buffer.
type Game struct {
	cfg     core.RuntimeConfig
	gameCfg config.TetrisConfig
	session *Session
	tick    uint64

	// Gravity clock: ticks since the last automatic descent. The threshold
	// is recomputed from the level every step, so speed changes take effect
	// on the next gravity tick.
	gravityTicker int

	// Presentation-side state. The session itself stays atomic.
	muted      bool
	flashRows  []int
	flashTicks int

	// Layout computed on Reset
	hudHeight int
	tooSmall  bool
}

// Package-level knobs set by the CLI before the game is created.
var (
	configPath         string
	selectedStartLevel int
)

// SetConfigPath sets the YAML config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetStartLevel presets the start level (1-30). 0 keeps the config default.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// New creates a Tetris game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset initializes/restarts the game. The session comes up in
// PhaseNotStarted showing the start screen; Confirm begins the round.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gameCfg, err := config.LoadTetris(configPath)
	if err != nil {
		gameCfg = config.DefaultTetrisConfig()
	}
	g.cfg = cfg
	g.gameCfg = gameCfg
	g.tick = 0
	g.gravityTicker = 0
	g.flashRows = nil
	g.flashTicks = 0
	g.hudHeight = 2

	g.session = NewSession(gameCfg.Board.Width, gameCfg.Board.Height, cfg.Seed)

	start := gameCfg.Gameplay.StartLevel
	if selectedStartLevel > 0 {
		start = selectedStartLevel
		selectedStartLevel = 0 // Reset after use
	}
	g.session.SetStartLevel(start - g.session.StartLevel())

	g.checkScreenSize()
}

// checkScreenSize verifies the playfield and sidebar fit the screen.
func (g *Game) checkScreenSize() {
	requiredW := g.wellWidth() + sidebarWidth + 4
	requiredH := g.session.Board().Height() + g.hudHeight + 2
	g.tooSmall = g.cfg.ScreenW < requiredW || g.cfg.ScreenH < requiredH
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++
	var events []core.Event

	if input.Has(core.ActionMute) {
		g.muted = !g.muted
	}

	// Restart is honored from any phase; it resets the round but keeps the
	// chosen start level.
	if input.Has(core.ActionRestart) && g.session.Phase() == PhaseGameOver {
		events = append(events, g.session.Start()...)
		g.gravityTicker = 0
		return g.result(events)
	}

	if g.tooSmall {
		return g.result(events)
	}

	switch g.session.Phase() {
	case PhaseNotStarted:
		if input.Has(core.ActionLevelUp) {
			g.session.SetStartLevel(1)
		}
		if input.Has(core.ActionLevelDown) {
			g.session.SetStartLevel(-1)
		}
		if input.Has(core.ActionConfirm) {
			events = append(events, g.session.Start()...)
			g.gravityTicker = 0
		}

	case PhasePaused:
		if input.Has(core.ActionPause) {
			g.session.TogglePause()
		}

	case PhaseFalling:
		if input.Has(core.ActionPause) {
			g.session.TogglePause()
			break
		}
		events = append(events, g.applyPlayerIntents(input)...)
		events = append(events, g.applyGravity()...)
	}

	g.trackLineClears(events)
	return g.result(events)
}

// applyPlayerIntents maps this frame's actions onto session intents.
func (g *Game) applyPlayerIntents(input core.InputFrame) []core.Event {
	var events []core.Event

	if input.Has(core.ActionLeft) {
		g.session.Move(-1, 0, true)
	}
	if input.Has(core.ActionRight) {
		g.session.Move(1, 0, true)
	}
	if input.Has(core.ActionRotate) {
		g.session.Rotate()
	}
	if input.Has(core.ActionSoftDrop) {
		_, ev := g.session.Move(0, 1, true)
		events = append(events, ev...)
	}
	if input.Has(core.ActionHardDrop) && g.session.Phase() == PhaseFalling {
		events = append(events, g.session.HardDrop()...)
	}
	return events
}

// applyGravity issues the automatic downward intent when the level's fall
// interval has elapsed, measured in simulation ticks.
func (g *Game) applyGravity() []core.Event {
	if g.session.Phase() != PhaseFalling {
		return nil
	}
	g.gravityTicker++
	if g.gravityTicker < GravityTicks(g.session.Level(), g.cfg.TickRate) {
		return nil
	}
	g.gravityTicker = 0
	return g.session.GravityTick()
}

// trackLineClears arms the row flash overlay and resets the gravity clock
// whenever a piece locked this step.
func (g *Game) trackLineClears(events []core.Event) {
	for _, ev := range events {
		switch ev.Type {
		case core.EventLock:
			g.gravityTicker = 0
		case core.EventLineClear:
			g.flashRows = ev.Rows
			// ~0.3s at the configured tick rate
			g.flashTicks = core.Max(1, g.cfg.TickRate*3/10)
		}
	}
	if g.flashTicks > 0 {
		g.flashTicks--
		if g.flashTicks == 0 {
			g.flashRows = nil
		}
	}
}

func (g *Game) result(events []core.Event) core.StepResult {
	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	phase := g.session.Phase()
	return core.GameState{
		Score:    g.session.Score(),
		Level:    g.session.Level(),
		Lines:    g.session.Lines(),
		Started:  phase != PhaseNotStarted,
		GameOver: phase == PhaseGameOver,
		Paused:   phase == PhasePaused,
	}
}

// Snapshot exposes the session snapshot for tests and tooling.
func (g *Game) Snapshot() Snapshot {
	return g.session.Snapshot()
}

// Muted reports the presentation-only sound cue flag.
func (g *Game) Muted() bool {
	return g.muted
}

// DebugState returns a compact state description.
func (g *Game) DebugState() string {
	snap := g.session.Snapshot()
	return fmt.Sprintf("tick=%d phase=%s score=%d level=%d lines=%d next=%s",
		g.tick, snap.Phase, snap.Score, snap.Level, snap.Lines, snap.NextKind)
}
