package quickbuck

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/quickbuck/internal/config"
	"github.com/vovakirdan/quickbuck/internal/core"
	"github.com/vovakirdan/quickbuck/internal/registry"
)

// GameID is the registry identifier of Quick Buck.
const GameID = "quickbuck"

// Game implements registry.Game for Quick Buck.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.QuickBuckConfig
	scene   *core.Scene
	world   *World
	mode    Mode
	logger  *log.Logger
}

// configPath stores the custom config path set via CLI
var configPath string

var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetLogger sets the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// New creates a new Quick Buck game instance.
func New() *Game {
	return &Game{
		cfg:    config.DefaultQuickBuckConfig(),
		scene:  core.NewScene(),
		logger: logger.WithPrefix(GameID),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Quick Buck"
}

// Reset loads the configuration and starts a new play session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.Load(configPath)
	if err != nil {
		g.logger.Warn("using default config", "path", configPath, "err", err)
		cfg = config.DefaultQuickBuckConfig()
	}
	g.cfg = cfg

	g.enterPlaying()
}

// ResetWithConfig starts a new play session with an explicit configuration.
func (g *Game) ResetWithConfig(runtime core.RuntimeConfig, cfg config.QuickBuckConfig) {
	g.runtime = runtime
	g.cfg = cfg
	g.enterPlaying()
}

func (g *Game) enterPlaying() {
	g.scene.Reset()
	g.world = NewWorld(g.cfg, g.scene, g.runtime.Seed, g.logger)
	g.setMode(ModePlaying)
}

func (g *Game) enterMainMenu() {
	g.scene.Reset()
	g.world = nil
	g.setMode(ModeMainMenu)
}

func (g *Game) setMode(m Mode) {
	if g.mode != m {
		g.logger.Info("mode", "from", g.mode, "to", m)
	}
	g.mode = m
}

// Step advances the game by one frame.
// The simulation only runs while playing; Pause toggles between playing and
// paused, Back leaves a paused game for the main menu, Confirm starts a new
// session from the main menu.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	switch g.mode {
	case ModeMainMenu:
		if in.Has(core.ActionConfirm) {
			g.enterPlaying()
		}
		return core.StepResult{State: g.State()}

	case ModePaused:
		switch {
		case in.Has(core.ActionPause):
			g.setMode(ModePlaying)
		case in.Has(core.ActionBack):
			g.enterMainMenu()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.setMode(ModePaused)
		return core.StepResult{State: g.State()}
	}

	spawned := g.world.Tick(in, dt)
	return core.StepResult{State: g.State(), Spawned: spawned}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Paused: g.mode == ModePaused,
		InMenu: g.mode == ModeMainMenu,
	}
	if g.world != nil {
		st.Frames = g.world.Frames()
		st.Obstacles = len(g.world.Obstacles())
	}
	return st
}

// Mode returns the current game mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// World returns the current session, or nil on the main menu.
func (g *Game) World() *World {
	return g.world
}

// Config returns the configuration of the current session.
func (g *Game) Config() config.QuickBuckConfig {
	return g.cfg
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
