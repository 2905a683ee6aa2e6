// Package dodge implements a falling-block dodging game.
// The player slides along the bottom of the field while enemies fall from
// the top; every enemy that falls past scores a point and any touch ends
// the game. An optional agent can steer the player.
package dodge

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/registry"
)

// Visual characters for rendering
const (
	PlayerChar = '█'
	EnemyChar  = '▓'
	GroundChar = '═'
)

// Minimum terminal size the field can be drawn in
const (
	minScreenW = 24
	minScreenH = 10
)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset
var forceAutoplay bool
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetAutoplayDefault makes new sessions start with the agent enabled.
func SetAutoplayDefault(on bool) {
	forceAutoplay = on
}

// SetLogger sets the logger handed to new sessions.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// LoadConfig loads the Dodge config the same way the game does, applying the
// preset set with SetDifficultyPreset.
func LoadConfig() (config.DodgeConfig, error) {
	cfg, err := config.LoadDodge(configPath)
	if err != nil {
		return config.DefaultDodgeConfig(), err
	}
	config.ApplyDodgePreset(&cfg, difficultyPreset)
	return cfg, nil
}

// Game adapts a Session to the platform's Game interface: it turns input
// frames into session commands, advances the session clock once per
// platform tick and draws snapshots into the character screen.
type Game struct {
	runtime         core.RuntimeConfig
	cfg             config.DodgeConfig
	session         *Session
	autoplayDefault bool // Menu toggle, applied when a session starts
}

// New creates a new Dodge game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "dodge"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Dodge"
}

// Reset loads the config and returns the game to its menu.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := LoadConfig()
	if err != nil {
		logger.Warn("falling back to default config", "error", err)
	}
	g.cfg = cfg
	g.autoplayDefault = cfg.Autoplay.Default || forceAutoplay

	g.session = NewSession(cfg, WithSeed(runtime.Seed), WithLogger(logger))
}

// Resize follows terminal size changes without touching the session.
func (g *Game) Resize(screenW, screenH int) {
	g.runtime.ScreenW = screenW
	g.runtime.ScreenH = screenH
}

// Session returns the underlying session.
func (g *Game) Session() *Session {
	g.ensure()
	return g.session
}

// ensure resets the game with default runtime settings if Reset was never called.
func (g *Game) ensure() {
	if g.session == nil {
		g.Reset(core.DefaultConfig())
	}
}

// Step applies the frame's input and advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.ensure()
	g.applyInput(in)
	g.session.Advance(g.tickDuration())
	return core.StepResult{State: g.State()}
}

// tickDuration is the simulated time covered by one platform tick.
func (g *Game) tickDuration() time.Duration {
	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

// applyInput translates platform actions into session commands.
func (g *Game) applyInput(in core.InputFrame) {
	s := g.session

	if s.Status() == StatusIdle {
		if in.Has(core.ActionAutoplay) {
			g.autoplayDefault = !g.autoplayDefault
		}
		if in.Has(core.ActionConfirm) {
			s.Start(SessionConfig{
				Field:           Field{Width: g.cfg.Field.Width, Height: g.cfg.Field.Height},
				AutoplayDefault: g.autoplayDefault,
			})
		}
		return
	}

	if in.Has(core.ActionBack) {
		s.Pause()
		s.ReturnToMenu()
		return
	}
	if in.Has(core.ActionRestart) {
		s.Restart()
	}
	if in.Has(core.ActionPause) {
		s.TogglePause()
	}
	if in.Has(core.ActionAutoplay) {
		s.SetAutoplay(!s.Autoplay())
	}

	cx := s.Store().Player().CenterX()
	switch {
	case in.HasPointer:
		s.SetPlayerX(g.colToFieldX(in.PointerCol))
	case in.Has(core.ActionLeft):
		s.SetPlayerX(cx - g.cfg.Player.Nudge)
	case in.Has(core.ActionRight):
		s.SetPlayerX(cx + g.cfg.Player.Nudge)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	g.ensure()
	status := g.session.Status()
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: status == StatusGameOver,
		Paused:   status == StatusPaused,
		InMenu:   status == StatusIdle,
	}
}

// viewport maps field units onto the character screen. Row 0 holds the HUD
// and the last row the ground; the field fills the rows in between.
type viewport struct {
	top    int     // First screen row of the field
	rows   int     // Screen rows covered by the field
	cols   int     // Screen columns covered by the field
	scaleX float64 // Columns per field unit
	scaleY float64 // Rows per field unit
	fieldH float64
}

func (g *Game) viewport(field Field) viewport {
	rows := g.runtime.ScreenH - 2
	cols := g.runtime.ScreenW
	return viewport{
		top:    1,
		rows:   rows,
		cols:   cols,
		scaleX: float64(cols) / field.Width,
		scaleY: float64(rows) / field.Height,
		fieldH: field.Height,
	}
}

// cells converts a field rectangle to an inclusive range of screen cells.
// ok is false when the rectangle is entirely outside the visible field.
func (v viewport) cells(r core.Rect) (x0, y0, x1, y1 int, ok bool) {
	x0 = int(math.Floor(r.X * v.scaleX))
	x1 = int(math.Ceil(r.Right()*v.scaleX)) - 1
	y0 = v.top + int(math.Floor((v.fieldH-r.Top())*v.scaleY))
	y1 = v.top + int(math.Ceil((v.fieldH-r.Y)*v.scaleY)) - 1

	// Anything on the field stays at least one cell big
	x1 = max(x1, x0)
	y1 = max(y1, y0)

	x0 = max(x0, 0)
	x1 = min(x1, v.cols-1)
	y0 = max(y0, v.top)
	y1 = min(y1, v.top+v.rows-1)
	return x0, y0, x1, y1, x0 <= x1 && y0 <= y1
}

// colToFieldX converts a screen column to the field x at the column's middle.
func (g *Game) colToFieldX(col int) float64 {
	v := g.viewport(g.session.Store().Field())
	if v.scaleX <= 0 {
		return 0
	}
	return (float64(col) + 0.5) / v.scaleX
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.ensure()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawText(0, 0, "Terminal too small")
		return
	}

	snap := g.session.Snapshot()
	if snap.Status == StatusIdle {
		g.drawMenu(dst)
		return
	}

	v := g.viewport(snap.Field)

	// Draw ground
	dst.DrawHLine(0, dst.Height()-1, dst.Width(), GroundChar)

	// Draw enemies
	for _, e := range snap.Enemies {
		if x0, y0, x1, y1, ok := v.cells(e.Rect); ok {
			dst.DrawRect(x0, y0, x1-x0+1, y1-y0+1, EnemyChar, e.Color)
		}
	}

	// Draw player
	if x0, y0, x1, y1, ok := v.cells(snap.Player); ok {
		dst.DrawRect(x0, y0, x1-x0+1, y1-y0+1, PlayerChar, core.ColorBrightGreen)
	}

	// Draw HUD
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", snap.Score))
	agentText := " Agent: OFF "
	agentColor := core.ColorGray
	if snap.Autoplay {
		agentText = " Agent: ON "
		agentColor = core.ColorBrightCyan
	}
	dst.DrawTextColored(dst.Width()-len(agentText)-2, 0, agentText, agentColor)

	switch snap.Status {
	case StatusPaused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case StatusGameOver:
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Final: %d  |  R restart  M menu", snap.Score))
	}
}

// drawMenu renders the idle screen.
func (g *Game) drawMenu(dst *core.Screen) {
	autoplay := "OFF"
	if g.autoplayDefault {
		autoplay = "ON"
	}

	lines := []string{
		"D O D G E !",
		"",
		"Enter  Start Game",
		fmt.Sprintf("T      Auto-Play: %s", autoplay),
		"Q      Exit",
		"",
		"Move with mouse or arrows (or Auto-Play)",
	}

	top := (dst.Height() - len(lines)) / 2
	for i, line := range lines {
		dst.DrawTextCentered(top+i, line)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

// Register the game with the registry
func init() {
	registry.Register("dodge", func() registry.Game {
		return New()
	})
}
