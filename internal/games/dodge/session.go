package dodge

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/sched"
)

// Status is the session state.
type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusPaused
	StatusGameOver
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// SessionConfig is supplied by the caller when a session starts.
type SessionConfig struct {
	Field           Field // Zero value means the configured field size
	AutoplayDefault bool
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger for transitions and spawns.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSeed seeds the session RNG.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRenderHook registers fn to receive a snapshot after every completed tick.
func WithRenderHook(fn func(Snapshot)) Option {
	return func(s *Session) {
		s.hook = fn
	}
}

// Session drives one player's games: it owns the entities, the spawner and
// the clock tasks, and moves between Idle, Running, Paused and GameOver.
//
// Only a Running session ticks. The movement and spawn tasks are created and
// cancelled inside the transition methods, so once Pause, ReturnToMenu or a
// collision has been handled nothing else is mutated until the session runs
// again. Commands that do not apply to the current status are ignored.
//
// A Session is not safe for concurrent use.
type Session struct {
	cfg     config.DodgeConfig
	clock   *sched.Clock
	rng     *rand.Rand
	store   *EntityStore
	spawner *Spawner
	agent   Agent
	logger  *log.Logger
	hook    func(Snapshot)

	status   Status
	score    int
	autoplay bool
	session  SessionConfig
	ticks    uint64

	interval time.Duration // Movement tick period
	move     *sched.Task

	pendingX   float64 // Last SetPlayerX not yet applied
	hasPending bool
}

// NewSession creates an idle session.
func NewSession(cfg config.DodgeConfig, opts ...Option) *Session {
	field := Field{Width: cfg.Field.Width, Height: cfg.Field.Height}
	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}

	s := &Session{
		cfg:      cfg,
		clock:    sched.NewClock(),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		store:    NewEntityStore(field, cfg.Player.Width, cfg.Player.Height, cfg.Player.Y),
		agent:    NewAgent(cfg.Autoplay),
		logger:   log.New(io.Discard),
		interval: time.Second / time.Duration(tickRate),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.spawner = NewSpawner(s.clock, s.rng, s.store, cfg, s.Score, s.logger)
	return s
}

// Status returns the current state.
func (s *Session) Status() Status {
	return s.status
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// Autoplay reports whether the agent is driving the player.
func (s *Session) Autoplay() bool {
	return s.autoplay
}

// Store exposes the entity store.
func (s *Session) Store() *EntityStore {
	return s.store
}

// Spawner exposes the spawner.
func (s *Session) Spawner() *Spawner {
	return s.spawner
}

// TickInterval returns the movement tick period.
func (s *Session) TickInterval() time.Duration {
	return s.interval
}

// Advance moves the session clock forward by d, running every movement tick
// and spawn that falls due. Returns the number of tasks fired.
func (s *Session) Advance(d time.Duration) int {
	return s.clock.Advance(d)
}

// Start begins a session from Idle.
func (s *Session) Start(sc SessionConfig) bool {
	if s.status != StatusIdle {
		return false
	}
	s.begin(sc)
	return true
}

// Restart begins a new session after a game over, reusing the last config.
func (s *Session) Restart() bool {
	if s.status != StatusGameOver {
		return false
	}
	s.begin(s.session)
	return true
}

// Pause freezes a running session. Score, enemies and player stay as they are.
func (s *Session) Pause() bool {
	if s.status != StatusRunning {
		return false
	}
	s.disarm()
	s.status = StatusPaused
	s.logger.Info("session paused", "score", s.score, "tick", s.ticks)
	return true
}

// Resume continues a paused session with fresh tick intervals.
func (s *Session) Resume() bool {
	if s.status != StatusPaused {
		return false
	}
	s.status = StatusRunning
	s.arm()
	s.logger.Info("session resumed", "score", s.score, "tick", s.ticks)
	return true
}

// TogglePause pauses a running session or resumes a paused one.
func (s *Session) TogglePause() bool {
	switch s.status {
	case StatusRunning:
		return s.Pause()
	case StatusPaused:
		return s.Resume()
	default:
		return false
	}
}

// ReturnToMenu discards a paused or finished session and goes back to Idle.
func (s *Session) ReturnToMenu() bool {
	if s.status != StatusPaused && s.status != StatusGameOver {
		return false
	}
	s.disarm()
	s.logger.Info("returned to menu", "score", s.score)

	s.status = StatusIdle
	s.score = 0
	s.ticks = 0
	s.autoplay = false
	s.hasPending = false
	s.store.Clear()
	s.store.ResetPlayer()
	s.spawner.Reset()
	return true
}

// SetAutoplay switches the agent on or off for the current session.
// Turning it on drops any queued position command.
func (s *Session) SetAutoplay(on bool) bool {
	if s.status == StatusIdle {
		return false
	}
	s.autoplay = on
	if on {
		s.hasPending = false
	}
	s.logger.Debug("autoplay changed", "on", on)
	return true
}

// SetPlayerX queues a horizontal position for the player, applied on the
// next movement tick. Later commands replace earlier ones. Ignored while
// autoplay is on or no session exists; out-of-field values are clamped
// when applied.
func (s *Session) SetPlayerX(x float64) bool {
	if s.status == StatusIdle || s.autoplay {
		return false
	}
	s.pendingX = x
	s.hasPending = true
	return true
}

// begin resets all session state and starts ticking.
func (s *Session) begin(sc SessionConfig) {
	s.disarm()

	if sc.Field.Width <= 0 || sc.Field.Height <= 0 {
		sc.Field = Field{Width: s.cfg.Field.Width, Height: s.cfg.Field.Height}
	}
	s.session = sc

	s.store.Clear()
	s.store.SetField(sc.Field)
	s.store.ResetPlayer()
	s.spawner.Reset()

	s.score = 0
	s.ticks = 0
	s.autoplay = sc.AutoplayDefault
	s.hasPending = false
	s.status = StatusRunning

	s.arm()
	s.logger.Info("session started", "field", sc.Field, "autoplay", s.autoplay)
}

// arm schedules the movement tick and the spawner.
func (s *Session) arm() {
	s.move = s.clock.Every(s.interval, s.tick)
	s.spawner.Arm()
}

// disarm cancels the movement tick and the spawner. Idempotent.
func (s *Session) disarm() {
	s.move.Cancel()
	s.move = nil
	s.spawner.Disarm()
}

// tick runs one movement step: fall, despawn and score, collide, then steer.
func (s *Session) tick(dt time.Duration) {
	if s.status != StatusRunning {
		return
	}
	s.ticks++

	s.store.MoveEnemies()

	margin := s.cfg.Enemies.DespawnMargin
	for _, e := range s.store.Enemies() {
		if e.Gone(margin) && s.store.Remove(e.ID) {
			s.score++
			s.logger.Debug("enemy dodged", "id", e.ID, "score", s.score)
		}
	}

	player := s.store.Player()
	if hit, ok := FirstHit(player, s.store.Enemies()); ok {
		s.gameOver(hit)
		s.emit()
		return
	}

	switch {
	case s.autoplay:
		if x, moved := s.agent.Decide(player, s.store.Enemies(), s.store.Field(), s.score, dt); moved {
			s.store.SetPlayerCenterX(x)
		}
	case s.hasPending:
		s.store.SetPlayerCenterX(s.pendingX)
		s.hasPending = false
	}

	s.emit()
}

// gameOver stops the session after a collision.
func (s *Session) gameOver(hit Enemy) {
	s.disarm()
	s.status = StatusGameOver
	s.logger.Info("game over",
		"score", s.score,
		"tick", s.ticks,
		"enemy", hit.ID,
		"elapsed", s.elapsed(),
	)
}

// elapsed is the simulated time the session has spent running.
func (s *Session) elapsed() time.Duration {
	return time.Duration(s.ticks) * s.interval
}

// emit hands the latest snapshot to the render hook, if any.
func (s *Session) emit() {
	if s.hook != nil {
		s.hook(s.Snapshot())
	}
}
