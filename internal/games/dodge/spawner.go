package dodge

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/sched"
)

// Spawner creates enemies on clock tasks: a one-time opening burst shortly
// after the session starts and a recurring spawn whose speed follows the
// difficulty model. Disarming cancels both; arming again starts a fresh
// interval, so time spent disarmed is never made up.
type Spawner struct {
	clock      *sched.Clock
	rng        *rand.Rand
	store      *EntityStore
	difficulty config.DifficultyModel
	enemies    config.DodgeEnemies
	timing     config.DodgeSpawn
	score      func() int
	logger     *log.Logger

	recurring    *sched.Task
	burst        *sched.Task
	burstPending bool // Opening burst has not fired yet this session
}

// NewSpawner creates a spawner adding enemies to store.
// score is read at every recurring spawn to pick the speed range.
func NewSpawner(clock *sched.Clock, rng *rand.Rand, store *EntityStore, cfg config.DodgeConfig, score func() int, logger *log.Logger) *Spawner {
	return &Spawner{
		clock:      clock,
		rng:        rng,
		store:      store,
		difficulty: config.NewDifficultyModel(cfg.Difficulty),
		enemies:    cfg.Enemies,
		timing:     cfg.Spawn,
		score:      score,
		logger:     logger,
	}
}

// Reset disarms the spawner and queues the opening burst for the next Arm.
func (s *Spawner) Reset() {
	s.Disarm()
	s.burstPending = true
}

// Arm schedules the recurring spawn one full interval from now, plus the
// opening burst if it has not fired yet.
func (s *Spawner) Arm() {
	s.Disarm()
	s.recurring = s.clock.Every(s.timing.Interval, s.spawnRecurring)
	if s.burstPending {
		s.burst = s.clock.After(s.timing.InitialDelay, s.spawnBurst)
	}
}

// Disarm cancels all pending spawns. Safe to call when already disarmed.
func (s *Spawner) Disarm() {
	s.recurring.Cancel()
	s.burst.Cancel()
	s.recurring = nil
	s.burst = nil
}

// Armed reports whether the recurring spawn is scheduled.
func (s *Spawner) Armed() bool {
	return s.recurring.Active()
}

// NextSpawnIn returns the time until the next recurring spawn, or zero when
// disarmed.
func (s *Spawner) NextSpawnIn() time.Duration {
	return s.recurring.Remaining()
}

// Spawn creates one enemy just above the field with the given speed and a
// random width and horizontal position.
func (s *Spawner) Spawn(speed float64) Enemy {
	field := s.store.Field()

	w := s.enemies.MinWidth
	if s.enemies.MaxWidth > s.enemies.MinWidth {
		w = s.enemies.MinWidth + s.rng.Intn(s.enemies.MaxWidth-s.enemies.MinWidth+1)
	}

	x := 0
	if maxX := int(field.Width) - w; maxX > 0 {
		x = s.rng.Intn(maxX + 1)
	}

	size := float64(w)
	e := Enemy{
		Rect:  core.NewRect(float64(x), field.Height+s.enemies.SpawnOffset, size, size),
		Speed: speed,
		Color: core.AccentColors[s.rng.Intn(len(core.AccentColors))],
	}
	e.ID = s.store.Add(e)

	s.logger.Debug("enemy spawned", "id", e.ID, "x", x, "width", w, "speed", speed)
	return e
}

// spawnBurst releases the opening wave with speeds from the initial range.
func (s *Spawner) spawnBurst(time.Duration) {
	s.burstPending = false
	s.burst = nil

	n := s.timing.InitialMin
	if s.timing.InitialMax > s.timing.InitialMin {
		n += s.rng.Intn(s.timing.InitialMax - s.timing.InitialMin + 1)
	}
	for i := 0; i < n; i++ {
		s.Spawn(s.uniform(s.enemies.InitialSpeedMin, s.enemies.InitialSpeedMax))
	}
}

// spawnRecurring adds one enemy with a speed drawn for the current score.
func (s *Spawner) spawnRecurring(time.Duration) {
	low, high := s.difficulty.SpeedRange(s.score())
	s.Spawn(s.uniform(low, high))
}

// uniform draws from [low, high).
func (s *Spawner) uniform(low, high float64) float64 {
	return low + s.rng.Float64()*(high-low)
}
