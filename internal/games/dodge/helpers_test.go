package dodge

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-dodge/internal/config"
)

// frame is one movement tick at the default tick rate.
const frame = time.Second / 60

const epsilon = 1e-6

func approx(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

// quietConfig returns the default config with spawning pushed far into the
// future, so tests can place enemies by hand.
func quietConfig() config.DodgeConfig {
	cfg := config.DefaultDodgeConfig()
	cfg.Spawn.InitialMin = 0
	cfg.Spawn.InitialMax = 0
	cfg.Spawn.Interval = time.Hour
	return cfg
}
