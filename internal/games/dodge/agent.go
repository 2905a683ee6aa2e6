package dodge

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
)

// Agent is the autoplay controller. It keeps no memory between ticks: every
// decision is made from the positions it is given.
type Agent struct {
	cfg config.AutoplayConfig
}

// NewAgent creates an autoplay agent.
func NewAgent(cfg config.AutoplayConfig) Agent {
	return Agent{cfg: cfg}
}

// Threat returns the enemy closest to crossing the player's height, i.e. the
// one with the lowest y. Ties go to the first enemy in the slice.
func Threat(enemies []Enemy) (Enemy, bool) {
	if len(enemies) == 0 {
		return Enemy{}, false
	}
	threat := enemies[0]
	for _, e := range enemies[1:] {
		if e.Rect.Y < threat.Rect.Y {
			threat = e
		}
	}
	return threat, true
}

// Step returns how far the player may move in one tick lasting dt.
// The per-frame base step is scaled to dt so behavior does not depend on the
// tick rate.
func (a Agent) Step(score int, dt time.Duration) float64 {
	step := (a.cfg.BaseStep + float64(score)*a.cfg.StepPerScore) * dt.Seconds() * 60
	return math.Max(a.cfg.MinStep, step)
}

// Decide computes the player's next center x. moved is false when the agent
// leaves the player where it is.
//
// When the threat is horizontally close and will reach the player's height
// soon, the agent sidesteps away from it. Otherwise it drifts back toward
// the middle of the field without overshooting.
func (a Agent) Decide(player core.Rect, enemies []Enemy, field Field, score int, dt time.Duration) (centerX float64, moved bool) {
	cx := player.CenterX()

	threat, ok := Threat(enemies)
	if !ok || threat.Speed <= 0 {
		return cx, false
	}

	var timeToPlayer float64
	if threat.Rect.Y > player.Y {
		timeToPlayer = (threat.Rect.Y - player.Y) / threat.Speed
	}

	horizDist := threat.Rect.CenterX() - cx
	reach := player.W/2 + threat.Rect.W/2 + a.cfg.DangerMargin
	danger := math.Abs(horizDist) < reach && timeToPlayer > 0 && timeToPlayer < a.cfg.DangerHorizon

	step := a.Step(score, dt)
	half := player.W / 2
	next := cx

	switch {
	case danger && horizDist > 0:
		next = math.Max(half, cx-step)
	case danger:
		next = math.Min(field.Width-half, cx+step)
	default:
		center := field.CenterX()
		if math.Abs(cx-center) <= a.cfg.CenterDeadband {
			return cx, false
		}
		if cx < center {
			next = math.Min(center, cx+step)
		} else {
			next = math.Max(center, cx-step)
		}
	}

	next = core.ClampF(next, half, field.Width-half)
	return next, next != cx
}
