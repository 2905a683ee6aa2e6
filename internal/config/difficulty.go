package config

import "math"

// DifficultyModel maps the current score to the range enemy speeds are drawn
// from. It holds no state beyond its tuning and is safe to share.
type DifficultyModel struct {
	cfg DifficultyConfig
}

// NewDifficultyModel creates a difficulty model.
func NewDifficultyModel(cfg DifficultyConfig) DifficultyModel {
	return DifficultyModel{cfg: cfg}
}

// SpeedRange returns the [low, high) speed range for the given score.
// low = base + min(maxBonus, score/scorePerStep) and high = low + spread,
// so the range never shrinks as score grows and stops moving once the
// bonus saturates.
func (d DifficultyModel) SpeedRange(score int) (low, high float64) {
	if score < 0 {
		score = 0
	}
	step := d.cfg.ScorePerStep
	if step <= 0 {
		step = 1 // Prevent division by zero
	}
	bonus := math.Min(d.cfg.MaxBonus, float64(score)/step)
	low = d.cfg.BaseSpeed + bonus
	return low, low + d.cfg.Spread
}

// SaturationScore returns the lowest score at which the range stops growing.
func (d DifficultyModel) SaturationScore() int {
	return int(math.Ceil(d.cfg.MaxBonus * d.cfg.ScorePerStep))
}
