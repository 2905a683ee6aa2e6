// Package config provides YAML-based game configuration loading and
// difficulty management for Dodge.
package config

import (
	"errors"
	"fmt"
	"time"
)

// DodgeConfig contains all configuration for the Dodge game.
type DodgeConfig struct {
	TickRate   int              `yaml:"tick_rate"`
	Field      DodgeField       `yaml:"field"`
	Player     DodgePlayer      `yaml:"player"`
	Enemies    DodgeEnemies     `yaml:"enemies"`
	Spawn      DodgeSpawn       `yaml:"spawn"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Autoplay   AutoplayConfig   `yaml:"autoplay"`
}

// DodgeField defines the logical play area in field units.
type DodgeField struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// DodgePlayer defines player parameters for Dodge.
type DodgePlayer struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Y      float64 `yaml:"y"`     // Fixed distance above the field bottom
	Nudge  float64 `yaml:"nudge"` // Keyboard step per key press
}

// DodgeEnemies defines how falling enemies are shaped.
type DodgeEnemies struct {
	MinWidth        int     `yaml:"min_width"`
	MaxWidth        int     `yaml:"max_width"`
	SpawnOffset     float64 `yaml:"spawn_offset"`      // Height above the field top at spawn
	DespawnMargin   float64 `yaml:"despawn_margin"`    // Extra distance below the bottom before removal
	InitialSpeedMin float64 `yaml:"initial_speed_min"` // Speed range of the opening burst
	InitialSpeedMax float64 `yaml:"initial_speed_max"`
}

// DodgeSpawn defines spawn timing.
type DodgeSpawn struct {
	InitialDelay time.Duration `yaml:"initial_delay"`
	InitialMin   int           `yaml:"initial_min"`
	InitialMax   int           `yaml:"initial_max"`
	Interval     time.Duration `yaml:"interval"`
}

// DifficultyConfig defines how the enemy speed range grows with score.
type DifficultyConfig struct {
	BaseSpeed    float64 `yaml:"base_speed"`     // Lower speed bound at score 0
	ScorePerStep float64 `yaml:"score_per_step"` // Score needed to add one unit of speed
	MaxBonus     float64 `yaml:"max_bonus"`      // Cap on the score-driven speed bonus
	Spread       float64 `yaml:"spread"`         // Width of the speed range
}

// AutoplayConfig tunes the autoplay agent.
type AutoplayConfig struct {
	Default        bool    `yaml:"default"`
	DangerMargin   float64 `yaml:"danger_margin"`   // Horizontal slack added to the half-widths
	DangerHorizon  float64 `yaml:"danger_horizon"`  // Ticks-to-impact treated as dangerous
	MinStep        float64 `yaml:"min_step"`        // Lower bound of one move
	BaseStep       float64 `yaml:"base_step"`       // Step per 60Hz frame at score 0
	StepPerScore   float64 `yaml:"step_per_score"`  // Extra step per point of score
	CenterDeadband float64 `yaml:"center_deadband"` // Distance from center that counts as centered
}

// Validate reports every invalid field in the config.
func (c DodgeConfig) Validate() error {
	var errs []error
	if c.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be positive, got %d", c.TickRate))
	}
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		errs = append(errs, fmt.Errorf("field must have positive size, got %vx%v", c.Field.Width, c.Field.Height))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, fmt.Errorf("player must have positive size, got %vx%v", c.Player.Width, c.Player.Height))
	}
	if c.Player.Width > c.Field.Width {
		errs = append(errs, fmt.Errorf("player width %v exceeds field width %v", c.Player.Width, c.Field.Width))
	}
	if c.Enemies.MinWidth <= 0 || c.Enemies.MaxWidth < c.Enemies.MinWidth {
		errs = append(errs, fmt.Errorf("enemy widths must satisfy 0 < min <= max, got [%d, %d]", c.Enemies.MinWidth, c.Enemies.MaxWidth))
	}
	if float64(c.Enemies.MaxWidth) > c.Field.Width {
		errs = append(errs, fmt.Errorf("enemy max_width %d exceeds field width %v", c.Enemies.MaxWidth, c.Field.Width))
	}
	if c.Enemies.InitialSpeedMin <= 0 || c.Enemies.InitialSpeedMax < c.Enemies.InitialSpeedMin {
		errs = append(errs, fmt.Errorf("initial speeds must satisfy 0 < min <= max, got [%v, %v]", c.Enemies.InitialSpeedMin, c.Enemies.InitialSpeedMax))
	}
	if c.Spawn.Interval <= 0 {
		errs = append(errs, fmt.Errorf("spawn interval must be positive, got %v", c.Spawn.Interval))
	}
	if c.Spawn.InitialDelay < 0 {
		errs = append(errs, fmt.Errorf("spawn initial_delay must not be negative, got %v", c.Spawn.InitialDelay))
	}
	if c.Spawn.InitialMin < 0 || c.Spawn.InitialMax < c.Spawn.InitialMin {
		errs = append(errs, fmt.Errorf("initial burst must satisfy 0 <= min <= max, got [%d, %d]", c.Spawn.InitialMin, c.Spawn.InitialMax))
	}
	if c.Difficulty.BaseSpeed <= 0 {
		errs = append(errs, fmt.Errorf("difficulty base_speed must be positive, got %v", c.Difficulty.BaseSpeed))
	}
	if c.Difficulty.ScorePerStep <= 0 {
		errs = append(errs, fmt.Errorf("difficulty score_per_step must be positive, got %v", c.Difficulty.ScorePerStep))
	}
	if c.Difficulty.MaxBonus < 0 || c.Difficulty.Spread < 0 {
		errs = append(errs, errors.New("difficulty max_bonus and spread must not be negative"))
	}
	return errors.Join(errs...)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset. Unknown or empty values
// return an empty preset, which leaves the config untouched.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// BaseSpeedForPreset returns the base enemy speed for a difficulty preset.
func BaseSpeedForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 2.0
	case DifficultyHard:
		return 3.5
	default:
		return 2.5
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
