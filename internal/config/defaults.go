package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/dodge.yaml
var defaultDodgeYAML []byte

// DefaultDodgeConfig returns the default Dodge configuration.
func DefaultDodgeConfig() DodgeConfig {
	return DodgeConfig{
		TickRate: 60,
		Field: DodgeField{
			Width:  400,
			Height: 600,
		},
		Player: DodgePlayer{
			Width:  60,
			Height: 60,
			Y:      20,
			Nudge:  20,
		},
		Enemies: DodgeEnemies{
			MinWidth:        40,
			MaxWidth:        80,
			SpawnOffset:     10,
			DespawnMargin:   20,
			InitialSpeedMin: 2.5,
			InitialSpeedMax: 4.0,
		},
		Spawn: DodgeSpawn{
			InitialDelay: 200 * time.Millisecond,
			InitialMin:   1,
			InitialMax:   2,
			Interval:     1200 * time.Millisecond,
		},
		Difficulty: DifficultyConfig{
			BaseSpeed:    2.5,
			ScorePerStep: 10,
			MaxBonus:     6,
			Spread:       2,
		},
		Autoplay: AutoplayConfig{
			Default:        false,
			DangerMargin:   15,
			DangerHorizon:  2.5,
			MinStep:        6,
			BaseStep:       10,
			StepPerScore:   0.1,
			CenterDeadband: 6,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "dodge":
		return defaultDodgeYAML
	default:
		return nil
	}
}
