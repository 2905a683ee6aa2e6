package dodge

import (
	"time"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// EnemyView is the read-only description of an enemy handed to renderers.
type EnemyView struct {
	ID    EnemyID
	Rect  core.Rect
	Speed float64
	Color core.Color
}

// Snapshot captures everything a renderer needs after a tick. It shares no
// memory with the session.
type Snapshot struct {
	Status   Status
	Score    int
	Autoplay bool
	Tick     uint64        // Movement ticks run this session
	Elapsed  time.Duration // Simulated running time, pauses excluded
	Field    Field
	Player   core.Rect
	Enemies  []EnemyView
}

// Snapshot returns the current state for rendering and tests.
func (s *Session) Snapshot() Snapshot {
	enemies := s.store.Enemies()
	views := make([]EnemyView, len(enemies))
	for i, e := range enemies {
		views[i] = EnemyView{
			ID:    e.ID,
			Rect:  e.Rect,
			Speed: e.Speed,
			Color: e.Color,
		}
	}

	return Snapshot{
		Status:   s.status,
		Score:    s.score,
		Autoplay: s.autoplay,
		Tick:     s.ticks,
		Elapsed:  s.elapsed(),
		Field:    s.store.Field(),
		Player:   s.store.Player(),
		Enemies:  views,
	}
}
