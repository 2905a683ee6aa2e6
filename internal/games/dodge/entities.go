package dodge

import (
	"sort"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// Field is the bounded play area, measured in field units.
type Field struct {
	Width  float64
	Height float64
}

// CenterX returns the horizontal middle of the field.
func (f Field) CenterX() float64 {
	return f.Width / 2
}

// EnemyID identifies an enemy for the lifetime of a store. IDs are never reused.
type EnemyID uint64

// Enemy is a falling obstacle.
type Enemy struct {
	ID    EnemyID
	Rect  core.Rect
	Speed float64    // Field units per tick
	Color core.Color // Cosmetic only
}

// Gone reports whether the enemy has fallen far enough below the field to be
// removed: its bottom edge is lower than -(height + margin).
func (e Enemy) Gone(margin float64) bool {
	return e.Rect.Y < -e.Rect.H-margin
}

// EntityStore holds the player and the live enemies of a session.
// Enemies live in an id-keyed arena so their identity does not depend on
// slice positions or on anything the renderer does with them.
type EntityStore struct {
	field   Field
	player  core.Rect
	enemies map[EnemyID]*Enemy
	nextID  EnemyID
}

// NewEntityStore creates a store with a centered player of the given size,
// resting playerY units above the field bottom.
func NewEntityStore(field Field, playerW, playerH, playerY float64) *EntityStore {
	s := &EntityStore{
		field:   field,
		player:  core.NewRect(0, playerY, playerW, playerH),
		enemies: make(map[EnemyID]*Enemy),
	}
	s.ResetPlayer()
	return s
}

// Field returns the field the store clamps the player to.
func (s *EntityStore) Field() Field {
	return s.field
}

// SetField changes the field dimensions and re-clamps the player.
func (s *EntityStore) SetField(field Field) {
	s.field = field
	s.SetPlayerCenterX(s.player.CenterX())
}

// Player returns the player's rectangle.
func (s *EntityStore) Player() core.Rect {
	return s.player
}

// SetPlayerCenterX moves the player horizontally, keeping it inside the field.
// Returns the center actually applied.
func (s *EntityStore) SetPlayerCenterX(x float64) float64 {
	half := s.player.W / 2
	x = core.ClampF(x, half, s.field.Width-half)
	s.player = s.player.WithCenterX(x)
	return x
}

// ResetPlayer puts the player back in the middle of the field.
func (s *EntityStore) ResetPlayer() {
	s.SetPlayerCenterX(s.field.CenterX())
}

// Add stores a new enemy and returns its assigned ID.
// Any ID already set on e is ignored.
func (s *EntityStore) Add(e Enemy) EnemyID {
	s.nextID++
	e.ID = s.nextID
	s.enemies[e.ID] = &e
	return e.ID
}

// Remove deletes an enemy. Returns false if the ID is not live.
func (s *EntityStore) Remove(id EnemyID) bool {
	if _, ok := s.enemies[id]; !ok {
		return false
	}
	delete(s.enemies, id)
	return true
}

// Get returns a copy of a live enemy.
func (s *EntityStore) Get(id EnemyID) (Enemy, bool) {
	e, ok := s.enemies[id]
	if !ok {
		return Enemy{}, false
	}
	return *e, true
}

// MoveEnemies lowers every enemy by its own speed.
func (s *EntityStore) MoveEnemies() {
	for _, e := range s.enemies {
		e.Rect.Y -= e.Speed
	}
}

// Clear removes all enemies. IDs keep counting up.
func (s *EntityStore) Clear() {
	clear(s.enemies)
}

// Len returns the number of live enemies.
func (s *EntityStore) Len() int {
	return len(s.enemies)
}

// Enemies returns a copy of the live enemies ordered by ID.
// Callers may remove enemies while ranging over the result.
func (s *EntityStore) Enemies() []Enemy {
	out := make([]Enemy, 0, len(s.enemies))
	for _, e := range s.enemies {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}
