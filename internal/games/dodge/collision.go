package dodge

import "github.com/vovakirdan/tui-dodge/internal/core"

// Overlaps reports whether the player and an enemy collide.
// Edges that only touch do not count.
func Overlaps(player, enemy core.Rect) bool {
	return player.Intersects(enemy)
}

// FirstHit returns the first enemy overlapping the player.
func FirstHit(player core.Rect, enemies []Enemy) (Enemy, bool) {
	for _, e := range enemies {
		if Overlaps(player, e.Rect) {
			return e, true
		}
	}
	return Enemy{}, false
}
