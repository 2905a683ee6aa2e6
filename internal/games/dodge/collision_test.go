package dodge

import (
	"testing"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

func TestOverlaps(t *testing.T) {
	player := core.NewRect(180, 20, 60, 60)

	tests := []struct {
		name  string
		enemy core.Rect
		want  bool
	}{
		{"inside", core.NewRect(190, 30, 40, 40), true},
		{"partial", core.NewRect(230, 70, 40, 40), true},
		{"touching right", core.NewRect(240, 30, 40, 40), false},
		{"touching top", core.NewRect(190, 80, 40, 40), false},
		{"touching left", core.NewRect(140, 30, 40, 40), false},
		{"touching corner", core.NewRect(240, 80, 40, 40), false},
		{"far above", core.NewRect(190, 500, 40, 40), false},
		{"below field", core.NewRect(190, -100, 40, 40), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(player, tt.enemy); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			if got := Overlaps(tt.enemy, player); got != tt.want {
				t.Errorf("Overlaps reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFirstHit(t *testing.T) {
	player := core.NewRect(180, 20, 60, 60)
	enemies := []Enemy{
		{ID: 1, Rect: core.NewRect(0, 30, 40, 40)},
		{ID: 2, Rect: core.NewRect(200, 40, 40, 40)},
		{ID: 3, Rect: core.NewRect(190, 30, 40, 40)},
	}

	hit, ok := FirstHit(player, enemies)
	if !ok {
		t.Fatal("FirstHit found nothing")
	}
	if hit.ID != 2 {
		t.Errorf("FirstHit id = %d, want 2", hit.ID)
	}

	if _, ok := FirstHit(player, enemies[:1]); ok {
		t.Error("FirstHit reported a hit for a distant enemy")
	}
	if _, ok := FirstHit(player, nil); ok {
		t.Error("FirstHit reported a hit with no enemies")
	}
}
