package dodge

import (
	"testing"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

func newTestStore() *EntityStore {
	return NewEntityStore(Field{Width: 400, Height: 600}, 60, 60, 20)
}

func TestNewEntityStoreCentersPlayer(t *testing.T) {
	s := newTestStore()
	p := s.Player()

	if p.X != 170 || p.Y != 20 || p.W != 60 || p.H != 60 {
		t.Errorf("Player = %+v, want {170 20 60 60}", p)
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}

func TestSetPlayerCenterXClamps(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"inside", 120, 120},
		{"left edge", 30, 30},
		{"right edge", 370, 370},
		{"past left", -50, 30},
		{"past right", 1000, 370},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore()
			got := s.SetPlayerCenterX(tt.x)
			if got != tt.want {
				t.Errorf("SetPlayerCenterX(%v) = %v, want %v", tt.x, got, tt.want)
			}
			if s.Player().CenterX() != tt.want {
				t.Errorf("Player().CenterX() = %v, want %v", s.Player().CenterX(), tt.want)
			}
		})
	}
}

func TestSetFieldReclampsPlayer(t *testing.T) {
	s := newTestStore()
	s.SetPlayerCenterX(370)
	s.SetField(Field{Width: 200, Height: 300})

	if got := s.Player().CenterX(); got != 170 {
		t.Errorf("CenterX after shrink = %v, want 170", got)
	}
}

func TestEnemyIDsAreNeverReused(t *testing.T) {
	s := newTestStore()
	a := s.Add(Enemy{Rect: core.NewRect(0, 600, 40, 40), Speed: 1})
	b := s.Add(Enemy{Rect: core.NewRect(50, 600, 40, 40), Speed: 1})
	if a == b {
		t.Fatalf("Add returned duplicate id %d", a)
	}

	if !s.Remove(a) {
		t.Fatal("Remove(a) = false, want true")
	}
	if s.Remove(a) {
		t.Error("second Remove(a) = true, want false")
	}

	s.Clear()
	c := s.Add(Enemy{ID: a, Rect: core.NewRect(0, 600, 40, 40), Speed: 1})
	if c == a || c == b {
		t.Errorf("Add after Clear reused id %d", c)
	}
	if _, ok := s.Get(a); ok {
		t.Error("Get(a) found a removed enemy")
	}
}

func TestMoveEnemies(t *testing.T) {
	s := newTestStore()
	slow := s.Add(Enemy{Rect: core.NewRect(0, 600, 40, 40), Speed: 2})
	fast := s.Add(Enemy{Rect: core.NewRect(100, 600, 40, 40), Speed: 5})

	for i := 0; i < 3; i++ {
		s.MoveEnemies()
	}

	if e, _ := s.Get(slow); e.Rect.Y != 594 {
		t.Errorf("slow.Y = %v, want 594", e.Rect.Y)
	}
	if e, _ := s.Get(fast); e.Rect.Y != 585 {
		t.Errorf("fast.Y = %v, want 585", e.Rect.Y)
	}
}

func TestEnemiesOrderedByID(t *testing.T) {
	s := newTestStore()
	for i := 0; i < 20; i++ {
		s.Add(Enemy{Rect: core.NewRect(float64(i), 600, 40, 40), Speed: 1})
	}

	enemies := s.Enemies()
	if len(enemies) != 20 {
		t.Fatalf("len(Enemies()) = %d, want 20", len(enemies))
	}
	for i := 1; i < len(enemies); i++ {
		if enemies[i-1].ID >= enemies[i].ID {
			t.Fatalf("enemies not ordered by id at %d: %d >= %d", i, enemies[i-1].ID, enemies[i].ID)
		}
	}

	// The copy is detached from the store
	enemies[0].Rect.Y = -1000
	if e, _ := s.Get(enemies[0].ID); e.Rect.Y != 600 {
		t.Errorf("store changed through Enemies() copy: Y = %v", e.Rect.Y)
	}
}

func TestEnemyGone(t *testing.T) {
	tests := []struct {
		y    float64
		want bool
	}{
		{0, false},
		{-59, false},
		{-60, false},
		{-60.5, true},
		{-100, true},
	}

	for _, tt := range tests {
		e := Enemy{Rect: core.NewRect(0, tt.y, 40, 40)}
		if got := e.Gone(20); got != tt.want {
			t.Errorf("Gone(y=%v) = %v, want %v", tt.y, got, tt.want)
		}
	}
}
