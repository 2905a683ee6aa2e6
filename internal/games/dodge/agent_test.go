package dodge

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
)

var testField = Field{Width: 400, Height: 600}

func newTestAgent() Agent {
	return NewAgent(config.DefaultDodgeConfig().Autoplay)
}

// playerAt returns the default player rectangle centered at x.
func playerAt(x float64) core.Rect {
	return core.NewRect(0, 20, 60, 60).WithCenterX(x)
}

func TestThreatPicksLowestEnemy(t *testing.T) {
	enemies := []Enemy{
		{ID: 1, Rect: core.NewRect(0, 300, 40, 40)},
		{ID: 2, Rect: core.NewRect(0, 100, 40, 40)},
		{ID: 3, Rect: core.NewRect(0, 100, 40, 40)},
		{ID: 4, Rect: core.NewRect(0, 500, 40, 40)},
	}

	threat, ok := Threat(enemies)
	if !ok {
		t.Fatal("Threat found nothing")
	}
	if threat.ID != 2 {
		t.Errorf("Threat id = %d, want 2 (ties go to the lowest id)", threat.ID)
	}

	if _, ok := Threat(nil); ok {
		t.Error("Threat(nil) reported a threat")
	}
}

func TestAgentStep(t *testing.T) {
	a := newTestAgent()

	tests := []struct {
		name  string
		score int
		want  float64
	}{
		{"score 0", 0, 10},
		{"score 50", 50, 15},
		{"score 100", 100, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Step(tt.score, frame); !approx(got, tt.want) {
				t.Errorf("Step(%d) = %v, want %v", tt.score, got, tt.want)
			}
		})
	}

	// Very short ticks still move at least the minimum step
	if got := a.Step(0, frame/10); got != 6 {
		t.Errorf("Step with short tick = %v, want minimum 6", got)
	}
}

func TestAgentDecide(t *testing.T) {
	a := newTestAgent()
	distant := Enemy{ID: 9, Rect: core.NewRect(0, 500, 40, 40), Speed: 2}

	tests := []struct {
		name      string
		playerX   float64
		enemies   []Enemy
		wantX     float64
		wantMoved bool
	}{
		{
			name:      "no enemies",
			playerX:   100,
			wantX:     100,
			wantMoved: false,
		},
		{
			name:      "drifts to center",
			playerX:   100,
			enemies:   []Enemy{distant},
			wantX:     110,
			wantMoved: true,
		},
		{
			name:      "inside deadband",
			playerX:   205,
			enemies:   []Enemy{distant},
			wantX:     205,
			wantMoved: false,
		},
		{
			name:      "recenter does not overshoot",
			playerX:   208,
			enemies:   []Enemy{distant},
			wantX:     200,
			wantMoved: true,
		},
		{
			name:    "threat too far away in time",
			playerX: 200,
			enemies: []Enemy{
				{ID: 1, Rect: core.NewRect(190, 30, 40, 40), Speed: 2},
			},
			wantX:     200,
			wantMoved: false,
		},
		{
			name:    "threat to the right sidesteps left",
			playerX: 200,
			enemies: []Enemy{
				{ID: 1, Rect: core.NewRect(190, 22, 40, 40), Speed: 2},
			},
			wantX:     190,
			wantMoved: true,
		},
		{
			name:    "threat to the left sidesteps right",
			playerX: 200,
			enemies: []Enemy{
				{ID: 1, Rect: core.NewRect(170, 22, 40, 40), Speed: 2},
			},
			wantX:     210,
			wantMoved: true,
		},
		{
			name:    "threat horizontally clear",
			playerX: 200,
			enemies: []Enemy{
				{ID: 1, Rect: core.NewRect(320, 22, 40, 40), Speed: 2},
			},
			wantX:     200,
			wantMoved: false,
		},
		{
			name:    "stationary threat ignored",
			playerX: 100,
			enemies: []Enemy{
				{ID: 1, Rect: core.NewRect(90, 22, 40, 40), Speed: 0},
			},
			wantX:     100,
			wantMoved: false,
		},
		{
			name:    "pinned against the wall",
			playerX: 30,
			enemies: []Enemy{
				{ID: 1, Rect: core.NewRect(20, 22, 40, 40), Speed: 2},
			},
			wantX:     30,
			wantMoved: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, moved := a.Decide(playerAt(tt.playerX), tt.enemies, testField, 0, frame)
			if !approx(x, tt.wantX) {
				t.Errorf("Decide x = %v, want %v", x, tt.wantX)
			}
			if moved != tt.wantMoved {
				t.Errorf("Decide moved = %v, want %v", moved, tt.wantMoved)
			}
		})
	}
}

func TestAgentStaysInField(t *testing.T) {
	a := newTestAgent()
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 2000; i++ {
		px := 30 + rng.Float64()*340
		enemies := make([]Enemy, rng.Intn(4))
		for j := range enemies {
			enemies[j] = Enemy{
				ID:    EnemyID(j + 1),
				Rect:  core.NewRect(rng.Float64()*360, rng.Float64()*120, 40, 40),
				Speed: rng.Float64() * 8,
			}
		}
		score := rng.Intn(500)

		x, _ := a.Decide(playerAt(px), enemies, testField, score, frame)
		if x < 30 || x > 370 {
			t.Fatalf("Decide(px=%v, score=%d) = %v, outside [30, 370]", px, score, x)
		}
	}
}
