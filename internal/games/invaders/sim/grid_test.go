package sim

import (
	"slices"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

func TestGenerateLayoutDefaults(t *testing.T) {
	layout := GenerateLayout(config.DefaultInvadersConfig(), testW, testH)

	if len(layout.Aliens) != 9 {
		t.Errorf("expected 9 aliens, got %d", len(layout.Aliens))
	}
	if len(layout.Rocks) != 111 {
		t.Errorf("expected 111 rocks, got %d", len(layout.Rocks))
	}

	// Widest row first, at the top
	first := layout.Aliens[0]
	if first.X != 80 || first.Y != 450 {
		t.Errorf("first alien at (%v, %v), want (80, 450)", first.X, first.Y)
	}
	last := layout.Aliens[len(layout.Aliens)-1]
	if last.X != 280 || last.Y != 290 {
		t.Errorf("last alien at (%v, %v), want (280, 290)", last.X, last.Y)
	}
}

func TestAlienRows(t *testing.T) {
	tests := []struct {
		name    string
		columns []float64
		rows    int
		want    []int
	}{
		{"default", []float64{80, 180, 280, 380, 480}, 3, []int{5, 3, 1}},
		{"even columns", []float64{1, 2, 3, 4}, 3, []int{4, 2, 0}},
		{"exhausted early", []float64{1, 2}, 3, []int{2, 0, 0}},
		{"single column", []float64{1}, 2, []int{1, 0}},
		{"no columns", nil, 2, []int{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := AlienRows(tt.columns, tt.rows, 1)
			if len(rows) != tt.rows {
				t.Fatalf("expected %d rows, got %d", tt.rows, len(rows))
			}
			for i, want := range tt.want {
				if len(rows[i]) != want {
					t.Errorf("row %d: expected %d aliens, got %d", i, want, len(rows[i]))
				}
			}
		})
	}
}

func TestAlienRowsTrimsBothEnds(t *testing.T) {
	rows := AlienRows([]float64{80, 180, 280, 380, 480}, 3, 1)
	want := [][]float64{
		{80, 180, 280, 380, 480},
		{180, 280, 380},
		{280},
	}
	for i := range want {
		if !slices.Equal(rows[i], want[i]) {
			t.Errorf("row %d = %v, want %v", i, rows[i], want[i])
		}
	}
}

func TestRockRows(t *testing.T) {
	xs := make([]float64, 13)
	for i := range xs {
		xs[i] = float64(i)
	}
	rows := RockRows(xs, 5, []int{1, 3, 5}, 2, 4)

	wantLens := []int{13, 9, 9, 5, 5}
	for i, want := range wantLens {
		if len(rows[i]) != want {
			t.Errorf("row %d: expected %d rocks, got %d", i, want, len(rows[i]))
		}
	}
	// Trim removes from both ends
	if rows[1][0] != 2 || rows[1][len(rows[1])-1] != 10 {
		t.Errorf("row 1 = %v, want 2..10", rows[1])
	}
}

func TestRockRowsSkipsTrimBelowMinimum(t *testing.T) {
	rows := RockRows([]float64{1, 2, 3}, 5, []int{1, 3, 5}, 2, 4)
	for i, row := range rows {
		if len(row) != 3 {
			t.Errorf("row %d: expected 3 rocks, got %d", i, len(row))
		}
	}
}

func TestRockRowsDefaultTotals(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	xs := cfg.Rocks.RockXPositions()
	if len(xs) != 27 {
		t.Fatalf("expected 27 rock x positions, got %d", len(xs))
	}

	rows := RockRows(xs, len(cfg.Rocks.Levels), cfg.Rocks.TrimRows, cfg.Rocks.Trim, cfg.Rocks.TrimMin)
	wantLens := []int{27, 23, 23, 19, 19}
	for i, want := range wantLens {
		if len(rows[i]) != want {
			t.Errorf("row %d: expected %d rocks, got %d", i, want, len(rows[i]))
		}
	}
}
