package game

import (
	mathrand "math/rand"
	"reflect"
	"testing"
)

// fixedSource replays a scripted sequence of draws.
type fixedSource struct {
	seq []int
	pos int
}

func (f *fixedSource) Intn(n int) int {
	v := f.seq[f.pos%len(f.seq)] % n
	f.pos++
	return v
}

func testConfig() Config {
	return Config{
		GridSize:      3,
		Symbols:       []string{"A", "S", "D", "Q", "E"},
		RowMultiplier: 5,
	}
}

func TestGenerateAllRowsMatch(t *testing.T) {
	gen := NewGenerator(testConfig(), &fixedSource{seq: []int{0}})

	grid, payout := gen.Generate(10)
	if payout != 150 {
		t.Fatalf("payout = %d, want 150 (3 rows x 5 x 10)", payout)
	}
	want := Grid{{"A", "A", "A"}, {"A", "A", "A"}, {"A", "A", "A"}}
	if !reflect.DeepEqual(grid, want) {
		t.Fatalf("grid = %v, want %v", grid, want)
	}
}

func TestGenerateNoRowMatches(t *testing.T) {
	// 0,1,2 repeating: every row is A,S,D.
	gen := NewGenerator(testConfig(), &fixedSource{seq: []int{0, 1, 2}})

	grid, payout := gen.Generate(10)
	if payout != 0 {
		t.Fatalf("payout = %d, want 0 for grid %v", payout, grid)
	}
}

func TestGenerateSingleMatchingRow(t *testing.T) {
	// First row Q,Q,Q, remaining rows mixed.
	gen := NewGenerator(testConfig(), &fixedSource{seq: []int{3, 3, 3, 0, 1, 2, 0, 1, 2}})

	_, payout := gen.Generate(20)
	if payout != 100 {
		t.Fatalf("payout = %d, want 100 (1 row x 5 x 20)", payout)
	}
}

func TestPayoutRowsScoreIndependently(t *testing.T) {
	gen := NewGenerator(testConfig(), nil)
	grid := Grid{
		{"A", "A", "A"},
		{"S", "S", "S"},
		{"A", "S", "D"},
	}
	if got := gen.payout(grid, 10); got != 100 {
		t.Fatalf("payout = %d, want 100 (two matching rows pay double)", got)
	}
}

func TestPayoutIgnoresColumns(t *testing.T) {
	gen := NewGenerator(testConfig(), nil)
	grid := Grid{
		{"A", "S", "D"},
		{"A", "Q", "E"},
		{"A", "D", "S"},
	}
	if got := gen.payout(grid, 10); got != 0 {
		t.Fatalf("payout = %d, want 0 (column matches do not score)", got)
	}
}

func TestGenerateRespectsGridSize(t *testing.T) {
	cfg := testConfig()
	cfg.GridSize = 4
	gen := NewGenerator(cfg, mathrand.New(mathrand.NewSource(1)))

	grid, _ := gen.Generate(10)
	if len(grid) != 4 {
		t.Fatalf("rows = %d, want 4", len(grid))
	}
	for i, row := range grid {
		if len(row) != 4 {
			t.Fatalf("row %d has %d cells, want 4", i, len(row))
		}
		for _, sym := range row {
			found := false
			for _, s := range cfg.Symbols {
				if sym == s {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("symbol %q not in alphabet", sym)
			}
		}
	}
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	a := NewGenerator(testConfig(), mathrand.New(mathrand.NewSource(42)))
	b := NewGenerator(testConfig(), mathrand.New(mathrand.NewSource(42)))

	gridA, payA := a.Generate(10)
	gridB, payB := b.Generate(10)
	if !reflect.DeepEqual(gridA, gridB) || payA != payB {
		t.Fatalf("same seed diverged: %v/%d vs %v/%d", gridA, payA, gridB, payB)
	}
}
