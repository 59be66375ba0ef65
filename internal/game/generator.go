package game

import (
	"crypto/rand"
	"encoding/binary"
	mathrand "math/rand"
	"sync"
)

// Source yields uniform random ints in [0, n). Production wiring shares
// one seeded source across all plays; tests substitute a fixed one.
type Source interface {
	Intn(n int) int
}

// Config is the paytable: the grid dimension, the symbol alphabet cells
// draw from, and the per-row payout multiplier.
type Config struct {
	GridSize      int
	Symbols       []string
	RowMultiplier int64
}

// Grid is one play's outcome, rows-first.
type Grid [][]string

// Generator draws wager outcomes from the configured alphabet.
type Generator struct {
	cfg Config

	mu  sync.Mutex
	src Source
}

func NewGenerator(cfg Config, src Source) *Generator {
	return &Generator{cfg: cfg, src: src}
}

// NewSeededSource returns a shared pseudo-random source seeded once
// from the OS entropy pool. Reseeding per play is deliberately avoided.
func NewSeededSource() Source {
	var seed int64
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err == nil {
		seed = int64(binary.LittleEndian.Uint64(buf[:]))
	}
	return mathrand.New(mathrand.NewSource(seed))
}

// Generate draws a full grid and returns it with the payout for bet.
func (g *Generator) Generate(bet int64) (Grid, int64) {
	n := g.cfg.GridSize
	grid := make(Grid, n)

	g.mu.Lock()
	for r := 0; r < n; r++ {
		row := make([]string, n)
		for c := 0; c < n; c++ {
			row[c] = g.cfg.Symbols[g.src.Intn(len(g.cfg.Symbols))]
		}
		grid[r] = row
	}
	g.mu.Unlock()

	return grid, g.payout(grid, bet)
}

// payout sums the row multiplier times bet over every row whose
// symbols all match. Rows score independently; columns and diagonals
// do not score.
func (g *Generator) payout(grid Grid, bet int64) int64 {
	var total int64
	for _, row := range grid {
		matched := true
		for _, sym := range row[1:] {
			if sym != row[0] {
				matched = false
				break
			}
		}
		if matched {
			total += g.cfg.RowMultiplier * bet
		}
	}
	return total
}
