package config

import "testing"

func TestLoadGameDefaults(t *testing.T) {
	cfg, err := LoadGame()
	if err != nil {
		t.Fatalf("LoadGame() error = %v", err)
	}
	if cfg.GridSize != 3 {
		t.Fatalf("GridSize = %d, want 3", cfg.GridSize)
	}
	if len(cfg.Symbols) != 5 {
		t.Fatalf("Symbols = %v, want 5 symbols", cfg.Symbols)
	}
	if cfg.RowMultiplier != 5 {
		t.Fatalf("RowMultiplier = %d, want 5", cfg.RowMultiplier)
	}
}

func TestLoadGameParse(t *testing.T) {
	t.Setenv("GRID_SIZE", "4")
	t.Setenv("SYMBOLS", "X,Y,Z")
	t.Setenv("ROW_MULTIPLIER", "10")

	cfg, err := LoadGame()
	if err != nil {
		t.Fatalf("LoadGame() error = %v", err)
	}
	if cfg.GridSize != 4 {
		t.Fatalf("GridSize = %d, want 4", cfg.GridSize)
	}
	if len(cfg.Symbols) != 3 || cfg.Symbols[0] != "X" || cfg.Symbols[2] != "Z" {
		t.Fatalf("Symbols = %v, want [X Y Z]", cfg.Symbols)
	}
	if cfg.RowMultiplier != 10 {
		t.Fatalf("RowMultiplier = %d, want 10", cfg.RowMultiplier)
	}
}
