package config

import "testing"

func TestLoadServerDefaults(t *testing.T) {
	cfg, err := LoadServer()
	if err != nil {
		t.Fatalf("LoadServer() error = %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("HTTPAddr = %q, want :8080", cfg.HTTPAddr)
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Fatalf("RedisAddr = %q, want localhost:6379", cfg.RedisAddr)
	}
	if cfg.Account != "player" {
		t.Fatalf("Account = %q, want player", cfg.Account)
	}
	if cfg.InitialBalance != 1000 {
		t.Fatalf("InitialBalance = %d, want 1000", cfg.InitialBalance)
	}
	if cfg.ResetBalanceOnStart {
		t.Fatal("ResetBalanceOnStart should default to false")
	}
}

func TestLoadServerParseTypes(t *testing.T) {
	t.Setenv("REDIS_ADDR", "redis:6380")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("INITIAL_BALANCE", "5000")
	t.Setenv("RESET_BALANCE_ON_START", "true")

	cfg, err := LoadServer()
	if err != nil {
		t.Fatalf("LoadServer() error = %v", err)
	}
	if cfg.RedisAddr != "redis:6380" {
		t.Fatalf("RedisAddr = %q, want redis:6380", cfg.RedisAddr)
	}
	if cfg.RedisDB != 3 {
		t.Fatalf("RedisDB = %d, want 3", cfg.RedisDB)
	}
	if cfg.InitialBalance != 5000 {
		t.Fatalf("InitialBalance = %d, want 5000", cfg.InitialBalance)
	}
	if !cfg.ResetBalanceOnStart {
		t.Fatal("ResetBalanceOnStart = false, want true")
	}
}
