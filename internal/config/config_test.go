package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadArena_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadArena(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadArena: %v", err)
	}
	if cfg != DefaultArena() {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

func TestLoadArena_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arena.yaml")
	data := []byte("log_level: debug\nbattles: 8\nmax_rounds: 20\nrecord: true\ndatabase:\n  host: db\n  port: 6432\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadArena(path)
	if err != nil {
		t.Fatalf("LoadArena: %v", err)
	}
	if cfg.LogLevel != "debug" || cfg.Battles != 8 || cfg.MaxRounds != 20 || !cfg.Record {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Parallel != 4 || cfg.EquipmentCap != 3 {
		t.Errorf("defaults lost: %+v", cfg)
	}
	want := "postgres://tussle:tussle@db:6432/tussle?sslmode=disable"
	if got := cfg.Database.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}

func TestLoadArena_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad yaml", "battles: [1"},
		{"zero battles", "battles: 0"},
		{"zero parallel", "parallel: 0"},
		{"zero rounds", "max_rounds: 0"},
		{"negative cap", "equipment_cap: -1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "arena.yaml")
			if err := os.WriteFile(path, []byte(tt.data), 0o600); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadArena(path); err == nil {
				t.Error("expected error")
			}
		})
	}
}
