package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadShisenCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shisen.yaml")
	data := []byte("board:\n  cols: 12\n  rows: 6\nui:\n  path_flash_ticks: 10\n  hint_flash_ticks: 20\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadShisen(path)
	if err != nil {
		t.Fatalf("LoadShisen: %v", err)
	}
	if cfg.Board.Cols != 12 || cfg.Board.Rows != 6 {
		t.Errorf("board = %dx%d, want 12x6", cfg.Board.Cols, cfg.Board.Rows)
	}
	if cfg.UI.PathFlashTicks != 10 || cfg.UI.HintFlashTicks != 20 {
		t.Errorf("ui = %+v, want 10/20", cfg.UI)
	}
}

func TestLoadShisenMissingCustomPath(t *testing.T) {
	if _, err := LoadShisen(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("missing custom path should be an error")
	}
}

func TestLoadShisenRejectsOddBoard(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shisen.yaml")
	if err := os.WriteFile(path, []byte("board:\n  cols: 5\n  rows: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadShisen(path); err == nil {
		t.Error("both-odd board size should be rejected")
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := LoadShisen("")
	if err != nil {
		t.Fatalf("LoadShisen: %v", err)
	}

	// The embedded YAML and the hardcoded fallback must agree, or the
	// two default paths would behave differently.
	want := DefaultShisenConfig()
	if cfg.Board != want.Board || cfg.UI != want.UI {
		t.Errorf("embedded default %+v differs from hardcoded %+v", cfg, want)
	}
}

func TestDefaultBoardKeepsVariantSize(t *testing.T) {
	// The default config must not carry a board size: a concrete size
	// here would override every variant's own dimensions, collapsing
	// shisen_mini and shisen_large into one board.
	cfg := DefaultShisenConfig()
	if cfg.Board.Cols != 0 || cfg.Board.Rows != 0 {
		t.Errorf("default board = %dx%d, want 0x0", cfg.Board.Cols, cfg.Board.Rows)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cols    int
		rows    int
		wantErr bool
	}{
		{"classic", 8, 7, false},
		{"one even dimension", 7, 4, false},
		{"zero area", 0, 0, false},
		{"both odd", 5, 7, true},
		{"negative", -2, 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := ShisenConfig{Board: ShisenBoard{Cols: tt.cols, Rows: tt.rows}}
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
