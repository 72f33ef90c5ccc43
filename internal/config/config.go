// Package config provides YAML-based game configuration loading for the
// Shisen-Sho platform.
package config

import "fmt"

// ShisenConfig contains all configuration for the Shisen-Sho game.
type ShisenConfig struct {
	Board ShisenBoard `yaml:"board"`
	UI    ShisenUI    `yaml:"ui"`
}

// ShisenBoard defines the board size in interior cells. A zero size
// keeps each variant's own dimensions. When set, at least one dimension
// must be even so every tile can be paired.
type ShisenBoard struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

// ShisenUI defines display timing parameters, in simulation ticks.
type ShisenUI struct {
	PathFlashTicks int `yaml:"path_flash_ticks"`
	HintFlashTicks int `yaml:"hint_flash_ticks"`
}

// Validate checks the configuration for values the board engine would
// reject.
func (c ShisenConfig) Validate() error {
	if c.Board.Cols < 0 || c.Board.Rows < 0 {
		return fmt.Errorf("config: board size %dx%d must not be negative", c.Board.Cols, c.Board.Rows)
	}
	if c.Board.Cols%2 != 0 && c.Board.Rows%2 != 0 {
		return fmt.Errorf("config: board size %dx%d needs at least one even dimension", c.Board.Cols, c.Board.Rows)
	}
	return nil
}
