package config

import (
	_ "embed"
)

//go:embed defaults/shisen.yaml
var defaultShisenYAML []byte

// DefaultShisenConfig returns the default Shisen-Sho configuration.
func DefaultShisenConfig() ShisenConfig {
	return ShisenConfig{
		Board: ShisenBoard{
			Cols: 0,
			Rows: 0,
		},
		UI: ShisenUI{
			PathFlashTicks: 15,
			HintFlashTicks: 45,
		},
	}
}
