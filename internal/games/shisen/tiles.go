package shisen

import (
	platformcore "github.com/taotao54321/shisen-tui/internal/core"
	"github.com/taotao54321/shisen-tui/internal/games/shisen/core"
)

// tileFace is the two-character label and color a tile kind is drawn with.
type tileFace struct {
	label string
	color platformcore.Color
}

// tileFaces maps the 34 kinds to mahjong tile faces: three numbered
// suits of nine, four winds and three dragons.
var tileFaces = [core.KindCount]tileFace{
	// Characters (man)
	{"1m", platformcore.ColorRed},
	{"2m", platformcore.ColorRed},
	{"3m", platformcore.ColorRed},
	{"4m", platformcore.ColorRed},
	{"5m", platformcore.ColorRed},
	{"6m", platformcore.ColorRed},
	{"7m", platformcore.ColorRed},
	{"8m", platformcore.ColorRed},
	{"9m", platformcore.ColorRed},
	// Circles (pin)
	{"1p", platformcore.ColorBlue},
	{"2p", platformcore.ColorBlue},
	{"3p", platformcore.ColorBlue},
	{"4p", platformcore.ColorBlue},
	{"5p", platformcore.ColorBlue},
	{"6p", platformcore.ColorBlue},
	{"7p", platformcore.ColorBlue},
	{"8p", platformcore.ColorBlue},
	{"9p", platformcore.ColorBlue},
	// Bamboo (sou)
	{"1s", platformcore.ColorGreen},
	{"2s", platformcore.ColorGreen},
	{"3s", platformcore.ColorGreen},
	{"4s", platformcore.ColorGreen},
	{"5s", platformcore.ColorGreen},
	{"6s", platformcore.ColorGreen},
	{"7s", platformcore.ColorGreen},
	{"8s", platformcore.ColorGreen},
	{"9s", platformcore.ColorGreen},
	// Winds
	{"Ew", platformcore.ColorCyan},
	{"Sw", platformcore.ColorCyan},
	{"Ww", platformcore.ColorCyan},
	{"Nw", platformcore.ColorCyan},
	// Dragons
	{"Wd", platformcore.ColorWhite},
	{"Gd", platformcore.ColorBrightGreen},
	{"Rd", platformcore.ColorBrightRed},
}

// faceFor returns the face for a tile kind.
func faceFor(k core.Kind) tileFace {
	if k < 0 || k >= core.KindCount {
		return tileFace{"??", platformcore.ColorGray}
	}
	return tileFaces[k]
}
