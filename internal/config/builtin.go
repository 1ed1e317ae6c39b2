package config

import "math"

// DefaultConfig returns the built-in configuration used when no config
// file exists. Rule order matters: first match wins.
func DefaultConfig() *Config {
	return &Config{
		Offsets: OffsetConfig{Frame: 2, Y: 24},
		Classes: ClassConfig{
			Terminal: "term|rxvt|konsole|kitty|alacritty",
			Emacs:    "emacs",
		},
		Rules: []RuleConfig{
			{Pattern: "term|rxvt|konsole|kitty|alacritty", Geometry: Geometry{0.5, 0.3, 0.5, 0.7}},
			{Pattern: "emacs", Geometry: Geometry{0, 0, 0.5, 1}},
			{
				Pattern:           "libreoffice|soffice",
				Geometry:          Geometry{0.5, 0, 0.5, 1},
				PositionSensitive: true,
				Alternate:         &Geometry{0, 0, 0.5, 1},
			},
			{Pattern: "firefox|chromium|chrome", Geometry: Geometry{0.25, 0, 0.75, 1}},
			{Pattern: "thunderbird|evolution", Geometry: Geometry{0, 0, 0.75, 1}},
			{Pattern: "gimp", Geometry: Geometry{0, 0, 1, 1}},
			{Pattern: "mpv|vlc", Geometry: Geometry{0.25, 0.25, 0.5, 0.5}},
		},
		TileCounts: defaultTileCounts(),
		Quadrants: []Geometry{
			{0.5, 0.5, 0.5, 0.5}, // south-east
			{0.5, 0, 0.5, 0.5},   // north-east
			{0, 0.5, 0.5, 0.5},   // south-west
			{0, 0, 0.5, 0.5},     // north-west
		},
	}
}

// defaultTileCounts covers 1..30 windows with a square-ish grid, one
// column wider than tall when the count needs it.
func defaultTileCounts() []TileCountConfig {
	counts := make([]TileCountConfig, 0, 30)
	for n := 1; n <= 30; n++ {
		cols := int(math.Ceil(math.Sqrt(float64(n))))
		rows := int(math.Ceil(float64(n) / float64(cols)))
		counts = append(counts, TileCountConfig{Windows: n, Columns: cols, Rows: rows})
	}
	return counts
}
