package config

// Config is the root configuration structure
type Config struct {
	Offsets    OffsetConfig      `yaml:"offsets" json:"offsets"`
	Classes    ClassConfig       `yaml:"classes" json:"classes"`
	Rules      []RuleConfig      `yaml:"rules" json:"rules"`
	TileCounts []TileCountConfig `yaml:"tileCounts" json:"tileCounts"`
	Quadrants  []Geometry        `yaml:"quadrants" json:"quadrants"`
}

// OffsetConfig carries the two pixel reservation constants: Frame is the
// border kept on every screen edge, Y the strip kept for the status bar.
type OffsetConfig struct {
	Frame int `yaml:"frame" json:"frame"`
	Y     int `yaml:"y" json:"y"`
}

// ClassConfig names the window classes with dedicated layout behavior.
// Both are regex patterns searched case-insensitively.
type ClassConfig struct {
	Terminal string `yaml:"terminal" json:"terminal"`
	Emacs    string `yaml:"emacs" json:"emacs"`
}

// Geometry is a unit rectangle written as [x, y, width, height].
type Geometry [4]float64

// RuleConfig is one entry of the ordered placement rule table.
type RuleConfig struct {
	Pattern           string    `yaml:"pattern" json:"pattern"`
	Geometry          Geometry  `yaml:"geometry" json:"geometry"`
	PositionSensitive bool      `yaml:"positionSensitive,omitempty" json:"positionSensitive,omitempty"`
	Alternate         *Geometry `yaml:"alternate,omitempty" json:"alternate,omitempty"`
}

// TileCountConfig maps one visible-window count to its grid shape.
type TileCountConfig struct {
	Windows int `yaml:"windows" json:"windows"`
	Columns int `yaml:"columns" json:"columns"`
	Rows    int `yaml:"rows" json:"rows"`
}
