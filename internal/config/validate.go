package config

import (
	"fmt"
	"regexp"
)

// Validate checks the configuration for errors
func (c *Config) Validate() error {
	if c.Offsets.Frame < 0 {
		return fmt.Errorf("offsets: frame offset cannot be negative")
	}
	if c.Offsets.Y < 0 {
		return fmt.Errorf("offsets: y offset cannot be negative")
	}

	if c.Classes.Terminal == "" {
		return fmt.Errorf("classes: missing terminal pattern")
	}
	if c.Classes.Emacs == "" {
		return fmt.Errorf("classes: missing emacs pattern")
	}
	if _, err := regexp.Compile("(?i)" + c.Classes.Terminal); err != nil {
		return fmt.Errorf("classes: invalid terminal pattern: %w", err)
	}
	if _, err := regexp.Compile("(?i)" + c.Classes.Emacs); err != nil {
		return fmt.Errorf("classes: invalid emacs pattern: %w", err)
	}

	for i, rule := range c.Rules {
		if rule.Pattern == "" {
			return fmt.Errorf("rule %d: missing pattern", i)
		}
		if _, err := regexp.Compile("(?i)" + rule.Pattern); err != nil {
			return fmt.Errorf("rule %d: invalid pattern: %w", i, err)
		}
		if err := validateGeometry(rule.Geometry); err != nil {
			return fmt.Errorf("rule %d: %w", i, err)
		}
		if rule.PositionSensitive {
			if rule.Alternate == nil {
				return fmt.Errorf("rule %d: positionSensitive requires an alternate geometry", i)
			}
			if err := validateGeometry(*rule.Alternate); err != nil {
				return fmt.Errorf("rule %d: alternate: %w", i, err)
			}
		}
	}

	seen := make(map[int]bool)
	for i, tc := range c.TileCounts {
		if tc.Windows < 1 {
			return fmt.Errorf("tileCounts %d: window count must be positive", i)
		}
		if seen[tc.Windows] {
			return fmt.Errorf("tileCounts %d: duplicate entry for %d windows", i, tc.Windows)
		}
		seen[tc.Windows] = true

		if tc.Columns < 1 || tc.Rows < 1 {
			return fmt.Errorf("tileCounts %d: grid must have at least one column and row", i)
		}
		if tc.Columns*tc.Rows < tc.Windows {
			return fmt.Errorf("tileCounts %d: %dx%d grid cannot hold %d windows",
				i, tc.Columns, tc.Rows, tc.Windows)
		}
	}

	if len(c.Quadrants) != 4 {
		return fmt.Errorf("quadrants: need exactly 4 geometries, got %d", len(c.Quadrants))
	}
	for i, q := range c.Quadrants {
		if err := validateGeometry(q); err != nil {
			return fmt.Errorf("quadrant %d: %w", i, err)
		}
	}

	return nil
}

// validateGeometry checks that every component lies in [0,1]. Overlap of
// x+width past 1 is allowed; overlapping rules are intentional.
func validateGeometry(g Geometry) error {
	for i, v := range g {
		if v < 0 || v > 1 {
			return fmt.Errorf("geometry component %d = %v outside [0,1]", i, v)
		}
	}
	if g[2] == 0 || g[3] == 0 {
		return fmt.Errorf("geometry has zero width or height")
	}
	return nil
}
