package rules

import (
	"fmt"
	"regexp"

	"github.com/yourusername/placer-cli/internal/geometry"
	"github.com/yourusername/placer-cli/internal/logging"
)

// Rule maps an app-class pattern to a unit geometry. Patterns are
// searched case-insensitively, not anchored: "term" matches
// "XTerm" and "gnome-terminal" alike.
//
// PositionSensitive rules flip to Alternate when the window currently
// sits past the left quarter of the usable screen. This mirrors the
// window to the opposite side on every re-layout, driven purely by
// current geometry rather than a persisted toggle.
type Rule struct {
	Pattern           *regexp.Regexp
	Geometry          geometry.UnitRect
	PositionSensitive bool
	Alternate         geometry.UnitRect
}

// Compile builds a Rule from a raw pattern string.
func Compile(pattern string, geom geometry.UnitRect) (Rule, error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return Rule{}, fmt.Errorf("invalid rule pattern %q: %w", pattern, err)
	}
	return Rule{Pattern: re, Geometry: geom}, nil
}

// Matcher evaluates an ordered rule table. First match wins.
type Matcher struct {
	rules []Rule
}

// NewMatcher creates a matcher over the given ordered rules.
func NewMatcher(rules []Rule) *Matcher {
	return &Matcher{rules: rules}
}

// Match returns the target unit geometry for an app class, or false when
// no rule matches (the window is then left unplaced).
func (m *Matcher) Match(appClass string, current geometry.Rect, usable geometry.Screen) (geometry.UnitRect, bool) {
	for _, r := range m.rules {
		if !r.Pattern.MatchString(appClass) {
			continue
		}
		if r.PositionSensitive && current.X > usable.Width/4 {
			return r.Alternate, true
		}
		return r.Geometry, true
	}

	logging.Debug().Str("appClass", appClass).Msg("no placement rule matched")
	return geometry.UnitRect{}, false
}
