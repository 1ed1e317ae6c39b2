package layout

import (
	"regexp"

	"github.com/yourusername/placer-cli/internal/geometry"
	"github.com/yourusername/placer-cli/internal/logging"
	"github.com/yourusername/placer-cli/internal/rules"
	"github.com/yourusername/placer-cli/internal/server"
)

// Engine computes the programmed (rule-table driven) layout.
//
// Terminal windows get special handling: one terminal follows its rule
// like any other class, but two or more tile onto the fixed quadrants
// instead of stacking on the single rule-declared slot.
type Engine struct {
	Matcher   *rules.Matcher
	Quadrants QuadrantTable
	Terminal  *regexp.Regexp // class pattern for terminal windows
	Conv      geometry.Converter
}

// LayoutAll computes placements for every visible window in snapshot
// order. Windows with no matching rule, or whose geometry the backend
// could not read, are left unplaced.
func (e *Engine) LayoutAll(windows []server.WindowInfo, display geometry.Screen) []Placement {
	usable := e.Conv.Usable(display)

	nTerm := 0
	for _, w := range windows {
		if w.Visible && e.Terminal.MatchString(w.AppClass) {
			nTerm++
		}
	}

	placements := make([]Placement, 0, len(windows))
	quadrant := 0

	for _, w := range windows {
		if !w.Visible {
			continue
		}

		if e.Terminal.MatchString(w.AppClass) && nTerm >= 2 {
			geom := e.Quadrants.Quadrant(quadrant)
			quadrant++
			placements = append(placements, Placement{
				WindowID: w.ID,
				Frame:    e.Conv.ToPixels(geom, usable),
			})
			continue
		}

		if !w.HasFrame {
			logging.Debug().Uint32("window", w.ID).Msg("no geometry for window, skipping")
			continue
		}

		geom, ok := e.Matcher.Match(w.AppClass, w.Frame, usable)
		if !ok {
			continue
		}

		placements = append(placements, Placement{
			WindowID: w.ID,
			Frame:    e.Conv.ToPixels(geom, usable),
		})
	}

	return placements
}
