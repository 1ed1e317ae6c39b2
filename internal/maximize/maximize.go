package maximize

import (
	"github.com/yourusername/placer-cli/internal/geometry"
	"github.com/yourusername/placer-cli/internal/logging"
	"github.com/yourusername/placer-cli/internal/rules"
	"github.com/yourusername/placer-cli/internal/server"
)

// Tolerance absorbs backend rounding when deciding whether a window
// already fills the screen.
const Tolerance = 20

// Action says which way the toggle went.
type Action int

const (
	ActionMaximize Action = iota
	ActionRestore
)

func (a Action) String() string {
	if a == ActionRestore {
		return "restore"
	}
	return "maximize"
}

// Toggler flips a window between maximized and its rule-derived slot.
//
// Restore deliberately re-runs the rule table instead of remembering the
// pre-maximize frame: toggling twice lands on the rule geometry, not the
// exact prior size, and a window with no matching rule stays maximized.
type Toggler struct {
	Matcher *rules.Matcher
	Conv    geometry.Converter
}

// IsMaximized reports whether the window already fills the usable screen
// vertically, and also horizontally when horizontal is set.
func (t *Toggler) IsMaximized(w server.WindowInfo, usable geometry.Screen, horizontal bool) bool {
	if !w.HasFrame {
		return false
	}
	if abs(w.Frame.Y-t.Conv.YOffset) >= Tolerance {
		return false
	}
	if abs(w.Frame.Height-usable.Height) >= Tolerance {
		return false
	}
	if horizontal {
		if w.Frame.X != 0 {
			return false
		}
		if abs(w.Frame.Width-usable.Width) >= Tolerance {
			return false
		}
	}
	return true
}

// Toggle computes the target frame for a window. Returns the action
// taken and false when there is nothing to do (restore with no matching
// rule, or a window without readable geometry).
func (t *Toggler) Toggle(w server.WindowInfo, usable geometry.Screen, horizontal bool) (geometry.Rect, Action, bool) {
	if !w.HasFrame {
		logging.Debug().Uint32("window", w.ID).Msg("no geometry for window, cannot toggle")
		return geometry.Rect{}, ActionMaximize, false
	}

	if t.IsMaximized(w, usable, horizontal) {
		geom, ok := t.Matcher.Match(w.AppClass, w.Frame, usable)
		if !ok {
			return geometry.Rect{}, ActionRestore, false
		}
		return t.Conv.ToPixels(geom, usable), ActionRestore, true
	}

	target := w.Frame
	target.Y = t.Conv.YOffset
	target.Height = usable.Height
	if horizontal {
		target.X = 0
		target.Width = usable.Width
	}
	return target, ActionMaximize, true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
