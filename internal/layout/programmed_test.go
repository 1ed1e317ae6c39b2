package layout

import (
	"regexp"
	"testing"

	"github.com/yourusername/placer-cli/internal/geometry"
	"github.com/yourusername/placer-cli/internal/rules"
	"github.com/yourusername/placer-cli/internal/server"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()

	termRule, err := rules.Compile("term", geometry.UnitRect{X: 0.5, Y: 0.3, Width: 0.5, Height: 0.7})
	if err != nil {
		t.Fatal(err)
	}
	emacsRule, err := rules.Compile("emacs", geometry.UnitRect{X: 0, Y: 0, Width: 0.5, Height: 1})
	if err != nil {
		t.Fatal(err)
	}

	return &Engine{
		Matcher:   rules.NewMatcher([]rules.Rule{termRule, emacsRule}),
		Quadrants: DefaultQuadrants,
		Terminal:  regexp.MustCompile("(?i)term"),
		Conv:      geometry.Converter{},
	}
}

func visible(id uint32, class string) server.WindowInfo {
	return server.WindowInfo{
		ID: id, AppClass: class, Visible: true, HasFrame: true,
		Frame: geometry.Rect{X: 10, Y: 10, Width: 400, Height: 300},
	}
}

func TestLayoutAll_SingleTerminalFollowsRule(t *testing.T) {
	e := testEngine(t)
	display := geometry.Screen{Width: 1000, Height: 1000}

	windows := []server.WindowInfo{
		visible(1, "emacs-29"),
		visible(2, "Terminal"),
	}

	placements := e.LayoutAll(windows, display)
	if len(placements) != 2 {
		t.Fatalf("got %d placements, want 2", len(placements))
	}

	// Only one terminal is visible, so it routes through the rule table
	// and receives the declared terminal slot, not a quadrant.
	term := placements[1]
	if term.WindowID != 2 {
		t.Fatalf("second placement is window %d, want 2", term.WindowID)
	}
	want := geometry.Rect{X: 500, Y: 300, Width: 500, Height: 700}
	if term.Frame != want {
		t.Errorf("terminal frame = %+v, want %+v", term.Frame, want)
	}
}

func TestLayoutAll_TwoTerminalsTileOnQuadrants(t *testing.T) {
	e := testEngine(t)
	display := geometry.Screen{Width: 1000, Height: 1000}

	windows := []server.WindowInfo{
		visible(1, "Terminal"),
		visible(2, "xterm"),
		visible(3, "emacs-29"),
	}

	placements := e.LayoutAll(windows, display)
	if len(placements) != 3 {
		t.Fatalf("got %d placements, want 3", len(placements))
	}

	// Terminals take quadrants in snapshot order: SE then NE.
	if placements[0].Frame != (geometry.Rect{X: 500, Y: 500, Width: 500, Height: 500}) {
		t.Errorf("first terminal = %+v, want south-east quarter", placements[0].Frame)
	}
	if placements[1].Frame != (geometry.Rect{X: 500, Y: 0, Width: 500, Height: 500}) {
		t.Errorf("second terminal = %+v, want north-east quarter", placements[1].Frame)
	}
	// Emacs still follows its rule.
	if placements[2].Frame != (geometry.Rect{X: 0, Y: 0, Width: 500, Height: 1000}) {
		t.Errorf("emacs = %+v, want left half", placements[2].Frame)
	}
}

func TestLayoutAll_FiveTerminalsWrap(t *testing.T) {
	e := testEngine(t)
	display := geometry.Screen{Width: 1000, Height: 1000}

	var windows []server.WindowInfo
	for i := uint32(1); i <= 5; i++ {
		windows = append(windows, visible(i, "xterm"))
	}

	placements := e.LayoutAll(windows, display)
	if len(placements) != 5 {
		t.Fatalf("got %d placements, want 5", len(placements))
	}
	// Fifth terminal wraps back onto the first quadrant and overlaps.
	if placements[4].Frame != placements[0].Frame {
		t.Errorf("fifth terminal = %+v, want same cell as first %+v",
			placements[4].Frame, placements[0].Frame)
	}
}

func TestLayoutAll_SkipsUnmatchedAndHidden(t *testing.T) {
	e := testEngine(t)
	display := geometry.Screen{Width: 1000, Height: 1000}

	hidden := visible(3, "emacs-29")
	hidden.Visible = false

	windows := []server.WindowInfo{
		visible(1, "firefox"), // no rule matches
		hidden,
		visible(2, "emacs-29"),
	}

	placements := e.LayoutAll(windows, display)
	if len(placements) != 1 {
		t.Fatalf("got %d placements, want 1", len(placements))
	}
	if placements[0].WindowID != 2 {
		t.Errorf("placed window %d, want 2", placements[0].WindowID)
	}
}

func TestLayoutAll_SkipsMissingGeometry(t *testing.T) {
	e := testEngine(t)
	display := geometry.Screen{Width: 1000, Height: 1000}

	w := visible(1, "emacs-29")
	w.HasFrame = false

	placements := e.LayoutAll([]server.WindowInfo{w}, display)
	if len(placements) != 0 {
		t.Errorf("got %d placements, want 0 for window without geometry", len(placements))
	}
}
