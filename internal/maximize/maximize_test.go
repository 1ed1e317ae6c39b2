package maximize

import (
	"testing"

	"github.com/yourusername/placer-cli/internal/geometry"
	"github.com/yourusername/placer-cli/internal/rules"
	"github.com/yourusername/placer-cli/internal/server"
)

func testToggler(t *testing.T) (*Toggler, geometry.Screen) {
	t.Helper()

	rule, err := rules.Compile("emacs", geometry.UnitRect{X: 0, Y: 0, Width: 0.5, Height: 1})
	if err != nil {
		t.Fatal(err)
	}

	conv := geometry.Converter{FrameOffset: 2, YOffset: 24}
	return &Toggler{
		Matcher: rules.NewMatcher([]rules.Rule{rule}),
		Conv:    conv,
	}, conv.Usable(geometry.Screen{Width: 1920, Height: 1080})
}

func window(frame geometry.Rect) server.WindowInfo {
	return server.WindowInfo{ID: 1, AppClass: "emacs-29", Visible: true, HasFrame: true, Frame: frame}
}

func TestIsMaximized_Full(t *testing.T) {
	tog, usable := testToggler(t)

	w := window(geometry.Rect{X: 0, Y: tog.Conv.YOffset, Width: usable.Width, Height: usable.Height})
	if !tog.IsMaximized(w, usable, true) {
		t.Error("window filling the usable screen should be maximized")
	}

	shifted := w
	shifted.Frame.X += 30
	if tog.IsMaximized(shifted, usable, true) {
		t.Error("window shifted 30px should not count as horizontally maximized")
	}
}

func TestIsMaximized_Tolerance(t *testing.T) {
	tog, usable := testToggler(t)

	w := window(geometry.Rect{X: 0, Y: tog.Conv.YOffset + 10, Width: usable.Width - 15, Height: usable.Height - 19})
	if !tog.IsMaximized(w, usable, true) {
		t.Error("drift inside the tolerance should still count as maximized")
	}

	w.Frame.Height = usable.Height - Tolerance
	if tog.IsMaximized(w, usable, true) {
		t.Error("height off by the full tolerance should not count")
	}
}

func TestIsMaximized_VerticalOnlyIgnoresWidth(t *testing.T) {
	tog, usable := testToggler(t)

	w := window(geometry.Rect{X: 400, Y: tog.Conv.YOffset, Width: 500, Height: usable.Height})
	if !tog.IsMaximized(w, usable, false) {
		t.Error("full-height window should be vertically maximized regardless of width")
	}
	if tog.IsMaximized(w, usable, true) {
		t.Error("narrow window should not be horizontally maximized")
	}
}

func TestToggle_Maximizes(t *testing.T) {
	tog, usable := testToggler(t)

	w := window(geometry.Rect{X: 300, Y: 200, Width: 600, Height: 400})
	target, action, ok := tog.Toggle(w, usable, true)
	if !ok || action != ActionMaximize {
		t.Fatalf("Toggle = %v/%v, want maximize", action, ok)
	}
	want := geometry.Rect{X: 0, Y: tog.Conv.YOffset, Width: usable.Width, Height: usable.Height}
	if target != want {
		t.Errorf("target = %+v, want %+v", target, want)
	}
}

func TestToggle_VerticalPreservesHorizontal(t *testing.T) {
	tog, usable := testToggler(t)

	w := window(geometry.Rect{X: 300, Y: 200, Width: 600, Height: 400})
	target, action, ok := tog.Toggle(w, usable, false)
	if !ok || action != ActionMaximize {
		t.Fatalf("Toggle = %v/%v, want maximize", action, ok)
	}
	if target.X != 300 || target.Width != 600 {
		t.Errorf("horizontal axis changed: %+v", target)
	}
	if target.Y != tog.Conv.YOffset || target.Height != usable.Height {
		t.Errorf("vertical axis not maximized: %+v", target)
	}
}

func TestToggle_RestoresViaRule(t *testing.T) {
	tog, usable := testToggler(t)

	w := window(geometry.Rect{X: 0, Y: tog.Conv.YOffset, Width: usable.Width, Height: usable.Height})
	target, action, ok := tog.Toggle(w, usable, true)
	if !ok || action != ActionRestore {
		t.Fatalf("Toggle = %v/%v, want restore", action, ok)
	}

	want := tog.Conv.ToPixels(geometry.UnitRect{X: 0, Y: 0, Width: 0.5, Height: 1}, usable)
	if target != want {
		t.Errorf("restore target = %+v, want rule geometry %+v", target, want)
	}
}

func TestToggle_RestoreWithoutRuleIsNoop(t *testing.T) {
	tog, usable := testToggler(t)

	w := window(geometry.Rect{X: 0, Y: tog.Conv.YOffset, Width: usable.Width, Height: usable.Height})
	w.AppClass = "firefox"

	_, action, ok := tog.Toggle(w, usable, true)
	if ok {
		t.Error("restore with no matching rule should be a no-op")
	}
	if action != ActionRestore {
		t.Errorf("action = %v, want restore", action)
	}
}
