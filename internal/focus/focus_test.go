package focus

import (
	"testing"

	"github.com/yourusername/placer-cli/internal/geometry"
	"github.com/yourusername/placer-cli/internal/server"
)

func win(id uint32, x, y int) server.WindowInfo {
	return server.WindowInfo{
		ID: id, AppClass: "test", Visible: true, HasFrame: true,
		Frame: geometry.Rect{X: x, Y: y, Width: 400, Height: 300},
	}
}

func TestNext_ReadingOrder(t *testing.T) {
	windows := []server.WindowInfo{
		win(1, 900, 0),   // right column
		win(2, 0, 500),   // left column, lower
		win(3, 0, 0),     // left column, upper
		win(4, 450, 200), // middle
	}

	// Reading order: 3 (0,0), 2 (0,500), 4 (450,200), 1 (900,0).
	next, ok := Next(3, windows)
	if !ok || next != 2 {
		t.Errorf("Next(3) = %d/%v, want 2", next, ok)
	}
	next, _ = Next(2, windows)
	if next != 4 {
		t.Errorf("Next(2) = %d, want 4", next)
	}
	next, _ = Next(1, windows)
	if next != 3 {
		t.Errorf("Next(1) = %d, want wrap to 3", next)
	}
}

func TestNext_FullCycle(t *testing.T) {
	windows := []server.WindowInfo{
		win(1, 0, 0), win(2, 500, 0), win(3, 0, 400), win(4, 500, 400),
	}

	start := uint32(2)
	seen := map[uint32]bool{}
	current := start
	for i := 0; i < len(windows); i++ {
		next, ok := Next(current, windows)
		if !ok {
			t.Fatal("cycle broke")
		}
		if seen[next] {
			t.Fatalf("window %d visited twice before cycle completed", next)
		}
		seen[next] = true
		current = next
	}
	if current != start {
		t.Errorf("after %d steps ended at %d, want start window %d", len(windows), current, start)
	}
}

func TestNext_UnknownCurrentReturnsFirst(t *testing.T) {
	windows := []server.WindowInfo{win(5, 500, 0), win(6, 0, 0)}

	next, ok := Next(99, windows)
	if !ok || next != 6 {
		t.Errorf("Next(stale) = %d/%v, want first in reading order (6)", next, ok)
	}

	next, _ = Next(0, windows)
	if next != 6 {
		t.Errorf("Next(none) = %d, want 6", next)
	}
}

func TestNext_MissingGeometrySortsLast(t *testing.T) {
	noFrame := server.WindowInfo{ID: 7, Visible: true}
	windows := []server.WindowInfo{noFrame, win(1, 0, 0), win(2, 500, 0)}

	next, _ := Next(2, windows)
	if next != 7 {
		t.Errorf("Next(2) = %d, want the geometry-less window (7) last in cycle", next)
	}
	next, _ = Next(7, windows)
	if next != 1 {
		t.Errorf("Next(7) = %d, want wrap to 1", next)
	}
}

func TestNext_Empty(t *testing.T) {
	if _, ok := Next(1, nil); ok {
		t.Error("expected no next window for empty set")
	}

	hidden := win(1, 0, 0)
	hidden.Visible = false
	if _, ok := Next(1, []server.WindowInfo{hidden}); ok {
		t.Error("expected no next window when nothing is visible")
	}
}

func TestNext_SingleWindowCyclesToItself(t *testing.T) {
	windows := []server.WindowInfo{win(3, 100, 100)}

	next, ok := Next(3, windows)
	if !ok || next != 3 {
		t.Errorf("Next(3) = %d/%v, want 3", next, ok)
	}
}
