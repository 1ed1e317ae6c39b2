package layout

import (
	"math"
	"regexp"
	"sort"

	"github.com/yourusername/placer-cli/internal/geometry"
	"github.com/yourusername/placer-cli/internal/server"
)

// TileShape is a grid dimension for a given window count.
type TileShape struct {
	Columns int
	Rows    int
}

// TileCountTable maps a visible-window count to its grid shape.
type TileCountTable map[int]TileShape

// Shape returns the grid for n windows. Counts outside the table fall
// back to a square-ish grid (ceil(sqrt(n)) columns) instead of failing,
// so the table only needs to cover the counts worth hand-tuning.
func (t TileCountTable) Shape(n int) TileShape {
	if s, ok := t[n]; ok {
		return s
	}
	cols := int(math.Ceil(math.Sqrt(float64(n))))
	rows := int(math.Ceil(float64(n) / float64(cols)))
	return TileShape{Columns: cols, Rows: rows}
}

// Sort-key offsets. Terminals sort ahead of every plain window id,
// emacs windows sort after all of them and end up popped last, which
// hands them the stretched cell.
const (
	terminalKeyBias = int64(-1) << 40
	emacsKeyBias    = int64(1) << 40
)

// TileEngine computes the tiled (equal-share grid) layout.
type TileEngine struct {
	Counts   TileCountTable
	Terminal *regexp.Regexp
	Emacs    *regexp.Regexp
	Conv     geometry.Converter
}

// sortKey orders windows for grid cell assignment. The order controls
// which window lands in which cell, not display stacking.
func (e *TileEngine) sortKey(w server.WindowInfo) int64 {
	switch {
	case e.Emacs.MatchString(w.AppClass):
		return emacsKeyBias + int64(w.ID)
	case e.Terminal.MatchString(w.AppClass):
		return terminalKeyBias + int64(w.ID)
	default:
		return int64(w.ID)
	}
}

// TileAll places every visible window on an equal-share grid. Cells are
// walked column-major with both indexes descending, so the last window
// in sort order takes the top-left-most remaining cell; that final cell
// is stretched upward to cover the rows its column never filled, which
// keeps every column gap free when the count does not divide the grid.
func (e *TileEngine) TileAll(windows []server.WindowInfo, display geometry.Screen) []Placement {
	usable := e.Conv.Usable(display)

	queue := make([]server.WindowInfo, 0, len(windows))
	for _, w := range windows {
		if w.Visible {
			queue = append(queue, w)
		}
	}
	if len(queue) == 0 {
		return nil
	}

	sort.SliceStable(queue, func(i, j int) bool {
		return e.sortKey(queue[i]) < e.sortKey(queue[j])
	})

	shape := e.Counts.Shape(len(queue))
	cols := float64(shape.Columns)
	rows := float64(shape.Rows)

	placements := make([]Placement, 0, len(queue))

	for col := shape.Columns - 1; col >= 0; col-- {
		for row := shape.Rows - 1; row >= 0; row-- {
			w := queue[0]
			queue = queue[1:]

			cell := geometry.UnitRect{
				X:      float64(col) / cols,
				Y:      float64(row) / rows,
				Width:  1 / cols,
				Height: 1 / rows,
			}

			if len(queue) == 0 {
				// Last window: stretch to the top of its column.
				cell.Y -= float64(row) / rows
				cell.Height += float64(row) / rows
			}

			placements = append(placements, Placement{
				WindowID: w.ID,
				Frame:    e.Conv.ToPixels(cell, usable),
			})

			if len(queue) == 0 {
				return placements
			}
		}
	}

	return placements
}
