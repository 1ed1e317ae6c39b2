package server

import (
	"context"
	"fmt"

	"github.com/yourusername/placer-cli/internal/client"
	"github.com/yourusername/placer-cli/internal/geometry"
	"github.com/yourusername/placer-cli/internal/models"
)

// Snapshot is a parsed, read-only view of backend state at a point in
// time. Policy operations never re-fetch mid-run; one invocation sees
// exactly one snapshot.
type Snapshot struct {
	Display   geometry.Screen // raw display size
	Windows   []WindowInfo    // all windows, in backend order
	FocusedID uint32          // 0 when no window has focus
}

// WindowInfo contains window data needed for placement decisions.
type WindowInfo struct {
	ID       uint32
	AppClass string
	Frame    geometry.Rect
	HasFrame bool // false when the backend could not read geometry
	Visible  bool
	Focused  bool
}

// VisibleWindows returns the visible windows in snapshot order.
func (s *Snapshot) VisibleWindows() []WindowInfo {
	visible := make([]WindowInfo, 0, len(s.Windows))
	for _, w := range s.Windows {
		if w.Visible {
			visible = append(visible, w)
		}
	}
	return visible
}

// FindWindow returns the window with the given id, or nil.
func (s *Snapshot) FindWindow(id uint32) *WindowInfo {
	for i := range s.Windows {
		if s.Windows[i].ID == id {
			return &s.Windows[i]
		}
	}
	return nil
}

// Fetch calls dump ONCE and parses into a Snapshot.
func Fetch(ctx context.Context, c *client.Client) (*Snapshot, error) {
	dump, err := c.Dump(ctx)
	if err != nil {
		return nil, fmt.Errorf("dump failed: %w", err)
	}
	return fromDump(dump)
}

func fromDump(dump *models.Dump) (*Snapshot, error) {
	if dump.Display.Frame.Width <= 0 || dump.Display.Frame.Height <= 0 {
		return nil, fmt.Errorf("backend reported invalid display size %vx%v",
			dump.Display.Frame.Width, dump.Display.Frame.Height)
	}

	snap := &Snapshot{
		Display: geometry.Screen{
			Width:  int(dump.Display.Frame.Width),
			Height: int(dump.Display.Frame.Height),
		},
		Windows: make([]WindowInfo, 0, len(dump.Windows)),
	}

	for _, w := range dump.Windows {
		info := WindowInfo{
			ID:       w.ID,
			AppClass: w.AppClass,
			Visible:  w.Visible,
			Focused:  w.Focused,
		}
		if w.Frame != nil {
			info.HasFrame = true
			info.Frame = geometry.Rect{
				X:      int(w.Frame.X),
				Y:      int(w.Frame.Y),
				Width:  int(w.Frame.Width),
				Height: int(w.Frame.Height),
			}
		}
		snap.Windows = append(snap.Windows, info)

		if w.Focused && w.Visible {
			snap.FocusedID = w.ID
		}
	}

	return snap, nil
}
