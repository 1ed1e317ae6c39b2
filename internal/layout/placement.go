package layout

import "github.com/yourusername/placer-cli/internal/geometry"

// Placement specifies where a window should be positioned
type Placement struct {
	WindowID uint32        // Window identifier from the backend
	Frame    geometry.Rect // Target position and size in pixels
}
