package focus

import (
	"sort"

	"github.com/yourusername/placer-cli/internal/server"
)

// missingGeometryKey sorts windows whose frame the backend could not
// read after every positioned window.
const missingGeometryKey = int64(1) << 62

// readingOrderKey ranks windows left-to-right, then top-to-bottom within
// near-equal x, with the window id as the final tie-break.
func readingOrderKey(w server.WindowInfo) int64 {
	if !w.HasFrame {
		return missingGeometryKey + int64(w.ID)
	}
	return int64(w.Frame.X)*1_000_000 + int64(w.Frame.Y)*1_000 + int64(w.ID)
}

// Next returns the window to focus after current, cycling through the
// visible windows in reading order. When current is unknown (no focus,
// or a stale id) the first window in order is returned. Returns false
// only when no window is visible.
func Next(current uint32, windows []server.WindowInfo) (uint32, bool) {
	ordered := make([]server.WindowInfo, 0, len(windows))
	for _, w := range windows {
		if w.Visible {
			ordered = append(ordered, w)
		}
	}
	if len(ordered) == 0 {
		return 0, false
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		return readingOrderKey(ordered[i]) < readingOrderKey(ordered[j])
	})

	for i, w := range ordered {
		if w.ID == current {
			return ordered[(i+1)%len(ordered)].ID, true
		}
	}

	return ordered[0].ID, true
}
