package output

import (
	"fmt"
	"os"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/yourusername/placer-cli/internal/layout"
	"github.com/yourusername/placer-cli/internal/server"
)

// PrintWindowsTable prints the snapshot's windows in a table format
func PrintWindowsTable(windows []server.WindowInfo) {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Class", "Frame", "Visible", "Focused")

	sorted := make([]server.WindowInfo, len(windows))
	copy(sorted, windows)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ID < sorted[j].ID
	})

	for _, w := range sorted {
		frame := "-"
		if w.HasFrame {
			frame = fmt.Sprintf("%dx%d @ (%d, %d)", w.Frame.Width, w.Frame.Height, w.Frame.X, w.Frame.Y)
		}

		visible := ""
		if w.Visible {
			visible = "yes"
		}
		focused := ""
		if w.Focused {
			focused = "yes"
		}

		table.Append(
			fmt.Sprintf("%d", w.ID),
			truncate(w.AppClass, 30),
			frame,
			visible,
			focused,
		)
	}

	table.Render()
}

// PrintPlacementsTable prints computed placements next to each window's
// current frame. Used by --dry-run to show what a layout would do.
func PrintPlacementsTable(placements []layout.Placement, windows []server.WindowInfo) {
	classes := make(map[uint32]string, len(windows))
	current := make(map[uint32]string, len(windows))
	for _, w := range windows {
		classes[w.ID] = w.AppClass
		if w.HasFrame {
			current[w.ID] = fmt.Sprintf("%dx%d @ (%d, %d)", w.Frame.Width, w.Frame.Height, w.Frame.X, w.Frame.Y)
		} else {
			current[w.ID] = "-"
		}
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Class", "Current", "Target")

	for _, p := range placements {
		target := fmt.Sprintf("%dx%d @ (%d, %d)", p.Frame.Width, p.Frame.Height, p.Frame.X, p.Frame.Y)
		table.Append(
			fmt.Sprintf("%d", p.WindowID),
			truncate(classes[p.WindowID], 30),
			current[p.WindowID],
			target,
		)
	}

	table.Render()
}

// truncate shortens a string to maxLen characters
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
