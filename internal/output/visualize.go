package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/yourusername/placer-cli/internal/geometry"
	"github.com/yourusername/placer-cli/internal/server"
	"golang.org/x/sys/unix"
)

// VisualizationOptions controls the appearance of the visualization
type VisualizationOptions struct {
	UseUnicode bool
	MaxWidth   int
	MaxHeight  int
}

// DefaultVisualizationOptions returns sensible defaults
func DefaultVisualizationOptions() VisualizationOptions {
	width, height := getTerminalSize()
	return VisualizationOptions{
		UseUnicode: supportsUnicode(),
		MaxWidth:   width,
		MaxHeight:  height,
	}
}

// boxStyle defines the character set for drawing window boxes
type boxStyle struct {
	topLeft, topRight, bottomLeft, bottomRight rune
	horizontal, vertical                       rune
}

var (
	asciiStyle   = boxStyle{'+', '+', '+', '+', '-', '|'}
	unicodeStyle = boxStyle{'┌', '┐', '└', '┘', '─', '│'}
)

// VisualizeScreen renders the visible windows as scaled boxes on a
// character canvas. The focused window's box is highlighted.
func VisualizeScreen(display geometry.Screen, windows []server.WindowInfo, opts VisualizationOptions) string {
	// Reserve two columns/rows on each side for the screen border.
	canvasW := opts.MaxWidth - 4
	canvasH := opts.MaxHeight - 6
	if canvasW < 20 {
		canvasW = 20
	}
	if canvasH < 8 {
		canvasH = 8
	}

	// Terminal cells are roughly twice as tall as wide.
	scaleX := float64(canvasW) / float64(display.Width)
	scaleY := float64(canvasH) / float64(display.Height)

	style := asciiStyle
	if opts.UseUnicode {
		style = unicodeStyle
	}

	buffer := make([][]rune, canvasH)
	for i := range buffer {
		buffer[i] = make([]rune, canvasW)
		for j := range buffer[i] {
			buffer[i][j] = ' '
		}
	}

	set := func(x, y int, r rune) {
		if x >= 0 && x < canvasW && y >= 0 && y < canvasH {
			buffer[y][x] = r
		}
	}

	focusedBox := [4]int{-1, -1, -1, -1}
	count := 0

	for _, w := range windows {
		if !w.Visible || !w.HasFrame {
			continue
		}
		count++

		x := int(float64(w.Frame.X) * scaleX)
		y := int(float64(w.Frame.Y) * scaleY)
		bw := int(float64(w.Frame.Width) * scaleX)
		bh := int(float64(w.Frame.Height) * scaleY)
		if bw < 4 {
			bw = 4
		}
		if bh < 2 {
			bh = 2
		}
		if x+bw > canvasW {
			bw = canvasW - x
		}
		if y+bh > canvasH {
			bh = canvasH - y
		}
		if bw < 2 || bh < 2 {
			continue
		}

		for i := 1; i < bw-1; i++ {
			set(x+i, y, style.horizontal)
			set(x+i, y+bh-1, style.horizontal)
		}
		for i := 1; i < bh-1; i++ {
			set(x, y+i, style.vertical)
			set(x+bw-1, y+i, style.vertical)
		}
		set(x, y, style.topLeft)
		set(x+bw-1, y, style.topRight)
		set(x, y+bh-1, style.bottomLeft)
		set(x+bw-1, y+bh-1, style.bottomRight)

		label := fmt.Sprintf("%d:%s", w.ID, w.AppClass)
		if len(label) > bw-2 {
			label = label[:bw-2]
		}
		for i, r := range label {
			set(x+1+i, y+1, r)
		}

		if w.Focused {
			focusedBox = [4]int{x, y, bw, bh}
		}
	}

	focusColor := color.New(color.FgGreen, color.Bold)
	var sb strings.Builder
	fmt.Fprintf(&sb, "Screen %dx%d, %d windows\n", display.Width, display.Height, count)

	for y, row := range buffer {
		line := string(row)
		// Highlight the focused window's rows.
		if focusedBox[0] >= 0 && y >= focusedBox[1] && y < focusedBox[1]+focusedBox[3] {
			x, w := focusedBox[0], focusedBox[2]
			if x+w <= len(row) {
				line = string(row[:x]) + focusColor.Sprint(string(row[x:x+w])) + string(row[x+w:])
			}
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	return sb.String()
}

// getTerminalSize returns the terminal dimensions, with fallbacks
func getTerminalSize() (int, int) {
	ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Row == 0 {
		return 80, 24
	}
	return int(ws.Col), int(ws.Row)
}

// supportsUnicode checks if the terminal likely supports Unicode
func supportsUnicode() bool {
	for _, env := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		if v := os.Getenv(env); v != "" {
			return strings.Contains(strings.ToUpper(v), "UTF")
		}
	}
	return false
}
