package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"picodino/internal/display"
)

// Each terminal cell shows two stacked pixels through the upper half
// block: the foreground paints the top pixel, the background the
// bottom one. That keeps the panel's portrait aspect roughly square on
// a terminal grid of ~2:1 character cells.
const halfBlock = '▀'

type stylePair struct {
	top, bottom display.Color
}

// styleCache memoizes lipgloss styles per color pair. The panel
// palette is small, so the cache stays tiny. Bubble Tea calls View on
// one goroutine, so no locking is needed.
var styleCache = map[stylePair]lipgloss.Style{}

func pairStyle(top, bottom display.Color) lipgloss.Style {
	p := stylePair{top, bottom}
	if s, ok := styleCache[p]; ok {
		return s
	}
	s := lipgloss.NewStyle().
		Foreground(lipgloss.Color(top.Hex())).
		Background(lipgloss.Color(bottom.Hex()))
	styleCache[p] = s
	return s
}

// RenderFrame converts the framebuffer to styled terminal rows,
// sampling every scale-th pixel. Adjacent cells with the same color
// pair are grouped into a single styled run to minimize ANSI escape
// sequences.
func RenderFrame(fb *display.Framebuffer, scale int) string {
	if scale < 1 {
		scale = 1
	}
	w, h := fb.Size()
	cols := w / scale
	rows := h / (2 * scale)

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(cols*rows*24 + rows)

	for row := 0; row < rows; row++ {
		if row > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < cols {
			top := fb.At(x*scale, row*2*scale)
			bottom := fb.At(x*scale, (row*2+1)*scale)

			// Collect consecutive cells with the same color pair
			var run strings.Builder
			for x < cols {
				t := fb.At(x*scale, row*2*scale)
				b := fb.At(x*scale, (row*2+1)*scale)
				if t != top || b != bottom {
					break
				}
				run.WriteRune(halfBlock)
				x++
			}

			sb.WriteString(pairStyle(top, bottom).Render(run.String()))
		}
	}
	return sb.String()
}

// FitScale returns the smallest integer downscale at which a pxW by
// pxH frame fits a terminal of cols by rows cells, reserving one row
// for the status line. Capped at 8 so an absurdly small terminal still
// shows something.
func FitScale(pxW, pxH, cols, rows int) int {
	rows--
	if cols < 1 || rows < 1 {
		return 1
	}
	for s := 1; s < 8; s++ {
		if pxW/s <= cols && pxH/(2*s) <= rows {
			return s
		}
	}
	return 8
}
