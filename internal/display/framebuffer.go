package display

// Framebuffer is an in-memory Device. Every primitive clips against
// the buffer bounds and is tallied in Stats, which is what the stats
// overlay and the renderer benchmarks read.
type Framebuffer struct {
	width  int
	height int
	pix    []Color

	cursorX   int
	cursorY   int
	originX   int
	textColor Color
	textSize  int

	stats Stats
}

// Stats counts drawing work since the last ResetStats. Pixels counts
// writes that survived clipping, so a full clear of a 240x280 panel
// adds 67200 in one op.
type Stats struct {
	Ops    int
	Pixels int
}

// NewFramebuffer allocates a w by h buffer cleared to black. Both
// dimensions must be positive.
func NewFramebuffer(w, h int) *Framebuffer {
	return &Framebuffer{
		width:     w,
		height:    h,
		pix:       make([]Color, w*h),
		textColor: ColorWhite,
		textSize:  1,
	}
}

func (f *Framebuffer) Size() (w, h int) { return f.width, f.height }

// At returns the pixel at x,y, or black when out of bounds.
func (f *Framebuffer) At(x, y int) Color {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return ColorBlack
	}
	return f.pix[y*f.width+x]
}

// Equal reports whether two framebuffers have identical dimensions and
// pixel content.
func (f *Framebuffer) Equal(other *Framebuffer) bool {
	if f.width != other.width || f.height != other.height {
		return false
	}
	for i, c := range f.pix {
		if other.pix[i] != c {
			return false
		}
	}
	return true
}

// Stats returns the tallies accumulated since the last ResetStats.
func (f *Framebuffer) Stats() Stats { return f.stats }

// ResetStats zeroes the op and pixel counters. The front end calls it
// once per frame.
func (f *Framebuffer) ResetStats() { f.stats = Stats{} }

func (f *Framebuffer) FillScreen(c Color) {
	f.stats.Ops++
	for i := range f.pix {
		f.pix[i] = c
	}
	f.stats.Pixels += len(f.pix)
}

func (f *Framebuffer) FillRect(x, y, w, h int, c Color) {
	f.stats.Ops++
	f.fillRect(x, y, w, h, c)
}

func (f *Framebuffer) DrawPixel(x, y int, c Color) {
	f.stats.Ops++
	f.set(x, y, c)
}

func (f *Framebuffer) DrawLine(x0, y0, x1, y1 int, c Color) {
	f.stats.Ops++
	f.line(x0, y0, x1, y1, c)
}

func (f *Framebuffer) DrawHLine(x, y, length int, c Color) {
	f.stats.Ops++
	f.fillRect(x, y, length, 1, c)
}

func (f *Framebuffer) DrawVLine(x, y, length int, c Color) {
	f.stats.Ops++
	f.fillRect(x, y, 1, length, c)
}

func (f *Framebuffer) DrawRect(x, y, w, h int, c Color) {
	f.stats.Ops++
	if w <= 0 || h <= 0 {
		return
	}
	f.fillRect(x, y, w, 1, c)
	f.fillRect(x, y+h-1, w, 1, c)
	if h > 2 {
		f.fillRect(x, y+1, 1, h-2, c)
		f.fillRect(x+w-1, y+1, 1, h-2, c)
	}
}

func (f *Framebuffer) DrawTriangle(x0, y0, x1, y1, x2, y2 int, c Color) {
	f.stats.Ops++
	f.line(x0, y0, x1, y1, c)
	f.line(x1, y1, x2, y2, c)
	f.line(x2, y2, x0, y0, c)
}

// DrawCircle rasterizes the outline with the midpoint algorithm.
func (f *Framebuffer) DrawCircle(cx, cy, r int, c Color) {
	f.stats.Ops++
	if r < 0 {
		return
	}
	x, y := r, 0
	err := 1 - r
	for x >= y {
		f.set(cx+x, cy+y, c)
		f.set(cx+y, cy+x, c)
		f.set(cx-y, cy+x, c)
		f.set(cx-x, cy+y, c)
		f.set(cx-x, cy-y, c)
		f.set(cx-y, cy-x, c)
		f.set(cx+y, cy-x, c)
		f.set(cx+x, cy-y, c)
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2*(y-x) + 1
		}
	}
}

func (f *Framebuffer) SetCursor(x, y int) {
	f.cursorX, f.cursorY = x, y
	f.originX = x
}

func (f *Framebuffer) SetTextColor(c Color) { f.textColor = c }

func (f *Framebuffer) SetTextSize(size int) {
	if size < 1 {
		size = 1
	}
	f.textSize = size
}

func (f *Framebuffer) Print(s string) {
	f.stats.Ops++
	for _, r := range s {
		if r == '\n' {
			f.cursorX = f.originX
			f.cursorY += lineAdvance * f.textSize
			continue
		}
		f.drawGlyph(r)
	}
}

// TextWidth reports the width in pixels Print would advance for s at
// the current text size, ignoring newlines. Renderers use it to center
// labels.
func (f *Framebuffer) TextWidth(s string) int {
	n := 0
	for _, r := range s {
		if r != '\n' {
			n++
		}
	}
	return n * glyphAdvance * f.textSize
}

func (f *Framebuffer) drawGlyph(r rune) {
	g, ok := glyph(r)
	size := f.textSize
	if ok {
		for col := 0; col < glyphWidth; col++ {
			bits := g[col]
			for row := 0; row < glyphHeight; row++ {
				if bits&(1<<uint(row)) != 0 {
					f.fillRect(f.cursorX+col*size, f.cursorY+row*size, size, size, f.textColor)
				}
			}
		}
	}
	f.cursorX += glyphAdvance * size
}

// fillRect is the clipped fill shared by the public primitives. It
// updates the pixel tally but not the op count.
func (f *Framebuffer) fillRect(x, y, w, h int, c Color) {
	if w <= 0 || h <= 0 {
		return
	}
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, f.width), min(y+h, f.height)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	for yy := y0; yy < y1; yy++ {
		row := f.pix[yy*f.width+x0 : yy*f.width+x1]
		for i := range row {
			row[i] = c
		}
	}
	f.stats.Pixels += (x1 - x0) * (y1 - y0)
}

func (f *Framebuffer) set(x, y int, c Color) {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return
	}
	f.pix[y*f.width+x] = c
	f.stats.Pixels++
}

// line is Bresenham over set, shared by DrawLine and DrawTriangle.
func (f *Framebuffer) line(x0, y0, x1, y1 int, c Color) {
	dx := iabs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -iabs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		f.set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func iabs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
