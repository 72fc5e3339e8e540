// Package display models the little RGB565 panel the game draws to: a
// device interface shaped like the usual TFT driver APIs, plus an
// in-memory framebuffer implementation used by the terminal front end,
// the headless simulator and the tests.
package display

// Device is the drawing surface the renderers target. The method set
// mirrors the primitive API of the small TFT panel drivers this game
// grew up on, so a renderer written against it ports to real hardware
// without change.
//
// Coordinates are pixels with the origin at the top left. Primitives
// clip silently against the device bounds.
type Device interface {
	// Size reports the panel dimensions in pixels.
	Size() (w, h int)

	// FillScreen floods every pixel with c.
	FillScreen(c Color)
	// FillRect fills the w by h rectangle whose top left corner is x,y.
	FillRect(x, y, w, h int, c Color)
	// DrawPixel sets a single pixel.
	DrawPixel(x, y int, c Color)
	// DrawLine draws a one pixel line between two points.
	DrawLine(x0, y0, x1, y1 int, c Color)
	// DrawHLine draws a horizontal run of length pixels starting at x,y.
	DrawHLine(x, y, length int, c Color)
	// DrawVLine draws a vertical run of length pixels starting at x,y.
	DrawVLine(x, y, length int, c Color)
	// DrawRect outlines a rectangle.
	DrawRect(x, y, w, h int, c Color)
	// DrawTriangle outlines the triangle with the given corners.
	DrawTriangle(x0, y0, x1, y1, x2, y2 int, c Color)
	// DrawCircle outlines the circle centered at cx,cy.
	DrawCircle(cx, cy, r int, c Color)

	// SetCursor places the text cursor. Print starts here and newlines
	// return to this column.
	SetCursor(x, y int)
	// SetTextColor sets the color Print draws glyphs with.
	SetTextColor(c Color)
	// SetTextSize sets the integer glyph scale. 1 is the native 5x7 cell.
	SetTextSize(size int)
	// Print draws s at the cursor and advances it.
	Print(s string)
	// TextWidth reports the pixel width Print would advance for s at
	// the current text size.
	TextWidth(s string) int
}
