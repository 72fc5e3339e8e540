package display

import "fmt"

// Color is an RGB565 pixel value, the native format of the panel this
// game was written against. High five bits red, middle six green, low
// five blue.
type Color uint16

// RGB packs an 8-bit-per-channel color into RGB565.
func RGB(r, g, b uint8) Color {
	return Color(uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3))
}

// RGBA expands the color back to 8-bit channels, replicating the high
// bits into the low ones so full white stays full white.
func (c Color) RGBA() (r, g, b uint8) {
	r = uint8(c>>11) & 0x1F
	g = uint8(c>>5) & 0x3F
	b = uint8(c) & 0x1F
	return r<<3 | r>>2, g<<2 | g>>4, b<<3 | b>>2
}

// Hex renders the color as a #rrggbb string for terminal styling.
func (c Color) Hex() string {
	r, g, b := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Palette used by the game scene.
const (
	ColorBlack     Color = 0x0000
	ColorWhite     Color = 0xFFFF
	ColorRed       Color = 0xF800
	ColorGreen     Color = 0x07E0
	ColorBlue      Color = 0x001F
	ColorYellow    Color = 0xFFE0
	ColorCyan      Color = 0x07FF
	ColorMagenta   Color = 0xF81F
	ColorOrange    Color = 0xFD20
	ColorGray      Color = 0x8410
	ColorDarkGray  Color = 0x4208
	ColorBrown     Color = 0x8A22
	ColorSand      Color = 0xDDD0
	ColorSky       Color = 0x867D
	ColorDarkGreen Color = 0x0320
)
