package tui

import (
	"strings"
	"testing"

	"picodino/internal/display"
)

func TestRenderFrameCellGrid(t *testing.T) {
	fb := display.NewFramebuffer(8, 6)
	fb.DrawPixel(0, 0, display.ColorRed)
	fb.DrawPixel(3, 1, display.ColorGreen)

	out := RenderFrame(fb, 1)
	rows := strings.Split(out, "\n")
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	for i, r := range rows {
		if n := strings.Count(r, string(halfBlock)); n != 8 {
			t.Errorf("row %d holds %d cells, want 8", i, n)
		}
	}
}

func TestRenderFrameDownscale(t *testing.T) {
	fb := display.NewFramebuffer(8, 8)

	out := RenderFrame(fb, 2)
	rows := strings.Split(out, "\n")
	if len(rows) != 2 {
		t.Fatalf("got %d rows at scale 2, want 2", len(rows))
	}
	if n := strings.Count(rows[0], string(halfBlock)); n != 4 {
		t.Errorf("row 0 holds %d cells at scale 2, want 4", n)
	}
}

func TestRenderFrameOddSizeTruncates(t *testing.T) {
	fb := display.NewFramebuffer(5, 7)

	out := RenderFrame(fb, 2)
	rows := strings.Split(out, "\n")
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if n := strings.Count(rows[0], string(halfBlock)); n != 2 {
		t.Errorf("row holds %d cells, want 2", n)
	}
}

func TestFitScale(t *testing.T) {
	tests := []struct {
		name       string
		cols, rows int
		want       int
	}{
		{"huge terminal", 300, 160, 1},
		{"half size fits", 150, 80, 2},
		{"classic 80x24", 80, 24, 6},
		{"tiny terminal caps", 20, 10, 8},
		{"size not known yet", 0, 0, 1},
	}
	for _, tt := range tests {
		if got := FitScale(240, 280, tt.cols, tt.rows); got != tt.want {
			t.Errorf("%s: FitScale(240, 280, %d, %d) = %d, want %d",
				tt.name, tt.cols, tt.rows, got, tt.want)
		}
	}
}

func TestPairStyleIsCached(t *testing.T) {
	before := len(styleCache)
	pairStyle(display.ColorSky, display.ColorSand)
	pairStyle(display.ColorSky, display.ColorSand)
	after := len(styleCache)

	if after > before+1 {
		t.Errorf("cache grew by %d entries for one pair", after-before)
	}
}
