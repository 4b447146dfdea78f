package viewer

import (
	"image/color"
	"testing"
)

var (
	black = color.RGBA{A: 255}
	red   = color.RGBA{R: 255, A: 255}
	blue  = color.RGBA{B: 255, A: 255}
	green = color.RGBA{G: 255, A: 255}
)

func pt(x, y, z float64) screenPoint {
	return screenPoint{x: x, y: y, z: z}
}

func TestFillTriangle(t *testing.T) {
	f := NewFrame(10, 10, black)
	f.fillTriangle(pt(1, 1, 5), pt(8, 1, 5), pt(1, 8, 5), red)

	if got := f.Image.RGBAAt(2, 2); got != red {
		t.Errorf("inside pixel: expected red, got %v", got)
	}
	if got := f.Image.RGBAAt(8, 8); got != black {
		t.Errorf("outside pixel: expected background, got %v", got)
	}
}

func TestFillTriangleScanlineThroughMiddleVertex(t *testing.T) {
	f := NewFrame(10, 10, black)
	f.fillTriangle(pt(0, 0, 1), pt(9, 5, 1), pt(0, 9, 1), red)

	for x := 0; x <= 9; x++ {
		if got := f.Image.RGBAAt(x, 5); got != red {
			t.Errorf("row 5, x=%d: expected red, got %v", x, got)
		}
	}
}

func TestFillTriangleDepthOrder(t *testing.T) {
	near := [3]screenPoint{pt(0, 0, 1), pt(9, 0, 1), pt(0, 9, 1)}
	far := [3]screenPoint{pt(0, 0, 9), pt(9, 0, 9), pt(0, 9, 9)}

	tests := []struct {
		name  string
		first [3]screenPoint
		col1  color.RGBA
		then  [3]screenPoint
		col2  color.RGBA
	}{
		{name: "far first", first: far, col1: blue, then: near, col2: red},
		{name: "near first", first: near, col1: red, then: far, col2: blue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFrame(10, 10, black)
			f.fillTriangle(tt.first[0], tt.first[1], tt.first[2], tt.col1)
			f.fillTriangle(tt.then[0], tt.then[1], tt.then[2], tt.col2)
			if got := f.Image.RGBAAt(2, 2); got != red {
				t.Errorf("nearest triangle should win, got %v", got)
			}
		})
	}
}

func TestFillTriangleNoDepthKeepsDepthBuffer(t *testing.T) {
	f := NewFrame(10, 10, black)
	f.fillTriangleNoDepth(pt(0, 0, 1), pt(9, 0, 1), pt(0, 9, 1), green)
	if got := f.Image.RGBAAt(2, 2); got != green {
		t.Fatalf("expected ground color, got %v", got)
	}

	// Anything depth tested still draws over the ground.
	f.fillTriangle(pt(0, 0, 100), pt(9, 0, 100), pt(0, 9, 100), blue)
	if got := f.Image.RGBAAt(2, 2); got != blue {
		t.Errorf("expected blue over the ground, got %v", got)
	}
}

func TestDrawLine(t *testing.T) {
	f := NewFrame(10, 10, black)
	f.drawLine(1, 1, 8, 6, red)

	if f.Image.RGBAAt(1, 1) != red || f.Image.RGBAAt(8, 6) != red {
		t.Error("line end points should be drawn")
	}

	// Lines leaving the frame are clipped, not a panic.
	f.drawLine(-20, 5, 30, 5, blue)
	if f.Image.RGBAAt(0, 5) != blue || f.Image.RGBAAt(9, 5) != blue {
		t.Error("clipped line should cross the whole row")
	}
}

func TestDrawText(t *testing.T) {
	f := NewFrame(60, 20, black)
	f.drawText(2, 14, "cube", red)

	painted := 0
	for y := 0; y < 20; y++ {
		for x := 0; x < 60; x++ {
			if f.Image.RGBAAt(x, y) != black {
				painted++
			}
		}
	}
	if painted == 0 {
		t.Error("expected the label to paint some pixels")
	}
	if w := textWidth("cube"); w != 28 {
		t.Errorf("textWidth(cube) = %d, want 28", w)
	}
}
