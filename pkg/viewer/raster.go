package viewer

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Frame is an RGBA image with a depth buffer
type Frame struct {
	Image *image.RGBA
	depth []float64
}

// NewFrame creates a frame cleared to bg with an empty depth buffer
func NewFrame(width, height int, bg color.RGBA) *Frame {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = bg.R, bg.G, bg.B, bg.A
	}

	depth := make([]float64, width*height)
	for i := range depth {
		depth[i] = math.Inf(1)
	}
	return &Frame{Image: img, depth: depth}
}

// screenPoint is a projected vertex: pixel coordinates plus view depth
type screenPoint struct {
	x, y, z float64
}

// fillTriangle fills a triangle with depth testing
func (f *Frame) fillTriangle(a, b, c screenPoint, col color.RGBA) {
	f.fill(a, b, c, col, true)
}

// fillTriangleNoDepth paints over whatever is there and leaves the depth buffer alone
func (f *Frame) fillTriangleNoDepth(a, b, c screenPoint, col color.RGBA) {
	f.fill(a, b, c, col, false)
}

func (f *Frame) fill(a, b, c screenPoint, col color.RGBA, depthTest bool) {
	// Sort vertices by Y coordinate (top to bottom)
	if a.y > b.y {
		a, b = b, a
	}
	if b.y > c.y {
		b, c = c, b
	}
	if a.y > b.y {
		a, b = b, a
	}

	bounds := f.Image.Bounds()
	width := bounds.Max.X

	// Scanline algorithm with depth interpolation
	for y := int(math.Max(0, math.Ceil(a.y))); y <= int(math.Min(float64(bounds.Max.Y-1), c.y)); y++ {
		fy := float64(y)

		var xs, zs [3]float64
		n := 0
		for _, e := range [3][2]screenPoint{{a, b}, {b, c}, {a, c}} {
			p, q := e[0], e[1]
			if p.y == q.y || fy < p.y || fy > q.y {
				continue
			}
			t := (fy - p.y) / (q.y - p.y)
			xs[n] = p.x + t*(q.x-p.x)
			zs[n] = p.z + t*(q.z-p.z)
			n++
		}
		if n < 2 {
			continue
		}

		// A scanline through the middle vertex crosses three edges.
		xStart, xEnd, zStart, zEnd := xs[0], xs[0], zs[0], zs[0]
		for i := 1; i < n; i++ {
			if xs[i] < xStart {
				xStart, zStart = xs[i], zs[i]
			}
			if xs[i] > xEnd {
				xEnd, zEnd = xs[i], zs[i]
			}
		}

		// Clamp to image bounds
		xStartInt := int(math.Max(0, math.Ceil(xStart)))
		xEndInt := int(math.Min(float64(bounds.Max.X-1), xEnd))

		for x := xStartInt; x <= xEndInt; x++ {
			t := 0.0
			if xEnd != xStart {
				t = (float64(x) - xStart) / (xEnd - xStart)
			}
			z := zStart + t*(zEnd-zStart)

			if !depthTest {
				f.Image.SetRGBA(x, y, col)
				continue
			}

			// Depth test - draw if closer (smaller z)
			idx := y*width + x
			if z < f.depth[idx] {
				f.depth[idx] = z
				f.Image.SetRGBA(x, y, col)
			}
		}
	}
}

// drawLine draws a line on top of everything using Bresenham's algorithm
func (f *Frame) drawLine(x1, y1, x2, y2 int, col color.RGBA) {
	bounds := f.Image.Bounds()

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx, sy := -1, -1
	if x1 < x2 {
		sx = 1
	}
	if y1 < y2 {
		sy = 1
	}

	err := dx - dy

	for {
		if x1 >= 0 && x1 < bounds.Max.X && y1 >= 0 && y1 < bounds.Max.Y {
			f.Image.SetRGBA(x1, y1, col)
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// drawText draws s with its baseline starting at (x, y)
func (f *Frame) drawText(x, y int, s string, col color.RGBA) {
	d := &font.Drawer{
		Dst:  f.Image,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// textWidth returns the advance of s in pixels
func textWidth(s string) int {
	return font.MeasureString(basicfont.Face7x13, s).Round()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
