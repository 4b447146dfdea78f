package viewer

import (
	"image/color"

	"github.com/philipparndt/gostack/internal/scene"
	"github.com/philipparndt/gostack/pkg/geometry"
)

const (
	// nearPlane drops geometry closer to the camera than this many world units
	nearPlane = 1.0
	// groundTiles splits floor and pad so tiles crossing the near plane can be dropped one by one
	groundTiles = 20
	outlineGrow = 0.5
)

var (
	hoverColor    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	selectedColor = color.RGBA{R: 253, G: 249, B: 0, A: 255}
	labelColor    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Snapshot is the state Paint draws
type Snapshot struct {
	Layout   scene.Layout
	Shapes   []*scene.Shape
	Selected *scene.Shape // last selected shape, outlined and labelled
	Hovered  *scene.Shape // shape under the pointer, outlined
}

func rgba(c scene.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Paint renders the scene into f as seen by cam
func Paint(f *Frame, cam *Camera, s Snapshot) {
	width := float64(f.Image.Bounds().Dx())
	height := float64(f.Image.Bounds().Dy())
	light := s.Layout.Light

	// The ground lies below every shape, so it is painted first and ignores depth.
	floorTop := geometry.Vector3{Y: 0}
	floorColor := rgba(light.Shade(s.Layout.Floor.Color, geometry.Up))
	paintGround(f, cam, floorTop, s.Layout.Floor.Size.X, s.Layout.Floor.Size.Z, floorColor, width, height)
	if pad := s.Layout.Pad; pad != nil {
		padColor := rgba(light.Shade(pad.Color, geometry.Up))
		paintGround(f, cam, floorTop, pad.Size, pad.Size, padColor, width, height)
	}

	for _, shape := range s.Shapes {
		paintBox(f, cam, shape.Bounds(), shape.Color, light, width, height)
	}

	if s.Hovered != nil && s.Hovered != s.Selected {
		paintOutline(f, cam, s.Hovered.Bounds(), hoverColor, width, height)
	}
	if s.Selected != nil {
		paintOutline(f, cam, s.Selected.Bounds(), selectedColor, width, height)
		paintLabel(f, cam, s.Selected, indexOf(s.Shapes, s.Selected), width, height)
	}
}

// paintGround fills a horizontal rectangle centered on center, tile by tile
func paintGround(f *Frame, cam *Camera, center geometry.Vector3, sizeX, sizeZ float64, col color.RGBA, width, height float64) {
	// Seen from below, the ground faces away from the camera.
	if cam.Position.Y <= center.Y {
		return
	}

	stepX := sizeX / groundTiles
	stepZ := sizeZ / groundTiles
	x0 := center.X - sizeX/2
	z0 := center.Z - sizeZ/2

	for i := 0; i < groundTiles; i++ {
		for j := 0; j < groundTiles; j++ {
			xa, xb := x0+float64(i)*stepX, x0+float64(i+1)*stepX
			za, zb := z0+float64(j)*stepZ, z0+float64(j+1)*stepZ
			quad := [4]geometry.Vector3{
				{X: xa, Y: center.Y, Z: za},
				{X: xa, Y: center.Y, Z: zb},
				{X: xb, Y: center.Y, Z: zb},
				{X: xb, Y: center.Y, Z: za},
			}
			pts, ok := project(cam, quad, width, height)
			if !ok {
				continue
			}
			f.fillTriangleNoDepth(pts[0], pts[1], pts[2], col)
			f.fillTriangleNoDepth(pts[0], pts[2], pts[3], col)
		}
	}
}

// paintBox fills the faces of b that point towards the camera
func paintBox(f *Frame, cam *Camera, b geometry.Box, c scene.Color, light scene.Light, width, height float64) {
	for _, face := range b.Faces() {
		center := face.Corners[0].Add(face.Corners[2]).Mul(0.5)
		if face.Normal.Dot(cam.Position.Sub(center)) <= 0 {
			continue
		}

		pts, ok := project(cam, face.Corners, width, height)
		if !ok {
			continue
		}
		col := rgba(light.Shade(c, face.Normal))
		f.fillTriangle(pts[0], pts[1], pts[2], col)
		f.fillTriangle(pts[0], pts[2], pts[3], col)
	}
}

func paintOutline(f *Frame, cam *Camera, b geometry.Box, col color.RGBA, width, height float64) {
	for _, e := range b.Grow(outlineGrow).Edges() {
		pts, ok := project(cam, [4]geometry.Vector3{e[0], e[1], e[1], e[1]}, width, height)
		if !ok {
			continue
		}
		f.drawLine(int(pts[0].x), int(pts[0].y), int(pts[1].x), int(pts[1].y), col)
	}
}

// paintLabel writes the shape's label centered above its top face
func paintLabel(f *Frame, cam *Camera, shape *scene.Shape, index int, width, height float64) {
	top := shape.Position.Add(geometry.Vector3{Y: shape.Half().Y})
	x, y, z := cam.Project(top, width, height)
	if z < nearPlane {
		return
	}
	label := shape.Label(index)
	f.drawText(int(x)-textWidth(label)/2, int(y)-8, label, labelColor)
}

// project projects four points and fails if any of them is behind the near plane
func project(cam *Camera, points [4]geometry.Vector3, width, height float64) ([4]screenPoint, bool) {
	var out [4]screenPoint
	for i, p := range points {
		x, y, z := cam.Project(p, width, height)
		if z < nearPlane {
			return out, false
		}
		out[i] = screenPoint{x: x, y: y, z: z}
	}
	return out, true
}

func indexOf(shapes []*scene.Shape, target *scene.Shape) int {
	for i, s := range shapes {
		if s == target {
			return i
		}
	}
	return -1
}
