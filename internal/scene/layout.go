package scene

import (
	"fmt"
	"math"
	"strings"

	"github.com/philipparndt/gostack/pkg/geometry"
	"github.com/philipparndt/gostack/pkg/placement"
)

// Variant selects between the two flavours of the demo.
type Variant string

const (
	// VariantOrbit has an orbit/pan camera and camera-relative arrow keys.
	VariantOrbit Variant = "orbit"
	// VariantFixed has a static camera and world-axis arrow keys.
	VariantFixed Variant = "fixed"
)

// DefaultVariant is used when neither the command line nor the layout file picks one.
const DefaultVariant = VariantOrbit

// ParseVariant converts a user-supplied name into a Variant
func ParseVariant(s string) (Variant, error) {
	switch Variant(strings.ToLower(strings.TrimSpace(s))) {
	case VariantOrbit:
		return VariantOrbit, nil
	case VariantFixed:
		return VariantFixed, nil
	case "":
		return "", nil
	default:
		return "", fmt.Errorf("unknown variant %q (expected %q or %q)", s, VariantOrbit, VariantFixed)
	}
}

// Floor is the slab the shapes stand on. Its top face is at y = 0.
type Floor struct {
	Size  geometry.Vector3
	Color Color
}

// Bounds returns the floor slab, centered so its top face is at y = 0
func (f Floor) Bounds() geometry.Box {
	return geometry.NewBox(geometry.Vector3{Y: -f.Size.Y / 2}, f.Size)
}

// Pad is a flat square drawn on top of the floor around the origin.
type Pad struct {
	Size  float64
	Color Color
}

// CameraPose is the initial camera placement. Fovy is the vertical field of view in degrees.
type CameraPose struct {
	Position geometry.Vector3
	Target   geometry.Vector3
	Fovy     float64
}

// Light is a directional light plus a uniform ambient term.
type Light struct {
	Position  geometry.Vector3 // the light shines from here towards the origin
	Intensity float64
	Ambient   float64
}

// Shade lights a face with the given outward normal. The directional term is
// added to the ambient one and the sum is clamped to full brightness.
func (l Light) Shade(c Color, normal geometry.Vector3) Color {
	diffuse := math.Max(0, normal.Dot(l.Position.Normalize())) * l.Intensity
	intensity := math.Min(1, l.Ambient+diffuse)

	scale := func(v uint8) uint8 {
		return uint8(math.Round(float64(v) * intensity))
	}
	return Color{R: scale(c.R), G: scale(c.G), B: scale(c.B)}
}

// Layout is everything needed to set up a scene.
type Layout struct {
	Variant    Variant
	GridSize   float64
	Background Color
	Floor      Floor
	Pad        *Pad
	Camera     CameraPose
	Light      Light
	Shapes     []Shape
}

func cube(size geometry.Vector3, x, y, z float64, color uint32, name string) Shape {
	return Shape{
		Name:     name,
		Position: geometry.NewVector3(x, y, z),
		Size:     size,
		Color:    Hex(color),
	}
}

var (
	size111 = geometry.NewVector3(100, 100, 100)
	size221 = geometry.NewVector3(200, 200, 100)
	size122 = geometry.NewVector3(100, 200, 200)
	size212 = geometry.NewVector3(200, 100, 200)
)

// Preset returns the built-in layout for a variant.
func Preset(v Variant) Layout {
	if v == VariantFixed {
		return fixedPreset()
	}
	return orbitPreset()
}

func orbitPreset() Layout {
	return Layout{
		Variant:    VariantOrbit,
		GridSize:   placement.DefaultGridSize,
		Background: Hex(0x00395e),
		Floor:      Floor{Size: geometry.NewVector3(1000, 10, 1000), Color: Hex(0x7f828f)},
		Pad:        &Pad{Size: 300, Color: Hex(0xcfd0d5)},
		Camera: CameraPose{
			Position: geometry.NewVector3(50, 600, 800),
			Fovy:     75,
		},
		Light: Light{Position: geometry.NewVector3(500, 1000, 750), Intensity: 1, Ambient: 0.5},
		Shapes: []Shape{
			cube(size111, -75, 50, -300, 0xdfa1e4, "cube top left"),
			cube(size111, 75, 50, -300, 0x7638b3, "cube top right"),
			cube(size111, 0, 50, 350, 0xdfa1e4, "cube bottom center"),

			cube(size221, -350, 100, -300, 0xa4e574, "left back"),
			cube(size122, -350, 100, 0, 0x6e90bf, "left center"),
			cube(size212, -350, 50, 350, 0xffb400, "left front"),

			cube(size221, 350, 100, -300, 0xffb400, "right back"),
			cube(size122, 350, 100, 0, 0xa4e574, "right center"),
			cube(size212, 350, 50, 350, 0x6e90bf, "right front"),
		},
	}
}

func fixedPreset() Layout {
	return Layout{
		Variant:    VariantFixed,
		GridSize:   placement.DefaultGridSize,
		Background: Hex(0x000000),
		Floor:      Floor{Size: geometry.NewVector3(1000, 10, 1000), Color: Hex(0x888888)},
		Camera: CameraPose{
			Position: geometry.NewVector3(0, 600, 800),
			Fovy:     75,
		},
		Light: Light{Position: geometry.NewVector3(500, 1000, 750), Intensity: 1, Ambient: 0.5},
		Shapes: []Shape{
			cube(size111, -250, 50, 0, 0x44aa88, "cube 1"),
			cube(size111, 0, 50, 0, 0xaa8844, "cube 2"),
			cube(size111, 250, 50, 0, 0x8844aa, "cube 3"),

			cube(size221, 0, 100, 250, 0x2288cc, "wall 1"),
			cube(size221, 200, 100, 250, 0x2299ee, "wall 2"),

			cube(size122, 350, 100, -250, 0xcc2288, "pillar 1"),
			cube(size122, 550, 100, -250, 0xdd44bb, "pillar 2"),

			cube(size212, -350, 50, -250, 0x22cc88, "slab 1"),
			cube(size212, -550, 50, -250, 0x33eeaa, "slab 2"),
		},
	}
}
