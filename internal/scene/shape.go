package scene

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/philipparndt/gostack/pkg/geometry"
)

// Color is an opaque RGB color.
type Color struct {
	R, G, B uint8
}

// Hex builds a color from a 0xRRGGBB literal
func Hex(rgb uint32) Color {
	return Color{R: uint8(rgb >> 16), G: uint8(rgb >> 8), B: uint8(rgb)}
}

// ParseColor accepts "#rrggbb", "0xrrggbb" or "rrggbb".
func ParseColor(s string) (Color, error) {
	raw := strings.TrimSpace(s)
	raw = strings.TrimPrefix(raw, "#")
	raw = strings.TrimPrefix(strings.TrimPrefix(raw, "0x"), "0X")
	if len(raw) != 6 {
		return Color{}, fmt.Errorf("invalid color %q: expected 6 hex digits", s)
	}
	v, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Hex(uint32(v)), nil
}

// String formats the color as #rrggbb
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Shape is a rigid box in the scene. Only Position changes after creation.
type Shape struct {
	Name     string
	Position geometry.Vector3 // center of the box
	Size     geometry.Vector3 // full width, height, depth
	Color    Color
}

// Half returns the half-extents of the shape
func (s *Shape) Half() geometry.Vector3 {
	return s.Size.Mul(0.5)
}

// Bounds returns the world-space bounding box at the current position
func (s *Shape) Bounds() geometry.Box {
	return geometry.Box{Center: s.Position, Half: s.Half()}
}

// Label returns the name, or a positional fallback when the shape is unnamed.
func (s *Shape) Label(index int) string {
	if s.Name != "" {
		return s.Name
	}
	return fmt.Sprintf("shape %d", index+1)
}
