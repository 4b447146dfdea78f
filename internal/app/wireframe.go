package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gostack/pkg/geometry"
)

// outlineGrow pushes the outline slightly outside the box so it is not hidden by the faces
const outlineGrow = 0.5

// drawWireframe draws the edges of a box
func drawWireframe(b geometry.Box, color rl.Color) {
	for _, e := range b.Grow(outlineGrow).Edges() {
		rl.DrawLine3D(toRender(e[0]), toRender(e[1]), color)
	}
}
