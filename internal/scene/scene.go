package scene

import (
	"fmt"
	"math"

	"github.com/philipparndt/gostack/pkg/geometry"
	"github.com/philipparndt/gostack/pkg/placement"
)

// restingTolerance absorbs float noise when checking loaded layouts.
const restingTolerance = 1e-6

// Scene owns the ordered shape collection used for picking and stacking.
type Scene struct {
	Shapes []*Shape
	Grid   placement.Grid
}

// New builds a scene from a layout. Shapes are copied so the layout stays untouched.
func New(layout Layout) *Scene {
	s := &Scene{
		Shapes: make([]*Shape, 0, len(layout.Shapes)),
		Grid:   placement.NewGrid(layout.GridSize),
	}
	for _, shape := range layout.Shapes {
		shape := shape
		s.Shapes = append(s.Shapes, &shape)
	}
	return s
}

// Pick returns the shape nearest to the ray origin that the ray hits.
func (s *Scene) Pick(ray geometry.Ray) (*Shape, bool) {
	var nearest *Shape
	best := math.Inf(1)
	for _, shape := range s.Shapes {
		t, ok := ray.IntersectBox(shape.Bounds())
		if ok && t < best {
			best = t
			nearest = shape
		}
	}
	return nearest, nearest != nil
}

// Others returns the bounds of every shape except target.
func (s *Scene) Others(target *Shape) []geometry.Box {
	boxes := make([]geometry.Box, 0, len(s.Shapes))
	for _, shape := range s.Shapes {
		if shape == target {
			continue
		}
		boxes = append(boxes, shape.Bounds())
	}
	return boxes
}

// Resolve computes where target would rest if moved to the horizontal position of p.
func (s *Scene) Resolve(target *Shape, p geometry.Vector3) geometry.Vector3 {
	return placement.Resolve(s.Grid, target.Half(), p, s.Others(target))
}

// Place moves target to the snapped horizontal position of p and settles it
// on whatever it overlaps.
func (s *Scene) Place(target *Shape, p geometry.Vector3) geometry.Vector3 {
	target.Position = s.Resolve(target, p)
	return target.Position
}

// Index returns the position of shape in the collection, or -1.
func (s *Scene) Index(target *Shape) int {
	for i, shape := range s.Shapes {
		if shape == target {
			return i
		}
	}
	return -1
}

// RestingViolation describes a shape that is not sitting on its support.
type RestingViolation struct {
	Index    int
	Shape    *Shape
	Expected float64 // resting height for the shape's footprint
	Overlaps *Shape  // set when the shape interpenetrates another one

	overlapsIndex int
}

func (v RestingViolation) String() string {
	if v.Overlaps != nil {
		return fmt.Sprintf("%s: intersects %s", v.Shape.Label(v.Index), v.Overlaps.Label(v.overlapsIndex))
	}
	return fmt.Sprintf("%s: y=%.2f, expected %.2f", v.Shape.Label(v.Index), v.Shape.Position.Y, v.Expected)
}

// CheckResting reports shapes that float, sink into their support or
// interpenetrate another shape. A shape is supported by the overlapping
// shapes lying entirely below it, so a stack checks out bottom to top.
func (s *Scene) CheckResting() []RestingViolation {
	var violations []RestingViolation
	for i, shape := range s.Shapes {
		bounds := shape.Bounds()
		var supports []geometry.Box
		var intersecting *Shape
		intersectingIndex := -1
		for j, other := range s.Shapes {
			if other == shape {
				continue
			}
			ob := other.Bounds()
			if !bounds.OverlapsXZ(ob) {
				continue
			}
			switch {
			case ob.Top() <= bounds.Bottom()+restingTolerance:
				supports = append(supports, ob)
			case ob.Bottom() >= bounds.Top()-restingTolerance:
				// resting on top of this shape
			default:
				if intersecting == nil {
					intersecting = other
					intersectingIndex = j
				}
			}
		}

		want := placement.RestingHeight(shape.Half(), shape.Position.X, shape.Position.Z, supports)
		if intersecting != nil {
			violations = append(violations, RestingViolation{Index: i, Shape: shape, Expected: want, Overlaps: intersecting, overlapsIndex: intersectingIndex})
			continue
		}
		if math.Abs(shape.Position.Y-want) > restingTolerance {
			violations = append(violations, RestingViolation{Index: i, Shape: shape, Expected: want})
		}
	}
	return violations
}
