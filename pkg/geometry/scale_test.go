package geometry

import (
	"math"
	"testing"
)

func TestScaleRoundTrip(t *testing.T) {
	s := Scale(0.01)
	world := NewVector3(50, 600, 800)

	render := s.ToRender(world)
	if !vectorsClose(render, NewVector3(0.5, 6, 8)) {
		t.Errorf("ToRender(%v) = %v, want (0.5, 6, 8)", world, render)
	}
	if back := s.ToWorld(render); !vectorsClose(back, world) {
		t.Errorf("round trip: expected %v, got %v", world, back)
	}
}

func TestScaleWorldRayHitsSameBox(t *testing.T) {
	s := Scale(0.01)
	box := NewBox(NewVector3(200, 50, -100), NewVector3(100, 100, 100))

	// A camera placed in render space, looking at the box center in render space.
	camera := s.ToRender(NewVector3(0, 600, 800))
	direction := s.ToRender(box.Center).Sub(camera)

	ray := s.WorldRay(camera, direction)
	if !vectorsClose(ray.Origin, NewVector3(0, 600, 800)) {
		t.Errorf("origin not converted to world space: %v", ray.Origin)
	}
	if math.Abs(ray.Direction.Length()-1) > 1e-9 {
		t.Errorf("direction not normalized: %v", ray.Direction)
	}

	dist, ok := ray.IntersectBox(box)
	if !ok {
		t.Fatal("world ray misses the box it was aimed at")
	}
	want := NewVector3(0, 600, 800).Distance(box.Center)
	if dist <= 0 || dist >= want {
		t.Errorf("hit distance %v should be positive and before the center at %v", dist, want)
	}

	// Using the render-space ray directly would miss the world-space box.
	if _, ok := (Ray{Origin: camera, Direction: direction.Normalize()}).IntersectBox(box); ok {
		t.Error("unscaled render ray should not hit the world-space box")
	}
}

func vectorsClose(a, b Vector3) bool {
	return a.Distance(b) < 1e-9
}
