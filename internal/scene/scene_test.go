package scene

import (
	"testing"

	"github.com/philipparndt/gostack/pkg/geometry"
)

func twoCubes() *Scene {
	return New(Layout{
		GridSize: 10,
		Shapes: []Shape{
			{Name: "a", Position: geometry.NewVector3(-250, 50, 0), Size: size111},
			{Name: "b", Position: geometry.NewVector3(0, 50, 0), Size: size111},
		},
	})
}

func TestNewCopiesShapes(t *testing.T) {
	layout := Preset(VariantFixed)
	s := New(layout)
	s.Shapes[0].Position.X = 12345

	if layout.Shapes[0].Position.X == 12345 {
		t.Error("scene must not alias the layout's shapes")
	}
	if len(s.Shapes) != len(layout.Shapes) {
		t.Errorf("expected %d shapes, got %d", len(layout.Shapes), len(s.Shapes))
	}
}

func TestPickReturnsNearest(t *testing.T) {
	s := twoCubes()

	// Looking along +x from the far left, "a" is hit first.
	ray := geometry.Ray{Origin: geometry.NewVector3(-1000, 50, 0), Direction: geometry.NewVector3(1, 0, 0)}
	got, ok := s.Pick(ray)
	if !ok || got.Name != "a" {
		t.Errorf("expected to pick a, got %v %v", got, ok)
	}

	// Looking along -x from the far right, "b" is hit first.
	ray = geometry.Ray{Origin: geometry.NewVector3(1000, 50, 0), Direction: geometry.NewVector3(-1, 0, 0)}
	got, ok = s.Pick(ray)
	if !ok || got.Name != "b" {
		t.Errorf("expected to pick b, got %v %v", got, ok)
	}
}

func TestPickMiss(t *testing.T) {
	s := twoCubes()
	ray := geometry.Ray{Origin: geometry.NewVector3(0, 500, 500), Direction: geometry.NewVector3(0, 1, 0)}

	if got, ok := s.Pick(ray); ok {
		t.Errorf("expected no hit, got %v", got)
	}
}

func TestOthersExcludesTarget(t *testing.T) {
	s := twoCubes()
	others := s.Others(s.Shapes[0])

	if len(others) != 1 {
		t.Fatalf("expected 1 other shape, got %d", len(others))
	}
	if others[0] != s.Shapes[1].Bounds() {
		t.Errorf("expected bounds of b, got %v", others[0])
	}
}

func TestPlaceStacksOnOverlap(t *testing.T) {
	s := twoCubes()
	a, b := s.Shapes[0], s.Shapes[1]

	got := s.Place(a, geometry.NewVector3(3, 0, -4))
	if got != geometry.NewVector3(0, 150, 0) {
		t.Errorf("expected a to stack on b at (0,150,0), got %v", got)
	}
	if a.Position != got {
		t.Errorf("Place must write the position, got %v", a.Position)
	}

	// Moving b away leaves it on the floor even though a is now above it.
	got = s.Place(b, geometry.NewVector3(300, 0, 0))
	if got.Y != 50 {
		t.Errorf("expected b back on the floor, got %v", got)
	}
}

func TestPlaceSkipsNonOverlapping(t *testing.T) {
	s := twoCubes()
	a := s.Shapes[0]

	// Half-width sum is 100, so a centered at x=-100 only touches b.
	got := s.Place(a, geometry.NewVector3(-100, 0, 0))
	if got.Y != 50 {
		t.Errorf("touching shapes must not stack, got %v", got)
	}
}

func TestIndex(t *testing.T) {
	s := twoCubes()
	if s.Index(s.Shapes[1]) != 1 {
		t.Errorf("expected index 1")
	}
	if s.Index(&Shape{}) != -1 {
		t.Errorf("expected -1 for a foreign shape")
	}
}

func TestPresetsAreResting(t *testing.T) {
	for _, v := range []Variant{VariantOrbit, VariantFixed} {
		s := New(Preset(v))
		if violations := s.CheckResting(); len(violations) != 0 {
			t.Errorf("%s preset has resting violations: %v", v, violations)
		}
	}
}

func TestCheckRestingAcceptsStacks(t *testing.T) {
	s := twoCubes()
	s.Place(s.Shapes[0], geometry.NewVector3(0, 0, 0))

	if violations := s.CheckResting(); len(violations) != 0 {
		t.Errorf("a stacked tower should be valid, got %v", violations)
	}
}

func TestCheckRestingReportsFloatingAndIntersecting(t *testing.T) {
	s := twoCubes()
	s.Shapes[0].Position.Y = 80

	violations := s.CheckResting()
	if len(violations) != 1 || violations[0].Shape != s.Shapes[0] || violations[0].Expected != 50 {
		t.Fatalf("expected a floating violation for a, got %v", violations)
	}

	s = twoCubes()
	s.Shapes[0].Position = geometry.NewVector3(0, 50, 0)
	violations = s.CheckResting()
	if len(violations) != 2 {
		t.Fatalf("expected both shapes to report an intersection, got %v", violations)
	}
	for _, v := range violations {
		if v.Overlaps == nil {
			t.Errorf("expected an intersection violation, got %v", v)
		}
	}
}
