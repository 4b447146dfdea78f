package interaction

import (
	"math"
	"testing"

	"github.com/philipparndt/gostack/internal/scene"
	"github.com/philipparndt/gostack/pkg/geometry"
)

type fixedView struct {
	forward geometry.Vector3
}

func (v fixedView) Forward() geometry.Vector3  { return v.forward }
func (v fixedView) CameraUp() geometry.Vector3 { return geometry.Up }

func near(a, b geometry.Vector3) bool {
	return a.Distance(b) < 1e-9
}

func TestAxisNudger(t *testing.T) {
	n := AxisNudger{}
	want := map[Key]geometry.Vector3{
		KeyLeft:  {X: -10},
		KeyRight: {X: 10},
		KeyUp:    {Z: -10},
		KeyDown:  {Z: 10},
	}
	for key, w := range want {
		got, ok := n.Step(key, 10)
		if !ok || got != w {
			t.Errorf("Step(%v) = %v, want %v", key, got, w)
		}
	}
	if _, ok := n.Step(Key(42), 10); ok {
		t.Error("unknown key must not move")
	}
}

func TestCameraNudgerLookingDownNegativeZ(t *testing.T) {
	// Default camera pose: above and in front of the origin, looking at it.
	n := CameraNudger{View: fixedView{forward: geometry.NewVector3(0, -600, -800)}}

	tests := map[Key]geometry.Vector3{
		KeyUp:    {Z: -10},
		KeyDown:  {Z: 10},
		KeyLeft:  {X: -10},
		KeyRight: {X: 10},
	}
	for key, want := range tests {
		got, ok := n.Step(key, 10)
		if !ok || !near(got, want) {
			t.Errorf("Step(%v) = %v, want %v", key, got, want)
		}
	}
}

func TestCameraNudgerRotatedView(t *testing.T) {
	// Looking along +x from the left side of the scene.
	n := CameraNudger{View: fixedView{forward: geometry.NewVector3(1, -0.5, 0)}}

	up, _ := n.Step(KeyUp, 10)
	if !near(up, geometry.Vector3{X: 10}) {
		t.Errorf("up should follow the view direction, got %v", up)
	}
	left, _ := n.Step(KeyLeft, 10)
	if !near(left, geometry.Vector3{Z: -10}) {
		t.Errorf("left should be up x forward, got %v", left)
	}

	for _, key := range []Key{KeyUp, KeyDown, KeyLeft, KeyRight} {
		step, _ := n.Step(key, 10)
		if step.Y != 0 || math.Abs(step.Length()-10) > 1e-9 {
			t.Errorf("step for %v must be horizontal with length 10, got %v", key, step)
		}
	}
}

func TestControllerUsesCameraNudger(t *testing.T) {
	s := scene.New(scene.Layout{
		GridSize: 10,
		Shapes:   []scene.Shape{{Name: "a", Position: geometry.NewVector3(0, 50, 0), Size: cubeSize}},
	})
	c := NewController(s, Options{Nudger: CameraNudger{View: fixedView{forward: geometry.NewVector3(1, -0.5, 0)}}})
	c.PointerDown(down(0, 0), ButtonLeft)
	c.PointerUp()

	c.KeyDown(KeyUp)
	if s.Shapes[0].Position != geometry.NewVector3(10, 50, 0) {
		t.Errorf("expected (10,50,0), got %v", s.Shapes[0].Position)
	}

	// A diagonal view moves by 7.07 on each axis, which snaps to a full step.
	c2 := NewController(s, Options{Nudger: CameraNudger{View: fixedView{forward: geometry.NewVector3(1, -1, 1)}}})
	c2.PointerDown(down(10, 0), ButtonLeft)
	c2.KeyDown(KeyUp)
	if s.Shapes[0].Position != geometry.NewVector3(20, 50, 10) {
		t.Errorf("expected (20,50,10), got %v", s.Shapes[0].Position)
	}
}
