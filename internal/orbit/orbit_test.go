package orbit

import (
	"math"
	"testing"

	"github.com/philipparndt/gostack/pkg/geometry"
)

func newTestControls() *Controls {
	return New(geometry.NewVector3(0, 600, 800), geometry.Vector3{}, 75)
}

func settle(c *Controls) {
	for i := 0; i < 1000; i++ {
		c.Update()
	}
}

func TestUpdateWithoutInputKeepsPose(t *testing.T) {
	c := New(geometry.NewVector3(50, 600, 800), geometry.Vector3{}, 75)
	start := c.Position

	for i := 0; i < 100; i++ {
		c.Update()
	}
	if c.Position.Distance(start) > 1e-6 {
		t.Errorf("camera drifted from %v to %v", start, c.Position)
	}
	if c.Moving() {
		t.Error("no motion should be queued")
	}
}

func TestForward(t *testing.T) {
	c := newTestControls()
	want := geometry.NewVector3(0, -0.6, -0.8)
	if c.Forward().Distance(want) > 1e-12 {
		t.Errorf("Forward = %v, want %v", c.Forward(), want)
	}
	if c.Right().Distance(geometry.NewVector3(1, 0, 0)) > 1e-12 {
		t.Errorf("Right = %v, want +x", c.Right())
	}
	if c.CameraUp() != geometry.Up {
		t.Errorf("CameraUp = %v", c.CameraUp())
	}
}

func TestRotateOrbitsAroundTarget(t *testing.T) {
	c := newTestControls()
	radius := c.Distance()

	// A quarter of the viewport height turns a quarter circle.
	c.Rotate(250, 0, 1000)
	if !c.Moving() {
		t.Fatal("rotation should be queued")
	}
	c.Update()
	if math.Abs(c.Distance()-radius) > 1e-9 {
		t.Errorf("rotation changed the distance: %v != %v", c.Distance(), radius)
	}
	settle(c)

	// theta went from 0 to -pi/2: the camera is now on the -x side.
	want := geometry.NewVector3(-800, 600, 0)
	if c.Position.Distance(want) > 1e-6 {
		t.Errorf("expected camera at %v, got %v", want, c.Position)
	}
	if c.Moving() {
		t.Error("motion should have settled")
	}
}

func TestDampingSpreadsMotion(t *testing.T) {
	c := newTestControls()
	c.Rotate(250, 0, 1000)
	c.Update()

	theta := math.Atan2(c.Position.X, c.Position.Z)
	if want := -math.Pi / 2 * DefaultDampingFactor; math.Abs(theta-want) > 1e-9 {
		t.Errorf("first frame should apply %v, got %v", want, theta)
	}

	c = newTestControls()
	c.EnableDamping = false
	c.Rotate(250, 0, 1000)
	c.Update()
	if c.Position.Distance(geometry.NewVector3(-800, 600, 0)) > 1e-6 {
		t.Errorf("without damping the rotation applies at once, got %v", c.Position)
	}
	if c.Moving() {
		t.Error("nothing should remain queued without damping")
	}
}

func TestRotateClampsAtThePoles(t *testing.T) {
	c := newTestControls()
	c.EnableDamping = false
	c.Rotate(0, 5000, 1000)
	c.Update()

	if c.Position.Y <= 0 {
		t.Fatalf("camera should stay above the target, got %v", c.Position)
	}
	horizontal := math.Hypot(c.Position.X, c.Position.Z)
	if horizontal > 1e-2 {
		t.Errorf("camera should sit right above the target, horizontal offset %v", horizontal)
	}

	c.Rotate(0, -10000, 1000)
	c.Update()
	if c.Position.Y >= 0 {
		t.Errorf("camera should be below the target, got %v", c.Position)
	}
}

func TestPanMovesTargetAndCamera(t *testing.T) {
	c := newTestControls()
	c.EnableDamping = false
	distance := c.Distance()

	c.Pan(100, 0, 1000)
	c.Update()

	// Dragging right moves the view left: target shifts towards -x.
	if c.Target.X >= 0 || math.Abs(c.Target.Y) > 1e-9 || math.Abs(c.Target.Z) > 1e-9 {
		t.Errorf("unexpected target after pan: %v", c.Target)
	}
	halfHeight := distance * math.Tan(75.0/2*math.Pi/180)
	if want := -2 * 100 * halfHeight / 1000; math.Abs(c.Target.X-want) > 1e-9 {
		t.Errorf("target x = %v, want %v", c.Target.X, want)
	}
	if math.Abs(c.Distance()-distance) > 1e-9 {
		t.Errorf("pan changed the distance: %v != %v", c.Distance(), distance)
	}
	if math.Abs(c.Position.X-c.Target.X) > 1e-9 {
		t.Errorf("camera and target should move together: %v vs %v", c.Position, c.Target)
	}
}

func TestDisabledControlsIgnoreInput(t *testing.T) {
	c := newTestControls()
	c.Enabled = false
	c.Rotate(100, 100, 1000)
	c.Pan(100, 100, 1000)
	if c.Moving() {
		t.Error("disabled controls must not queue motion")
	}

	c = newTestControls()
	c.EnablePan = false
	c.Pan(100, 100, 1000)
	if c.Moving() {
		t.Error("pan must be ignored when disabled")
	}
}

func TestZoomDisabledByDefault(t *testing.T) {
	c := newTestControls()
	distance := c.Distance()
	c.Zoom(3)
	c.Update()
	if math.Abs(c.Distance()-distance) > 1e-9 {
		t.Errorf("zoom should be disabled, distance changed to %v", c.Distance())
	}

	c.EnableZoom = true
	c.Zoom(1)
	c.Update()
	if math.Abs(c.Distance()-distance*0.95) > 1e-9 {
		t.Errorf("expected distance %v, got %v", distance*0.95, c.Distance())
	}
}

func TestStop(t *testing.T) {
	c := newTestControls()
	c.Rotate(100, 0, 1000)
	c.Pan(10, 10, 1000)
	c.Stop()
	if c.Moving() {
		t.Error("Stop must clear queued motion")
	}
}
