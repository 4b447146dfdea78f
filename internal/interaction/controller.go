// Package interaction turns pointer and keyboard events into shape moves:
// picking, dragging on a horizontal plane with grid snapping, and arrow-key
// nudges, all settled with the same stacking rule.
package interaction

import (
	"log/slog"

	"github.com/philipparndt/gostack/internal/scene"
	"github.com/philipparndt/gostack/pkg/geometry"
)

// State is the drag state of a Controller.
type State int

const (
	StateIdle State = iota
	StateDragging
)

func (s State) String() string {
	if s == StateDragging {
		return "dragging"
	}
	return "idle"
}

// Options configures a Controller.
type Options struct {
	// DragButtons lists the buttons allowed to start a drag. Empty means any button.
	DragButtons []Button
	// Nudger resolves arrow keys. Defaults to AxisNudger.
	Nudger Nudger
	Logger *slog.Logger
}

// Controller owns the selection and drag session for one scene.
type Controller struct {
	scene  *scene.Scene
	nudger Nudger
	log    *slog.Logger
	drag   map[Button]bool // nil accepts every button

	state        State
	selected     *scene.Shape // shape being dragged
	lastSelected *scene.Shape // target for keyboard nudges, kept after the drag ends
	dragPlane    geometry.Plane
	dragOffset   geometry.Vector3
}

var _ Handler = (*Controller)(nil)

// NewController creates an idle controller for s
func NewController(s *scene.Scene, opts Options) *Controller {
	c := &Controller{
		scene:  s,
		nudger: opts.Nudger,
		log:    opts.Logger,
	}
	if c.nudger == nil {
		c.nudger = AxisNudger{}
	}
	if c.log == nil {
		c.log = slog.Default()
	}
	if len(opts.DragButtons) > 0 {
		c.drag = make(map[Button]bool, len(opts.DragButtons))
		for _, b := range opts.DragButtons {
			c.drag[b] = true
		}
	}
	return c
}

// State returns the current drag state
func (c *Controller) State() State {
	return c.state
}

// Dragging reports whether a shape is being dragged
func (c *Controller) Dragging() bool {
	return c.state == StateDragging
}

// Selected returns the shape being dragged, or nil
func (c *Controller) Selected() *scene.Shape {
	return c.selected
}

// LastSelected returns the most recently picked shape, or nil
func (c *Controller) LastSelected() *scene.Shape {
	return c.lastSelected
}

// Reset drops all selection state, e.g. after the scene was replaced.
func (c *Controller) Reset(s *scene.Scene) {
	c.scene = s
	c.state = StateIdle
	c.selected = nil
	c.lastSelected = nil
	c.dragOffset = geometry.Vector3{}
}

// PointerDown picks the nearest shape under the pointer and starts dragging it.
func (c *Controller) PointerDown(ray geometry.Ray, button Button) {
	if c.drag != nil && !c.drag[button] {
		return
	}

	shape, ok := c.scene.Pick(ray)
	if !ok {
		return
	}

	c.selected = shape
	c.lastSelected = shape
	c.state = StateDragging
	c.dragPlane = geometry.NewHorizontalPlane(shape.Position.Y)

	// Keep the grab point under the pointer instead of jumping to the shape center.
	c.dragOffset = geometry.Vector3{}
	if hit, ok := ray.IntersectPlane(c.dragPlane); ok {
		c.dragOffset = hit.Sub(shape.Position)
	}

	c.log.Debug("drag started", "shape", shape.Label(c.scene.Index(shape)), "position", shape.Position)
}

// PointerMove drags the selected shape across the drag plane.
func (c *Controller) PointerMove(ray geometry.Ray) {
	if c.state != StateDragging || c.selected == nil {
		return
	}

	hit, ok := ray.IntersectPlane(c.dragPlane)
	if !ok {
		return
	}
	c.scene.Place(c.selected, hit.Sub(c.dragOffset))
}

// PointerUp ends the drag. The shape stays where it was last placed.
func (c *Controller) PointerUp() {
	if c.state == StateDragging && c.selected != nil {
		c.log.Debug("drag ended", "shape", c.selected.Label(c.scene.Index(c.selected)), "position", c.selected.Position)
	}
	c.state = StateIdle
	c.selected = nil
}

// KeyDown moves the last selected shape one grid step in the key's direction.
func (c *Controller) KeyDown(key Key) {
	shape := c.lastSelected
	if shape == nil {
		return
	}

	step, ok := c.nudger.Step(key, c.scene.Grid.Size)
	if !ok {
		return
	}

	pos := c.scene.Place(shape, shape.Position.Add(step))
	c.log.Debug("nudged", "shape", shape.Label(c.scene.Index(shape)), "key", key, "position", pos)
}
