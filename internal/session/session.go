// Package session ties a layout to its scene and interaction controller, and
// reloads the layout from disk. Both window front ends drive their scene
// through a Session, so variant rules and reload behavior are the same in both.
package session

import (
	"log/slog"

	"github.com/philipparndt/gostack/internal/interaction"
	"github.com/philipparndt/gostack/internal/scene"
)

// Options configures a Session
type Options struct {
	Variant    scene.Variant    // forced variant; empty follows the layout file
	LayoutPath string           // optional YAML layout; empty uses the built-in preset
	View       interaction.View // camera orientation for camera-relative nudges
	Logger     *slog.Logger
}

// Session owns the current layout, its scene and the controller acting on it.
// It is not safe for concurrent use; call it from the UI goroutine only.
type Session struct {
	variant scene.Variant
	path    string
	view    interaction.View
	log     *slog.Logger

	layout     scene.Layout
	scene      *scene.Scene
	controller *interaction.Controller
}

// Change describes what a new layout replaced.
type Change struct {
	Variant bool // the variant switched and the controller was rebuilt for it
	Camera  bool // the start pose differs; front ends reset their camera
}

// New loads the layout and builds the scene and controller for it
func New(opts Options) (*Session, error) {
	layout, err := scene.LoadLayout(opts.LayoutPath, opts.Variant)
	if err != nil {
		return nil, err
	}

	s := &Session{
		variant: opts.Variant,
		path:    opts.LayoutPath,
		view:    opts.View,
		log:     opts.Logger,
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	s.SetLayout(layout)
	return s, nil
}

// Layout returns the active layout
func (s *Session) Layout() scene.Layout {
	return s.layout
}

// Scene returns the active scene
func (s *Session) Scene() *scene.Scene {
	return s.scene
}

// Controller returns the controller for the active scene
func (s *Session) Controller() *interaction.Controller {
	return s.controller
}

// Variant returns the active variant
func (s *Session) Variant() scene.Variant {
	return s.layout.Variant
}

// Path returns the layout file, or "" when running on a preset
func (s *Session) Path() string {
	return s.path
}

// SetLayout replaces the scene. The selection is cleared because it points
// into the old scene. A variant change rebuilds the controller with the new
// variant's drag buttons and nudger.
func (s *Session) SetLayout(layout scene.Layout) Change {
	first := s.controller == nil
	change := Change{
		Variant: !first && layout.Variant != s.layout.Variant,
		Camera:  !first && layout.Camera != s.layout.Camera,
	}

	s.layout = layout
	s.scene = scene.New(layout)

	if first || change.Variant {
		s.controller = interaction.NewController(s.scene, interaction.Options{
			DragButtons: DragButtons(layout.Variant),
			Nudger:      NudgerFor(layout.Variant, s.view),
			Logger:      s.log,
		})
	} else {
		s.controller.Reset(s.scene)
	}

	for _, v := range s.scene.CheckResting() {
		s.log.Warn("shape is not resting on its support", "detail", v.String())
	}
	return change
}

// Reload re-reads the layout file. On error the current scene stays untouched.
// Without a forced variant the file's variant applies, so editing it switches
// the variant in place.
func (s *Session) Reload() (Change, error) {
	layout, err := scene.LoadLayout(s.path, s.variant)
	if err != nil {
		return Change{}, err
	}

	change := s.SetLayout(layout)
	if change.Variant {
		s.log.Info("variant changed", "variant", layout.Variant)
	}
	s.log.Info("layout reloaded", "path", s.path, "shapes", len(layout.Shapes))
	return change, nil
}

// DragButtons returns the buttons that may start a drag in a variant.
// In the orbit variant the other buttons belong to the camera.
func DragButtons(v scene.Variant) []interaction.Button {
	if v == scene.VariantOrbit {
		return []interaction.Button{interaction.ButtonLeft}
	}
	return nil
}

// NudgerFor returns the arrow key strategy for a variant. The orbit variant
// moves relative to view, the fixed one along the world axes.
func NudgerFor(v scene.Variant, view interaction.View) interaction.Nudger {
	if v == scene.VariantOrbit && view != nil {
		return interaction.CameraNudger{View: view}
	}
	return interaction.AxisNudger{}
}
