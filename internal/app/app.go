// Package app runs the interactive window: it loads the layout, feeds raylib
// input into the interaction controller and draws the scene every frame.
package app

import (
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gostack/internal/scene"
	"github.com/philipparndt/gostack/internal/session"
)

// Options configures the viewer
type Options struct {
	Variant    scene.Variant // empty: taken from the layout file, else the default
	LayoutPath string        // optional YAML layout; empty uses the built-in preset
	Watch      bool          // reload the layout file when it changes
	Width      int32
	Height     int32
	Logger     *slog.Logger
}

type App struct {
	Camera      CameraState
	Scene       SceneState
	Interaction InteractionState
	LayoutWatch LayoutWatchState
	UI          UIState

	log *slog.Logger
}

// Run opens the window and blocks until it is closed
func Run(opts Options) error {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	app := &App{
		UI:  UIState{showHelp: true},
		log: log,
	}

	s, err := session.New(session.Options{
		Variant:    opts.Variant,
		LayoutPath: opts.LayoutPath,
		View:       cameraView{app: app},
		Logger:     log,
	})
	if err != nil {
		return fmt.Errorf("failed to load layout: %w", err)
	}
	app.Scene.session = s
	log.Info("scene ready", "variant", s.Variant(), "shapes", len(s.Scene().Shapes))

	if opts.Watch && opts.LayoutPath != "" {
		if err := app.setupLayoutWatcher(); err != nil {
			log.Warn("failed to set up layout watching, auto-reload will not be available", "err", err)
		} else {
			defer app.LayoutWatch.fileWatcher.Close()
		}
	}

	width, height := opts.Width, opts.Height
	if width <= 0 {
		width = 1400
	}
	if height <= 0 {
		height = 900
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(width, height, "gostack")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	app.resetCamera()

	for !rl.WindowShouldClose() {
		if app.LayoutWatch.needsReload.Swap(false) {
			app.reloadLayout()
		}

		// Update
		app.handleInput()
		app.updateCamera()

		// Draw
		rl.BeginDrawing()
		rl.ClearBackground(rlColor(app.Scene.session.Layout().Background))

		rl.BeginMode3D(app.Camera.camera)
		app.drawScene()
		rl.EndMode3D()

		app.drawUI()

		rl.EndDrawing()
	}

	return nil
}
