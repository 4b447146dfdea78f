package app

import (
	"fmt"
	"time"

	"github.com/philipparndt/gostack/pkg/watcher"
)

// reloadDebounce coalesces the burst of events an editor produces on save
const reloadDebounce = 300 * time.Millisecond

// setupLayoutWatcher watches the layout file and flags it for reload on change
func (app *App) setupLayoutWatcher() error {
	path := app.Scene.session.Path()

	fw, err := watcher.NewFileWatcher(reloadDebounce, app.log)
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	if err := fw.Watch([]string{path}, func(changed string) {
		app.log.Debug("layout changed", "path", changed)
		app.LayoutWatch.needsReload.Store(true)
	}); err != nil {
		fw.Close()
		return err
	}

	fw.Start()
	app.LayoutWatch.fileWatcher = fw
	app.log.Info("watching layout for changes", "path", path)
	return nil
}

// reloadLayout re-reads the layout file on the render loop goroutine.
// A broken file keeps the current scene and shows the error in the HUD.
func (app *App) reloadLayout() {
	change, err := app.Scene.session.Reload()
	if err != nil {
		app.LayoutWatch.lastError = err.Error()
		app.log.Warn("layout reload failed", "err", err)
		return
	}

	app.LayoutWatch.lastError = ""
	app.Interaction.hovered = nil
	if change.Variant || change.Camera {
		app.resetCamera()
	}
}
