package app

import (
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gostack/internal/orbit"
	"github.com/philipparndt/gostack/internal/scene"
	"github.com/philipparndt/gostack/internal/session"
	"github.com/philipparndt/gostack/pkg/watcher"
)

// CameraState holds all camera-related state
type CameraState struct {
	camera   rl.Camera3D
	controls *orbit.Controls
	orbiting bool // right button held, camera rotating
	panning  bool // left button held over empty space, camera panning
}

// SceneState holds the session that owns the layout, scene and controller
type SceneState struct {
	session *session.Session
}

// InteractionState holds mouse state between frames
type InteractionState struct {
	lastMousePos rl.Vector2
	hovered      *scene.Shape
}

// LayoutWatchState holds layout file watching and reload state
type LayoutWatchState struct {
	fileWatcher *watcher.FileWatcher
	needsReload atomic.Bool // set by the watcher goroutine, consumed by the render loop
	lastError   string
}

// UIState holds HUD settings
type UIState struct {
	showHelp bool
}
