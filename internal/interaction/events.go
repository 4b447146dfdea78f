package interaction

import "github.com/philipparndt/gostack/pkg/geometry"

// Button identifies a pointer button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

// Key is a directional key that nudges the selected shape.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	default:
		return "unknown"
	}
}

// Handler consumes input events. Every method runs to completion on the
// render loop goroutine; implementations are not safe for concurrent use.
type Handler interface {
	// PointerDown is called when a button is pressed; ray goes from the camera through the pointer.
	PointerDown(ray geometry.Ray, button Button)
	// PointerMove is called whenever the pointer moves.
	PointerMove(ray geometry.Ray)
	// PointerUp is called when any button is released.
	PointerUp()
	// KeyDown is called for every directional key press, including auto-repeat.
	KeyDown(key Key)
}
