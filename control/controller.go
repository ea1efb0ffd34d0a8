// Package control holds the controllers that drive tanks. A controller can
// be a keyboard zone, a gamepad, or anything else that answers with a
// rotation and an acceleration command.
package control

// Controller is the input source for one tank. MovementStatus returns the
// current rotation command and acceleration command, both in [-1, 1].
// Implementations must be safe to call from the simulation goroutine while
// the render thread feeds them.
type Controller interface {
	MovementStatus() (rotation, acceleration float64)
}

// Reverse gear is slower than forward, like the original game.
const reverseFactor = 0.6
