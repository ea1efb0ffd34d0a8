package control

import "sync"

// GamepadState is the polled state of one gamepad: d-pad buttons plus the
// left analog stick (deadzone already applied by the poller).
type GamepadState struct {
	DPadUp, DPadDown, DPadLeft, DPadRight bool
	StickX, StickY                        float64
}

// Gamepad is a controller fed by gamepad polling on the game thread,
// mirroring Keyboard. Stick input wins over the d-pad when both are active.
type Gamepad struct {
	mu    sync.Mutex
	state GamepadState
}

func NewGamepad() *Gamepad {
	return &Gamepad{}
}

// SetState publishes the polled gamepad state. Called once per frame.
func (g *Gamepad) SetState(s GamepadState) {
	g.mu.Lock()
	g.state = s
	g.mu.Unlock()
}

func (g *Gamepad) MovementStatus() (float64, float64) {
	g.mu.Lock()
	s := g.state
	g.mu.Unlock()

	rotation := s.StickX
	if rotation == 0 {
		if s.DPadRight {
			rotation += 1
		}
		if s.DPadLeft {
			rotation -= 1
		}
	}

	// Stick up is negative Y on the standard layout.
	acceleration := -s.StickY
	if acceleration == 0 {
		if s.DPadUp {
			acceleration += 1
		}
		if s.DPadDown {
			acceleration -= reverseFactor
		}
	}

	return clamp(rotation), clamp(acceleration)
}

func clamp(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
