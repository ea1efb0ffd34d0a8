package control

import "sync"

// KeyState is the pressed state of the four movement keys of one keyboard
// zone, in the order forward, reverse, left, right.
type KeyState struct {
	Forward, Reverse, Left, Right bool
}

// Keyboard is a controller fed by key polling on the game thread. Ebiten
// input may only be read during Update, so the input system pushes the key
// state here every frame and the simulation reads the latest state whenever
// it ticks.
type Keyboard struct {
	mu    sync.Mutex
	state KeyState
}

func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

// SetState publishes the polled key state. Called once per frame.
func (k *Keyboard) SetState(s KeyState) {
	k.mu.Lock()
	k.state = s
	k.mu.Unlock()
}

func (k *Keyboard) MovementStatus() (float64, float64) {
	k.mu.Lock()
	s := k.state
	k.mu.Unlock()

	var rotation, acceleration float64
	if s.Right {
		rotation += 1
	}
	if s.Left {
		rotation -= 1
	}
	if s.Forward {
		acceleration += 1
	}
	if s.Reverse {
		acceleration -= reverseFactor
	}
	return rotation, acceleration
}
