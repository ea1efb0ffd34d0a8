package control

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyboardMovementStatus(t *testing.T) {
	tests := []struct {
		name      string
		state     KeyState
		wantRot   float64
		wantAccel float64
	}{
		{"idle", KeyState{}, 0, 0},
		{"forward", KeyState{Forward: true}, 0, 1},
		{"reverse is slower", KeyState{Reverse: true}, 0, -0.6},
		{"left", KeyState{Left: true}, -1, 0},
		{"right", KeyState{Right: true}, 1, 0},
		{"opposing keys cancel", KeyState{Left: true, Right: true}, 0, 0},
		{"forward beats reverse", KeyState{Forward: true, Reverse: true}, 0, 0.4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := NewKeyboard()
			k.SetState(tt.state)
			rot, accel := k.MovementStatus()
			assert.InDelta(t, tt.wantRot, rot, 1e-9)
			assert.InDelta(t, tt.wantAccel, accel, 1e-9)
		})
	}
}

func TestGamepadStickOverridesDPad(t *testing.T) {
	g := NewGamepad()
	g.SetState(GamepadState{DPadLeft: true, DPadDown: true, StickX: 0.5, StickY: -0.75})

	rot, accel := g.MovementStatus()
	assert.InDelta(t, 0.5, rot, 1e-9)
	assert.InDelta(t, 0.75, accel, 1e-9)
}

func TestGamepadDPadFallback(t *testing.T) {
	g := NewGamepad()
	g.SetState(GamepadState{DPadRight: true, DPadDown: true})

	rot, accel := g.MovementStatus()
	assert.InDelta(t, 1, rot, 1e-9)
	assert.InDelta(t, -0.6, accel, 1e-9)
}

func TestGamepadClampsStick(t *testing.T) {
	g := NewGamepad()
	g.SetState(GamepadState{StickX: 3, StickY: 2})

	rot, accel := g.MovementStatus()
	assert.Equal(t, 1.0, rot)
	assert.Equal(t, -1.0, accel)
}
