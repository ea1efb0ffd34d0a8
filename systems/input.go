package systems

import (
	"github.com/openarena/tankarena/components"
	cfg "github.com/openarena/tankarena/config"
	"github.com/openarena/tankarena/control"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input and updates the InputComponent.
// Must run BEFORE every system that reads actions.
func UpdateInput(e *ecs.ECS) {
	input := getOrCreateInput(e)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	// Poll keyboard bindings
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}

	// Merge gamepad buttons into the menu actions so pads can drive the
	// menus even before a player has joined.
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		if ebiten.IsStandardGamepadButtonPressed(gpID, ebiten.StandardGamepadButtonLeftTop) {
			input.Current[cfg.ActionMenuUp] = true
		}
		if ebiten.IsStandardGamepadButtonPressed(gpID, ebiten.StandardGamepadButtonLeftBottom) {
			input.Current[cfg.ActionMenuDown] = true
		}
		if ebiten.IsStandardGamepadButtonPressed(gpID, ebiten.StandardGamepadButtonRightBottom) {
			input.Current[cfg.ActionMenuSelect] = true
		}
		if ebiten.IsStandardGamepadButtonPressed(gpID, ebiten.StandardGamepadButtonRightRight) {
			input.Current[cfg.ActionMenuBack] = true
		}
		if ebiten.IsStandardGamepadButtonPressed(gpID, ebiten.StandardGamepadButtonCenterRight) {
			input.Current[cfg.ActionPause] = true
		}

		deadzone := cfg.Input.AnalogDeadzone
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if vertical < -deadzone {
			input.Current[cfg.ActionMenuUp] = true
		}
		if vertical > deadzone {
			input.Current[cfg.ActionMenuDown] = true
		}
	}
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// UpdatePlayerControllers polls each joined player's device and publishes
// the state to their controller mailbox. Ebiten input is only readable on
// the game thread, so this is the single hand-off point between the input
// layer and the simulation goroutine.
func UpdatePlayerControllers(e *ecs.ECS) {
	entry, ok := components.Players.First(e.World)
	if !ok {
		return
	}
	players := components.Players.Get(entry)

	for i := range players.Slots {
		slot := &players.Slots[i]
		switch {
		case slot.Keyboard != nil:
			scheme := cfg.Schemes[slot.Scheme]
			slot.Keyboard.SetState(pollScheme(scheme))
		case slot.Gamepad != nil:
			slot.Gamepad.SetState(pollGamepad(slot.GamepadID))
		}
	}
}

// ReleaseControllers pushes a neutral state to every controller. Called
// while paused or while the settings panel is up, so a key held across the
// transition does not keep driving a tank.
func ReleaseControllers(e *ecs.ECS) {
	entry, ok := components.Players.First(e.World)
	if !ok {
		return
	}
	players := components.Players.Get(entry)

	for i := range players.Slots {
		slot := &players.Slots[i]
		switch {
		case slot.Keyboard != nil:
			slot.Keyboard.SetState(control.KeyState{})
		case slot.Gamepad != nil:
			slot.Gamepad.SetState(control.GamepadState{})
		}
	}
}

func pollScheme(scheme cfg.ControlScheme) control.KeyState {
	return control.KeyState{
		Forward: ebiten.IsKeyPressed(scheme.Forward),
		Reverse: ebiten.IsKeyPressed(scheme.Reverse),
		Left:    ebiten.IsKeyPressed(scheme.Left),
		Right:   ebiten.IsKeyPressed(scheme.Right),
	}
}

func pollGamepad(gpID ebiten.GamepadID) control.GamepadState {
	state := control.GamepadState{}
	if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
		return state
	}

	state.DPadUp = ebiten.IsStandardGamepadButtonPressed(gpID, ebiten.StandardGamepadButtonLeftTop)
	state.DPadDown = ebiten.IsStandardGamepadButtonPressed(gpID, ebiten.StandardGamepadButtonLeftBottom)
	state.DPadLeft = ebiten.IsStandardGamepadButtonPressed(gpID, ebiten.StandardGamepadButtonLeftLeft)
	state.DPadRight = ebiten.IsStandardGamepadButtonPressed(gpID, ebiten.StandardGamepadButtonLeftRight)

	deadzone := cfg.Input.AnalogDeadzone
	horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
	vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
	if horizontal > deadzone || horizontal < -deadzone {
		state.StickX = horizontal
	}
	if vertical > deadzone || vertical < -deadzone {
		state.StickY = vertical
	}
	return state
}
