package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMenuUp
	ActionMenuDown
	ActionMenuSelect
	ActionMenuBack
	ActionPause
	ActionNewRound
	ActionJoinKeyboardA
	ActionJoinKeyboardB
	ActionToggleDebug
	ActionToggleFullscreen
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the key bindings for an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all global input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

// ControlSchemeID identifies a keyboard control scheme
type ControlSchemeID int

const (
	SchemeA ControlSchemeID = iota // E/D/S/F cluster
	SchemeB                        // arrow keys
	SchemeCount
)

// ControlScheme is the movement key set for one keyboard zone
type ControlScheme struct {
	Label   string
	Forward ebiten.Key
	Reverse ebiten.Key
	Left    ebiten.Key
	Right   ebiten.Key
	Fire    ebiten.Key
}

// Schemes are the available keyboard control schemes
var Schemes [SchemeCount]ControlScheme

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Bindings: map[ActionID]InputBinding{
			ActionMenuUp: {
				Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
			},
			ActionMenuDown: {
				Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
			},
			ActionMenuSelect: {
				Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace},
			},
			ActionMenuBack: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
			},
			ActionPause: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
			},
			ActionNewRound: {
				Keys: []ebiten.Key{ebiten.KeyR},
			},
			ActionJoinKeyboardA: {
				Keys: []ebiten.Key{ebiten.KeyQ},
			},
			ActionJoinKeyboardB: {
				Keys: []ebiten.Key{ebiten.KeyP},
			},
			ActionToggleDebug: {
				Keys: []ebiten.Key{ebiten.KeyF1},
			},
			ActionToggleFullscreen: {
				Keys: []ebiten.Key{ebiten.KeyF11},
			},
		},
	}

	Schemes = [SchemeCount]ControlScheme{
		SchemeA: {
			Label:   "E/D/S/F",
			Forward: ebiten.KeyE,
			Reverse: ebiten.KeyD,
			Left:    ebiten.KeyS,
			Right:   ebiten.KeyF,
			Fire:    ebiten.KeyQ,
		},
		SchemeB: {
			Label:   "Arrows",
			Forward: ebiten.KeyUp,
			Reverse: ebiten.KeyDown,
			Left:    ebiten.KeyLeft,
			Right:   ebiten.KeyRight,
			Fire:    ebiten.KeyM,
		},
	}
}
