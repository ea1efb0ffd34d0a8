package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/openarena/tankarena/config"
	"github.com/openarena/tankarena/control"
	"github.com/openarena/tankarena/sim"
	"github.com/yohamta/donburi"
)

// SimulationData owns the handle to the running simulation goroutine.
type SimulationData struct {
	Sim *sim.Sim
}

var Simulation = donburi.NewComponentType[SimulationData]()

// PlayerSlot is one joined local player and the controller feeding their
// tank. Exactly one of Keyboard or Gamepad is set.
type PlayerSlot struct {
	Keyboard *control.Keyboard
	Scheme   config.ControlSchemeID

	Gamepad   *control.Gamepad
	GamepadID ebiten.GamepadID
}

// PlayersData is the roster of joined local players.
type PlayersData struct {
	Slots []PlayerSlot
}

var Players = donburi.NewComponentType[PlayersData]()
