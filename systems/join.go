package systems

import (
	"log"

	"github.com/openarena/tankarena/components"
	cfg "github.com/openarena/tankarena/config"
	"github.com/openarena/tankarena/control"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// HandleJoins lets players hop into a running round: Q joins on the left
// keyboard scheme, P on the arrow scheme, and any gamepad joins by pressing
// its bottom face button. Each device can drive at most one tank.
func HandleJoins(e *ecs.ECS) {
	entry, ok := components.Players.First(e.World)
	if !ok {
		return
	}
	players := components.Players.Get(entry)
	simEntry, ok := components.Simulation.First(e.World)
	if !ok {
		return
	}
	simData := components.Simulation.Get(simEntry)

	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionJoinKeyboardA).JustPressed {
		joinKeyboard(players, simData, cfg.SchemeA)
	}
	if GetAction(input, cfg.ActionJoinKeyboardB).JustPressed {
		joinKeyboard(players, simData, cfg.SchemeB)
	}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		if inpututil.IsStandardGamepadButtonJustPressed(gpID, ebiten.StandardGamepadButtonRightBottom) {
			joinGamepad(players, simData, gpID)
		}
	}
}

func joinKeyboard(players *components.PlayersData, sim *components.SimulationData, scheme cfg.ControlSchemeID) {
	if len(players.Slots) >= cfg.Arena.MaxPlayers {
		return
	}
	for _, slot := range players.Slots {
		if slot.Keyboard != nil && slot.Scheme == scheme {
			return // scheme already taken
		}
	}

	kb := control.NewKeyboard()
	players.Slots = append(players.Slots, components.PlayerSlot{
		Keyboard: kb,
		Scheme:   scheme,
	})
	sim.Sim.AddController(kb)
	log.Printf("[arena] player %d joined on keyboard (%s)", len(players.Slots), cfg.Schemes[scheme].Label)
}

func joinGamepad(players *components.PlayersData, sim *components.SimulationData, gpID ebiten.GamepadID) {
	if len(players.Slots) >= cfg.Arena.MaxPlayers {
		return
	}
	for _, slot := range players.Slots {
		if slot.Gamepad != nil && slot.GamepadID == gpID {
			return // pad already bound
		}
	}

	gp := control.NewGamepad()
	players.Slots = append(players.Slots, components.PlayerSlot{
		Gamepad:   gp,
		GamepadID: gpID,
	})
	sim.Sim.AddController(gp)
	log.Printf("[arena] player %d joined on gamepad %d", len(players.Slots), gpID)
}
