package systems

import (
	"log"

	"github.com/openarena/tankarena/components"
	cfg "github.com/openarena/tankarena/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// HandleFire reads each player's fire control. Projectiles are not
// simulated yet; firing is acknowledged with a blip.
// TODO: spawn a projectile in the simulation once shells exist.
func HandleFire(e *ecs.ECS) {
	entry, ok := components.Players.First(e.World)
	if !ok {
		return
	}
	players := components.Players.Get(entry)

	for i := range players.Slots {
		slot := &players.Slots[i]
		fired := false
		switch {
		case slot.Keyboard != nil:
			fired = inpututil.IsKeyJustPressed(cfg.Schemes[slot.Scheme].Fire)
		case slot.Gamepad != nil:
			fired = inpututil.IsStandardGamepadButtonJustPressed(
				slot.GamepadID, ebiten.StandardGamepadButtonFrontBottomRight)
		}
		if fired {
			PlaySFX(e, SoundFire)
			log.Printf("[arena] player %d fired", i+1)
		}
	}
}
