package systems

import (
	"fmt"
	"time"

	"github.com/openarena/tankarena/components"
	cfg "github.com/openarena/tankarena/config"
	"github.com/openarena/tankarena/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug toggles the diagnostic overlay on F1.
func UpdateDebug(e *ecs.ECS) {
	input := getOrCreateInput(e)
	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		debug := GetOrCreateDebug(e)
		debug.Enabled = !debug.Enabled
	}
}

// DrawDebug renders the diagnostic overlay: frame rates, the snapshot
// sequence and the forecast the renderer is currently applying.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	debug := GetOrCreateDebug(e)
	if !debug.Enabled {
		return
	}

	msg := fmt.Sprintf("TPS %0.1f  FPS %0.1f", ebiten.ActualTPS(), ebiten.ActualFPS())

	if entry, ok := components.Roster.First(e.World); ok {
		roster := components.Roster.Get(entry)
		elapsed := time.Since(roster.LastUpdate).Seconds()
		forecast := gamemath.Forecast(float32(elapsed), float32(roster.TickDt))
		msg += fmt.Sprintf("\nseq %d  tanks %d  forecast %.2fms",
			roster.Seq, len(roster.Instances), forecast*1000)
	}

	ebitenutil.DebugPrintAt(screen, msg, 4, 4)
}
