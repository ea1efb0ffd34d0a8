package systems

import (
	"fmt"

	"github.com/openarena/tankarena/components"
	cfg "github.com/openarena/tankarena/config"
	"github.com/openarena/tankarena/fonts"
	"github.com/openarena/tankarena/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudSwatchSize = 18
	hudMargin     = 12
)

// DrawHUD renders the bottom band: one color swatch per joined player and
// the join prompts for devices that have not joined yet.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())

	// The band height follows the same window scale as the arena so the
	// two never overlap.
	scale := min32(width/gamemath.MovieWidth, height/gamemath.MovieHeight)
	band := gamemath.HeightToBottom * scale
	bandTop := height - band

	vector.DrawFilledRect(screen, 0, bandTop, width, band, cfg.White, false)

	playersEntry, ok := components.Players.First(e.World)
	if !ok {
		return
	}
	players := components.Players.Get(playersEntry)

	hudFont := fonts.HUD.Get()
	x := float32(hudMargin)
	y := bandTop + band/2
	for i, slot := range players.Slots {
		color := cfg.PlayerColors[i%len(cfg.PlayerColors)]
		vector.DrawFilledRect(screen, x, y-hudSwatchSize/2, hudSwatchSize, hudSwatchSize, color, false)

		label := fmt.Sprintf("P%d %s", i+1, slotLabel(slot))
		text.Draw(screen, label, hudFont, int(x)+hudSwatchSize+6, int(y)+7, cfg.HUDText)
		x += hudSwatchSize + float32(len(label))*11 + 2*hudMargin
	}

	if len(players.Slots) < cfg.Arena.MaxPlayers {
		prompt := "Q / P: join on keyboard    gamepad: press A    R: new round"
		smallFont := fonts.Small.Get()
		text.Draw(screen, prompt, smallFont, int(hudMargin), int(height)-8, cfg.HUDText)
	}
}

func slotLabel(slot components.PlayerSlot) string {
	if slot.Keyboard != nil {
		return cfg.Schemes[slot.Scheme].Label
	}
	return "Gamepad"
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
