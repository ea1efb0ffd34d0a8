package systems

import (
	cfg "github.com/openarena/tankarena/config"
	"github.com/openarena/tankarena/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles the pause overlay. The simulation goroutine keeps
// ticking while paused; only input hand-off and round actions stop, which
// matches how a round behaves when the window loses focus.
func UpdatePause(e *ecs.ECS) {
	pause := GetOrCreatePause(e)
	input := getOrCreateInput(e)

	if IsSettingsOpen(e) {
		return
	}

	if GetAction(input, cfg.ActionPause).JustPressed {
		pause.Paused = !pause.Paused
		PlaySFX(e, SoundMenuSelect)
	}
}

// IsPaused reports whether the pause overlay is up.
func IsPaused(e *ecs.ECS) bool {
	return GetOrCreatePause(e).Paused
}

// QuitToMenuRequested reports whether the player confirmed leaving the
// round from the pause overlay.
func QuitToMenuRequested(e *ecs.ECS) bool {
	if !IsPaused(e) || IsSettingsOpen(e) {
		return false
	}
	input := getOrCreateInput(e)
	return GetAction(input, cfg.ActionMenuSelect).JustPressed
}

// DrawPause dims the frame and renders the pause text.
func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	if !IsPaused(e) {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), cfg.BlackOverlay, false)

	titleFont := fonts.Title.Get()
	title := "PAUSED"
	text.Draw(screen, title, titleFont, int(width/2)-80, int(height/2), cfg.White)

	hintFont := fonts.Small.Get()
	hint := "esc: resume    r: new round    enter: quit to menu"
	text.Draw(screen, hint, hintFont, int(width/2)-90, int(height/2)+36, cfg.LightBlue)
}
