package systems

import (
	"os"

	"github.com/openarena/tankarena/components"
	cfg "github.com/openarena/tankarena/config"
	"github.com/openarena/tankarena/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

const (
	menuTitleY   = 180
	menuOptionsY = 320
	menuSpacing  = 48
)

// NewUpdateMenu creates an UpdateMenu system with scene transition capability
func NewUpdateMenu(sceneChanger SceneChanger, createArenaScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		// Skip menu input if settings is open
		if IsSettingsOpen(e) {
			return
		}

		menu := GetOrCreateMenu(e)
		input := getOrCreateInput(e)

		numOptions := len(menu.Options)
		if numOptions == 0 {
			return
		}

		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			PlaySFX(e, SoundMenuNavigate)
			menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			PlaySFX(e, SoundMenuNavigate)
			menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			PlaySFX(e, SoundMenuSelect)
			switch menu.Options[menu.SelectedIndex] {
			case components.MainMenuStart:
				sceneChanger.ChangeScene(createArenaScene())
			case components.MainMenuSettings:
				OpenSettings(e)
			case components.MainMenuExit:
				os.Exit(0)
			}
		}

		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			os.Exit(0)
		}
	}
}

// DrawMenu renders the main menu screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), cfg.Black, false)

	titleFont := fonts.Title.Get()
	title := "TANK ARENA"
	titleWidth := len(title) * 24 // Approximate width for the title face
	titleX := int((width - float64(titleWidth)) / 2)
	text.Draw(screen, title, titleFont, titleX, menuTitleY, cfg.White)

	menuFont := fonts.Body.Get()
	for i, option := range menu.Options {
		label := menuLabel(option)
		color := cfg.DarkBlue
		if i == menu.SelectedIndex {
			color = cfg.LightBlue
			label = "> " + label
		}
		optionWidth := len(label) * 9
		x := int((width - float64(optionWidth)) / 2)
		y := menuOptionsY + i*menuSpacing
		text.Draw(screen, label, menuFont, x, y, color)
	}

	hintFont := fonts.Small.Get()
	hint := "arrows: navigate    enter: select"
	text.Draw(screen, hint, hintFont, int(width/2)-120, int(height)-24, cfg.DarkBlue)
}

func menuLabel(option components.MainMenuOption) string {
	switch option {
	case components.MainMenuStart:
		return "START ROUND"
	case components.MainMenuSettings:
		return "SETTINGS"
	case components.MainMenuExit:
		return "EXIT"
	}
	return ""
}
