package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/openarena/tankarena/config"
	"github.com/openarena/tankarena/systems"
	"github.com/openarena/tankarena/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the main menu
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	settingsUI   *ui.SettingsUI
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	// Restore persisted settings into this world
	settings := systems.GetOrCreateSettings(ms.ecs)
	if saved, err := systems.LoadSettings(); err == nil {
		systems.RestoreSettings(settings, saved)
	}
	ms.settingsUI = ui.NewSettingsUI(settings, func() {
		systems.CloseSettings(ms.ecs)
	})

	createArenaScene := func() interface{} {
		return NewArenaScene(ms.sceneChanger)
	}

	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.UpdateWindowControls)
	ms.ecs.AddSystem(systems.UpdateSettingsHotkeys)
	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.sceneChanger, createArenaScene))
	ms.ecs.AddSystem(ms.updateSettingsUI)

	ms.ecs.AddRenderer(cfg.Default, systems.DrawMenu)
	ms.ecs.AddRenderer(cfg.Default, ms.drawSettingsUI)
}

func (ms *MenuScene) updateSettingsUI(e *ecs.ECS) {
	if !systems.IsSettingsOpen(e) {
		return
	}
	ms.settingsUI.UpdateUI()
	ms.settingsUI.UI.Update()
}

func (ms *MenuScene) drawSettingsUI(e *ecs.ECS, screen *ebiten.Image) {
	if !systems.IsSettingsOpen(e) {
		return
	}
	ms.settingsUI.UI.Draw(screen)
}
