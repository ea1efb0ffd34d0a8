package main

import (
	"log"

	"github.com/openarena/tankarena/config"
	"github.com/openarena/tankarena/fonts"
	"github.com/openarena/tankarena/scenes"
	"github.com/openarena/tankarena/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// Disposer is implemented by scenes that own background goroutines.
type Disposer interface {
	Dispose()
}

type Game struct {
	scene Scene

	width, height int
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	if old, ok := g.scene.(Disposer); ok && old != scene {
		old.Dispose()
	}
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	fonts.LoadFonts()

	g := &Game{}
	g.scene = scenes.NewMenuScene(g)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout renders at the real window size so the arena projection can fit
// itself to whatever the player resizes to.
func (g *Game) Layout(width, height int) (int, int) {
	if width > 0 && height > 0 {
		g.width, g.height = width, height
	} else {
		g.width, g.height = config.C.Width, config.C.Height
	}
	return g.width, g.height
}

func main() {
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
