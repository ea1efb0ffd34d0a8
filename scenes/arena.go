package scenes

import (
	"image/color"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/openarena/tankarena/archetypes"
	"github.com/openarena/tankarena/assets"
	"github.com/openarena/tankarena/components"
	cfg "github.com/openarena/tankarena/config"
	"github.com/openarena/tankarena/leveldata"
	"github.com/openarena/tankarena/maze"
	"github.com/openarena/tankarena/sim"
	"github.com/openarena/tankarena/systems"
	"github.com/openarena/tankarena/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene runs one round: a maze, a simulation goroutine and the local
// players who joined it. A new round is a brand-new scene.
type ArenaScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	settingsUI   *ui.SettingsUI
	sim          *sim.Sim
	once         sync.Once
}

// NewArenaScene creates a new round scene
func NewArenaScene(sc SceneChanger) *ArenaScene {
	return &ArenaScene{sceneChanger: sc}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.ecs.Update()

	if systems.NewRoundRequested(as.ecs) {
		as.Dispose()
		as.sceneChanger.ChangeScene(NewArenaScene(as.sceneChanger))
		return
	}
	if systems.QuitToMenuRequested(as.ecs) {
		as.Dispose()
		as.sceneChanger.ChangeScene(NewMenuScene(as.sceneChanger))
	}
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

// Dispose stops the simulation goroutine. Called when the scene is swapped
// out; the ECS world goes away with the scene value itself.
func (as *ArenaScene) Dispose() {
	if as.sim != nil {
		as.sim.Stop()
		as.sim = nil
	}
}

func (as *ArenaScene) configure() {
	if err := assets.LoadShaders(); err != nil {
		panic("failed to load shaders: " + err.Error())
	}

	as.ecs = ecs.NewECS(donburi.NewWorld())

	settings := systems.GetOrCreateSettings(as.ecs)
	if saved, err := systems.LoadSettings(); err == nil {
		systems.RestoreSettings(settings, saved)
	}
	as.settingsUI = ui.NewSettingsUI(settings, func() {
		systems.CloseSettings(as.ecs)
	})

	layout, seed := as.buildLayout(settings)
	mesh := maze.BuildMesh(layout)

	rng := rand.New(rand.NewSource(seed))
	spawns := maze.SpawnPoints(layout, cfg.Arena.MaxPlayers, rng)

	w, h := layout.Size()
	as.sim = sim.New(sim.Config{
		TickRate: cfg.Arena.TickRate,
		Width:    float64(w),
		Height:   float64(h),
		Spawns:   spawns,
	})
	go as.sim.Run()

	arenaEntry := archetypes.Arena.Spawn(as.ecs)
	arena := components.Arena.Get(arenaEntry)
	arena.Mesh = mesh
	arena.Seed = seed
	proj := components.Projection.Get(arenaEntry)
	systems.StartZoomIn(proj)

	sessionEntry := archetypes.Session.Spawn(as.ecs)
	components.Simulation.Get(sessionEntry).Sim = as.sim

	// Update order matters: input first, then everything that consumes it.
	as.ecs.AddSystem(systems.UpdateInput)
	as.ecs.AddSystem(systems.UpdateWindowControls)
	as.ecs.AddSystem(systems.UpdateSettingsHotkeys)
	as.ecs.AddSystem(systems.UpdatePause)
	as.ecs.AddSystem(systems.UpdateDebug)
	as.ecs.AddSystem(as.updateSettingsUI)
	as.ecs.AddSystem(as.updateRound)

	as.ecs.AddRenderer(cfg.Default, systems.DrawArena)
	as.ecs.AddRenderer(cfg.Default, systems.DrawTanks)
	as.ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	as.ecs.AddRenderer(cfg.Default, systems.DrawPause)
	as.ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	as.ecs.AddRenderer(cfg.Default, as.drawSettingsUI)

	log.Printf("[arena] round started: %dx%d maze, seed %d", w, h, seed)
}

// updateRound runs the gameplay-facing systems, which stop while paused or
// while the settings panel is up.
func (as *ArenaScene) updateRound(e *ecs.ECS) {
	if systems.IsPaused(e) || systems.IsSettingsOpen(e) {
		systems.ReleaseControllers(e)
		return
	}
	systems.HandleJoins(e)
	systems.UpdatePlayerControllers(e)
	systems.HandleFire(e)
	systems.UpdateRoster(e)
	systems.UpdateProjection(e)
}

// buildLayout picks the round's walls: the classic preset or a freshly
// generated maze, per the settings.
func (as *ArenaScene) buildLayout(settings *components.SettingsData) (maze.Layout, int64) {
	seed := time.Now().UnixNano()

	if settings.UsePresetArena {
		arena, err := leveldata.LoadArena(assets.LevelFS(), "levels/classic.tmx")
		if err == nil {
			return arena, seed
		}
		log.Printf("[arena] preset load failed, generating instead: %v", err)
	}

	size := systems.ArenaSizeFor(settings)
	m := maze.Generate(maze.Config{
		Width:  size.Width,
		Height: size.Height,
		Seed:   seed,
	})
	return m, seed
}

func (as *ArenaScene) updateSettingsUI(e *ecs.ECS) {
	if !systems.IsSettingsOpen(e) {
		return
	}
	as.settingsUI.UpdateUI()
	as.settingsUI.UI.Update()
}

func (as *ArenaScene) drawSettingsUI(e *ecs.ECS, screen *ebiten.Image) {
	if !systems.IsSettingsOpen(e) {
		return
	}
	as.settingsUI.UI.Draw(screen)
}
