package archetypes

import (
	"github.com/openarena/tankarena/components"
	cfg "github.com/openarena/tankarena/config"
	"github.com/openarena/tankarena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	// Arena holds round-scoped render state: wall mesh, the roster of tank
	// instances and the shared projection.
	Arena = newArchetype(
		tags.Arena,
		components.Arena,
		components.Roster,
		components.Projection,
	)
	// Session holds the sim handle and the joined players.
	Session = newArchetype(
		tags.Session,
		components.Simulation,
		components.Players,
	)
	Input = newArchetype(
		components.Input,
	)
	Menu = newArchetype(
		components.Menu,
	)
	Settings = newArchetype(
		components.Settings,
		components.Pause,
		components.Debug,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
