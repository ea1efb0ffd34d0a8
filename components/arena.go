package components

import (
	"github.com/openarena/tankarena/maze"
	"github.com/yohamta/donburi"
)

// ArenaData holds the wall geometry of the current round.
type ArenaData struct {
	Mesh maze.Mesh
	Seed int64 // generation seed, 0 for preset arenas
}

var Arena = donburi.NewComponentType[ArenaData]()
