package systems

import (
	"time"

	"github.com/openarena/tankarena/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateRoster pulls the latest committed snapshot from the simulation into
// the roster. The channel holds at most one snapshot, so a single receive
// per frame is always the freshest state. LastUpdate stamps the receipt
// time used by the renderer to extrapolate between ticks.
func UpdateRoster(e *ecs.ECS) {
	simEntry, ok := components.Simulation.First(e.World)
	if !ok {
		return
	}
	simData := components.Simulation.Get(simEntry)
	arenaEntry, ok := components.Roster.First(e.World)
	if !ok {
		return
	}
	roster := components.Roster.Get(arenaEntry)

	select {
	case snap := <-simData.Sim.Snapshots():
		roster.Instances = snap.Tanks
		roster.Seq = snap.Seq
		roster.LastUpdate = time.Now()
		roster.TickDt = simData.Sim.TickDt()
	default:
	}
}
