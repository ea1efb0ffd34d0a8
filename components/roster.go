package components

import (
	"time"

	"github.com/openarena/tankarena/gamemath"
	"github.com/yohamta/donburi"
)

// RosterData is the renderer's view of the simulation: the latest committed
// instance records plus the receipt time used to compute the forecast
// scalar. Written only by the sim feed system; read-only everywhere else.
type RosterData struct {
	Instances  []gamemath.TankInstance
	Seq        uint32
	LastUpdate time.Time
	TickDt     float64
}

var Roster = donburi.NewComponentType[RosterData]()
