// Package sim runs the fixed-tick tank simulation on its own goroutine and
// publishes instance snapshots for the renderer. The renderer only ever
// reads committed snapshots; it never touches simulation state.
package sim

import (
	"log"
	"time"

	"github.com/openarena/tankarena/control"
	"github.com/openarena/tankarena/gamemath"
)

// DefaultTickRate is the simulation frequency in ticks per second.
const DefaultTickRate = 90

// Snapshot is one committed simulation state: the tick sequence number and
// an instance record per tank, in join order.
type Snapshot struct {
	Seq   uint32
	Tanks []gamemath.TankInstance
}

// Config sets up a simulation for one arena.
type Config struct {
	TickRate int          // ticks per second; DefaultTickRate when 0
	Width    float64      // arena width in cells
	Height   float64      // arena height in cells
	Spawns   [][2]float64 // spawn positions, cycled as controllers join
}

// Sim owns the tank roster and the tick loop. Everything inside is confined
// to the Run goroutine; the outside world talks through channels.
type Sim struct {
	cfg      Config
	tickRate int

	tanks     []*tank
	seq       uint32
	nextSpawn int

	snapshotCh   chan Snapshot
	controllerCh chan control.Controller
	stopCh       chan struct{}
}

func New(cfg Config) *Sim {
	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	return &Sim{
		cfg:          cfg,
		tickRate:     tickRate,
		snapshotCh:   make(chan Snapshot, 1),
		controllerCh: make(chan control.Controller, 8),
		stopCh:       make(chan struct{}),
	}
}

// TickDt returns the simulation step in seconds. The renderer clamps its
// forecast to this value.
func (s *Sim) TickDt() float64 {
	return 1.0 / float64(s.tickRate)
}

// Snapshots returns the size-1 snapshot channel. Only the latest snapshot
// is retained; a slow consumer never stalls the tick loop.
func (s *Sim) Snapshots() <-chan Snapshot {
	return s.snapshotCh
}

// AddController registers a new tank for the controller, processed on the
// next tick boundary. Joins past the queue capacity are dropped.
func (s *Sim) AddController(c control.Controller) {
	select {
	case s.controllerCh <- c:
	default:
		log.Println("[sim] join queue full, controller dropped")
	}
}

// Run drives the tick loop until Stop. Call on a dedicated goroutine.
func (s *Sim) Run() {
	dt := s.TickDt()
	ticker := time.NewTicker(time.Duration(float64(time.Second) * dt))
	defer ticker.Stop()

	log.Printf("[sim] loop started at %d ticks/second", s.tickRate)
	for {
		select {
		case <-s.stopCh:
			log.Printf("[sim] loop stopped at seq %d", s.seq)
			return
		case c := <-s.controllerCh:
			s.spawnTank(c)
		case <-ticker.C:
			s.step(dt)
			s.publish()
		}
	}
}

// Stop terminates the tick loop. Safe to call once.
func (s *Sim) Stop() {
	close(s.stopCh)
}

func (s *Sim) spawnTank(c control.Controller) {
	t := &tank{controller: c}
	if len(s.cfg.Spawns) > 0 {
		spawn := s.cfg.Spawns[s.nextSpawn%len(s.cfg.Spawns)]
		s.nextSpawn++
		t.posX, t.posY = spawn[0], spawn[1]
	}
	s.tanks = append(s.tanks, t)
	log.Printf("[sim] tank %d spawned at (%.1f, %.1f)", len(s.tanks), t.posX, t.posY)
}

func (s *Sim) step(dt float64) {
	for _, t := range s.tanks {
		t.step(dt)
		t.clampTo(s.cfg.Width, s.cfg.Height)
	}
	s.seq++
}

// publish commits the current state, replacing any snapshot the renderer
// has not picked up yet.
func (s *Sim) publish() {
	snap := Snapshot{
		Seq:   s.seq,
		Tanks: make([]gamemath.TankInstance, len(s.tanks)),
	}
	for i, t := range s.tanks {
		snap.Tanks[i] = t.instance()
	}

	select {
	case <-s.snapshotCh:
	default:
	}
	s.snapshotCh <- snap
}
