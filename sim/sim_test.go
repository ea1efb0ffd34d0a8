package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubController answers with a fixed command.
type stubController struct {
	rotation, acceleration float64
}

func (c stubController) MovementStatus() (float64, float64) {
	return c.rotation, c.acceleration
}

func newTestSim(c stubController) *Sim {
	s := New(Config{
		Width:  10,
		Height: 10,
		Spawns: [][2]float64{{5, 5}},
	})
	s.spawnTank(c)
	return s
}

func TestIdleTankStaysPut(t *testing.T) {
	s := newTestSim(stubController{})
	dt := s.TickDt()
	for i := 0; i < 100; i++ {
		s.step(dt)
	}

	tank := s.tanks[0]
	assert.InDelta(t, 5, tank.posX, 1e-9)
	assert.InDelta(t, 5, tank.posY, 1e-9)
	assert.Zero(t, tank.rotation)
}

func TestForwardDriveMovesAlongHeading(t *testing.T) {
	s := newTestSim(stubController{acceleration: 1})
	dt := s.TickDt()
	for i := 0; i < 90; i++ {
		s.step(dt)
	}

	tank := s.tanks[0]
	// Heading 0 is +y; no lateral drift without a turn command.
	assert.InDelta(t, 5, tank.posX, 1e-6)
	assert.Greater(t, tank.posY, 5.0)

	// Damping caps the speed at driveForce/(mass*damping).
	limit := driveForce / (driveMass * linearDamping)
	assert.LessOrEqual(t, tank.velY, limit+1e-6)
	assert.InDelta(t, limit, tank.velY, 0.1)
}

func TestTurnCommandRotates(t *testing.T) {
	s := newTestSim(stubController{rotation: 1})
	dt := s.TickDt()
	for i := 0; i < 90; i++ {
		s.step(dt)
	}

	// Positive rotation command turns clockwise (negative angle).
	assert.Negative(t, s.tanks[0].rotation)

	// Angular speed settles at torque/(inertia*damping).
	limit := turnTorque / (turnInertia * angularDamping)
	assert.InDelta(t, -limit, s.tanks[0].rotationV, 0.1)
}

func TestTankClampedToArena(t *testing.T) {
	s := newTestSim(stubController{acceleration: 1})
	dt := s.TickDt()
	// Drive forward (+y) for far longer than it takes to cross the arena.
	for i := 0; i < 90*20; i++ {
		s.step(dt)
	}

	tank := s.tanks[0]
	assert.LessOrEqual(t, tank.posY, 10.0)
	assert.Zero(t, tank.velY)
}

func TestSnapshotLatestWins(t *testing.T) {
	s := newTestSim(stubController{acceleration: 1})
	dt := s.TickDt()

	// Publish twice without a reader; only the newest snapshot survives.
	s.step(dt)
	s.publish()
	s.step(dt)
	s.publish()

	snap := <-s.Snapshots()
	assert.Equal(t, uint32(2), snap.Seq)
	require.Len(t, snap.Tanks, 1)

	select {
	case extra := <-s.Snapshots():
		t.Fatalf("unexpected second snapshot seq %d", extra.Seq)
	default:
	}
}

func TestSnapshotCommitsInstanceRecords(t *testing.T) {
	s := newTestSim(stubController{acceleration: 1})
	dt := s.TickDt()
	for i := 0; i < 10; i++ {
		s.step(dt)
	}
	s.publish()

	snap := <-s.Snapshots()
	require.Len(t, snap.Tanks, 1)
	inst := snap.Tanks[0]

	tank := s.tanks[0]
	assert.InDelta(t, tank.posX, float64(inst.Position[0]), 1e-5)
	assert.InDelta(t, tank.posY, float64(inst.Position[1]), 1e-5)
	assert.InDelta(t, tank.velX, float64(inst.Velocity[0]), 1e-5)
	assert.InDelta(t, tank.velY, float64(inst.Velocity[1]), 1e-5)
	assert.InDelta(t, tank.rotation, float64(inst.Rotation), 1e-5)
	assert.False(t, math.IsNaN(float64(inst.RotationV)))
}

func TestSpawnCyclesThroughSpawnPoints(t *testing.T) {
	s := New(Config{
		Width:  10,
		Height: 10,
		Spawns: [][2]float64{{1, 1}, {9, 9}},
	})
	s.spawnTank(stubController{})
	s.spawnTank(stubController{})
	s.spawnTank(stubController{})

	assert.Equal(t, 1.0, s.tanks[0].posX)
	assert.Equal(t, 9.0, s.tanks[1].posX)
	assert.Equal(t, 1.0, s.tanks[2].posX) // wraps around
}

func TestRunAndStop(t *testing.T) {
	s := New(Config{Width: 10, Height: 10, Spawns: [][2]float64{{5, 5}}})
	done := make(chan struct{})
	go func() {
		s.Run()
		close(done)
	}()

	s.AddController(stubController{acceleration: 1})
	snap := <-s.Snapshots()
	assert.NotZero(t, snap.Seq)

	s.Stop()
	<-done
}
