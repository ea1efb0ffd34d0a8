package sim

import (
	"math"

	"github.com/openarena/tankarena/control"
	"github.com/openarena/tankarena/gamemath"
)

// Tank response constants, tuned against the original arena feel. Not a
// physics engine: first-order kinematics with exponential damping, no
// collision response.
const (
	driveForce     = 30.0
	driveMass      = 0.9
	turnTorque     = 40.0
	turnInertia    = 0.8
	linearDamping  = 10.0
	angularDamping = 10.0
)

type tank struct {
	controller control.Controller

	posX, posY float64
	velX, velY float64
	rotation   float64
	rotationV  float64
}

// step advances the tank by dt using the controller's current command.
func (t *tank) step(dt float64) {
	rot, accel := t.controller.MovementStatus()

	// Angular response. Positive rotation command turns clockwise.
	t.rotationV += -rot * turnTorque / turnInertia * dt
	t.rotationV /= 1 + angularDamping*dt
	t.rotation += t.rotationV * dt

	// Drive along the tank's local +y axis.
	sin, cos := math.Sincos(t.rotation)
	thrust := accel * driveForce / driveMass
	t.velX += -sin * thrust * dt
	t.velY += cos * thrust * dt
	t.velX /= 1 + linearDamping*dt
	t.velY /= 1 + linearDamping*dt

	// Turn the velocity with the hull so tanks do not drift sideways
	// through corners.
	dsin, dcos := math.Sincos(t.rotationV * dt)
	t.velX, t.velY = dcos*t.velX-dsin*t.velY, dsin*t.velX+dcos*t.velY

	t.posX += t.velX * dt
	t.posY += t.velY * dt
}

// clampTo keeps the tank inside the arena rectangle. Purely a keep-in-bounds
// guard; wall collision is out of scope.
func (t *tank) clampTo(w, h float64) {
	if t.posX < 0 {
		t.posX, t.velX = 0, 0
	} else if t.posX > w {
		t.posX, t.velX = w, 0
	}
	if t.posY < 0 {
		t.posY, t.velY = 0, 0
	} else if t.posY > h {
		t.posY, t.velY = h, 0
	}
}

// instance commits the tank state as a render instance record.
func (t *tank) instance() gamemath.TankInstance {
	return gamemath.TankInstance{
		Position:  [2]float32{float32(t.posX), float32(t.posY)},
		Velocity:  [2]float32{float32(t.velX), float32(t.velY)},
		Rotation:  float32(t.rotation),
		RotationV: float32(t.rotationV),
	}
}
