package gamemath

import "math"

// TankInstance is the per-tank record the simulation commits once per tick
// and the renderer reads between ticks. Field order and types are part of
// the GPU instance-buffer contract (see layout.go); rendering never writes
// back into an instance.
type TankInstance struct {
	Position  [2]float32
	Velocity  [2]float32
	Rotation  float32
	RotationV float32
}

// Extrapolate returns the pose of the instance forecast seconds past its
// committed state, assuming velocity and rotational velocity stay constant
// over the interval. With forecast == 0 it returns the committed pose
// unchanged. Non-finite inputs propagate; this is a cosmetic path, not an
// authoritative one.
func (t TankInstance) Extrapolate(forecast float32) (position [2]float32, rotation float32) {
	position = [2]float32{
		t.Position[0] + t.Velocity[0]*forecast,
		t.Position[1] + t.Velocity[1]*forecast,
	}
	rotation = t.Rotation + t.RotationV*forecast
	return position, rotation
}

// TransformStaticVertex maps a static 2D vertex to clip space:
// viewProj * (v.x, v.y, 0, 1). Used for maze walls and any other geometry
// without instance data.
func TransformStaticVertex(viewProj Mat4, v [2]float32) [4]float32 {
	return viewProj.MulVec4([4]float32{v[0], v[1], 0, 1})
}

// TransformInstanceVertex maps a base vertex of an instanced mesh to clip
// space: the vertex is rotated by the extrapolated orientation
// (counter-clockwise), offset by the extrapolated world position, and then
// pushed through the shared transform. Rotation and translation use the
// same forecast value so orientation never skews against position.
func TransformInstanceVertex(viewProj Mat4, inst TankInstance, v [2]float32, forecast float32) [4]float32 {
	pos, rot := inst.Extrapolate(forecast)
	sin, cos := math.Sincos(float64(rot))
	s, c := float32(sin), float32(cos)

	local := [2]float32{
		c*v[0] - s*v[1],
		s*v[0] + c*v[1],
	}
	return viewProj.MulVec4([4]float32{
		local[0] + pos[0],
		local[1] + pos[1],
		0,
		1,
	})
}
