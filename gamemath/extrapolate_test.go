package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtrapolateZeroForecastIsIdentity(t *testing.T) {
	// Velocity and rotational velocity must not leak into the pose at f=0,
	// whatever their values.
	inst := TankInstance{
		Position:  [2]float32{3.5, -2.25},
		Velocity:  [2]float32{100, -250},
		Rotation:  1.25,
		RotationV: 9000,
	}

	pos, rot := inst.Extrapolate(0)
	assert.Equal(t, inst.Position, pos)
	assert.Equal(t, inst.Rotation, rot)
}

func TestExtrapolateLinearInForecast(t *testing.T) {
	inst := TankInstance{
		Position:  [2]float32{1, 2},
		Velocity:  [2]float32{4, -6},
		Rotation:  0.5,
		RotationV: 2,
	}

	// Pose at forecast 2h must be exactly twice as far from the base pose
	// as the pose at forecast h. Checked at several h, no discontinuities.
	for _, h := range []float32{0.001, 0.01, 0.1, 0.5} {
		p1, r1 := inst.Extrapolate(h)
		p2, r2 := inst.Extrapolate(2 * h)

		assert.InDelta(t, 2*(p1[0]-inst.Position[0]), p2[0]-inst.Position[0], 1e-4)
		assert.InDelta(t, 2*(p1[1]-inst.Position[1]), p2[1]-inst.Position[1], 1e-4)
		assert.InDelta(t, 2*(r1-inst.Rotation), r2-inst.Rotation, 1e-4)
	}
}

func TestExtrapolateForwardMotion(t *testing.T) {
	// Instance at origin moving along +x at 1 unit/s, forecast half a
	// second: extrapolated position is (0.5, 0).
	inst := TankInstance{Velocity: [2]float32{1, 0}}

	pos, rot := inst.Extrapolate(0.5)
	assert.InDelta(t, 0.5, pos[0], 1e-6)
	assert.InDelta(t, 0.0, pos[1], 1e-6)
	assert.Zero(t, rot)
}

func TestExtrapolateHalfTurn(t *testing.T) {
	// Rotational velocity pi over one second is a half turn; the rotation
	// matrix at that pose is [[-1,0],[0,-1]] within float tolerance.
	inst := TankInstance{RotationV: math.Pi}

	_, rot := inst.Extrapolate(1)
	require.InDelta(t, math.Pi, rot, 1e-6)

	out := TransformInstanceVertex(Identity(), inst, [2]float32{1, 0}, 1)
	assert.InDelta(t, -1, out[0], 1e-6)
	assert.InDelta(t, 0, out[1], 1e-6)
}

func TestTransformInstanceVertexRotateThenTranslate(t *testing.T) {
	// R(theta)*v + p computed directly must match the full vertex path at
	// the representative angles.
	v := [2]float32{0.2, 0.25}
	p := [2]float32{3, -1}

	for _, theta := range []float64{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2} {
		inst := TankInstance{Position: p, Rotation: float32(theta)}
		out := TransformInstanceVertex(Identity(), inst, v, 0)

		sin, cos := math.Sincos(theta)
		wantX := float32(cos)*v[0] - float32(sin)*v[1] + p[0]
		wantY := float32(sin)*v[0] + float32(cos)*v[1] + p[1]

		assert.InDelta(t, wantX, out[0], 1e-5, "theta=%v", theta)
		assert.InDelta(t, wantY, out[1], 1e-5, "theta=%v", theta)
		assert.InDelta(t, 0, out[2], 1e-6)
		assert.InDelta(t, 1, out[3], 1e-6)
	}
}

func TestTransformInstanceVertexZeroOffset(t *testing.T) {
	// A degenerate zero base vertex ignores rotation entirely; only the
	// extrapolated translation remains.
	inst := TankInstance{
		Position:  [2]float32{2, 3},
		Velocity:  [2]float32{-1, 1},
		Rotation:  1.1,
		RotationV: 4,
	}

	out := TransformInstanceVertex(Identity(), inst, [2]float32{0, 0}, 0.25)
	assert.InDelta(t, 2-0.25, out[0], 1e-6)
	assert.InDelta(t, 3+0.25, out[1], 1e-6)
}

func TestTransformInstanceVertexSharesForecast(t *testing.T) {
	// Orientation and translation must advance together: running the pieces
	// separately with the same f reproduces the combined result.
	inst := TankInstance{
		Position:  [2]float32{1, 1},
		Velocity:  [2]float32{2, 0},
		Rotation:  0.3,
		RotationV: 1.5,
	}
	v := [2]float32{0.2, -0.25}
	const f = 0.008

	pos, rot := inst.Extrapolate(f)
	sin, cos := math.Sincos(float64(rot))
	want := [2]float32{
		float32(cos)*v[0] - float32(sin)*v[1] + pos[0],
		float32(sin)*v[0] + float32(cos)*v[1] + pos[1],
	}

	out := TransformInstanceVertex(Identity(), inst, v, f)
	assert.InDelta(t, want[0], out[0], 1e-6)
	assert.InDelta(t, want[1], out[1], 1e-6)
}

func TestTransformStaticVertex(t *testing.T) {
	// Static path is T * (v, 0, 1) exactly, and linear in v apart from the
	// translation column.
	m := Identity().
		AppendScaling(2).
		AppendTranslation(1, -1, 0)

	out := TransformStaticVertex(m, [2]float32{3, 4})
	assert.InDelta(t, 7, out[0], 1e-6)
	assert.InDelta(t, 7, out[1], 1e-6)
	assert.InDelta(t, 1, out[3], 1e-6)

	// Doubling v doubles the non-translation component.
	base := TransformStaticVertex(m, [2]float32{0, 0})
	one := TransformStaticVertex(m, [2]float32{3, 4})
	two := TransformStaticVertex(m, [2]float32{6, 8})
	assert.InDelta(t, 2*(one[0]-base[0]), two[0]-base[0], 1e-5)
	assert.InDelta(t, 2*(one[1]-base[1]), two[1]-base[1], 1e-5)
}

func TestForecastClamping(t *testing.T) {
	const dt = 1.0 / 90.0

	tests := []struct {
		name    string
		elapsed float32
		want    float32
	}{
		{"zero", 0, 0},
		{"negative", -0.5, 0},
		{"inside tick", 0.005, 0.005 * 0.99},
		{"at tick", dt, dt * 0.99},
		{"beyond tick", 1.0, dt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Forecast(tt.elapsed, dt), 1e-7)
		})
	}
}
