package gamemath

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f32At(t *testing.T, buf []byte, off int) float32 {
	t.Helper()
	require.LessOrEqual(t, off+4, len(buf))
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
}

func TestPackUniformsLayout(t *testing.T) {
	m := Identity().AppendTranslation(5, 6, 7)
	buf := PackUniforms(m, 0.0125)

	require.Len(t, buf, UniformBlockSize)

	// Column-major: the translation column occupies floats 12..14.
	assert.Equal(t, float32(1), f32At(t, buf, 0*4))
	assert.Equal(t, float32(5), f32At(t, buf, 12*4))
	assert.Equal(t, float32(6), f32At(t, buf, 13*4))
	assert.Equal(t, float32(7), f32At(t, buf, 14*4))

	// Forecast trails the matrix immediately.
	assert.Equal(t, float32(0.0125), f32At(t, buf, 16*4))
}

func TestPackInstancesLayout(t *testing.T) {
	instances := []TankInstance{
		{Position: [2]float32{1, 2}, Velocity: [2]float32{3, 4}, Rotation: 5, RotationV: 6},
		{Position: [2]float32{7, 8}, Velocity: [2]float32{9, 10}, Rotation: 11, RotationV: 12},
	}
	buf := PackInstances(instances)

	require.Len(t, buf, 2*InstanceStride)

	for i, inst := range instances {
		base := i * InstanceStride
		assert.Equal(t, inst.Position[0], f32At(t, buf, base+instancePositionOffset))
		assert.Equal(t, inst.Position[1], f32At(t, buf, base+instancePositionOffset+4))
		assert.Equal(t, inst.Velocity[0], f32At(t, buf, base+instanceVelocityOffset))
		assert.Equal(t, inst.Velocity[1], f32At(t, buf, base+instanceVelocityOffset+4))
		assert.Equal(t, inst.Rotation, f32At(t, buf, base+instanceRotationOffset))
		assert.Equal(t, inst.RotationV, f32At(t, buf, base+instanceRotationVOffset))
	}
}

func TestPackInstancesEmpty(t *testing.T) {
	assert.Empty(t, PackInstances(nil))
}

func TestBindingSlotsAreStable(t *testing.T) {
	// These values are shared with the render backend by position, not by
	// name. Changing any of them breaks the draw setup silently.
	assert.Equal(t, 0, UniformBinding)
	assert.Equal(t, 0, SlotVertexPosition)
	assert.Equal(t, 1, SlotInstancePosition)
	assert.Equal(t, 2, SlotInstanceVelocity)
	assert.Equal(t, 3, SlotInstanceRotation)
	assert.Equal(t, 4, SlotInstanceRotationV)
	assert.Equal(t, 68, UniformBlockSize)
	assert.Equal(t, 24, InstanceStride)
}
