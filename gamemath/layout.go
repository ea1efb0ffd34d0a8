package gamemath

import (
	"encoding/binary"
	"math"
)

// GPU binding contract. Everything below this line is positional: the host
// render setup and the shader stages agree on these slots and byte offsets
// implicitly through memory layout, so they must never drift. Inside the
// Go code the same data always travels as named struct fields; these
// constants apply only when serializing buffers for the graphics backend.
const (
	// Uniform block at binding 0: view_proj (16 x float32, column-major)
	// followed immediately by the forecast scalar (1 x float32).
	UniformBinding   = 0
	UniformBlockSize = 17 * 4

	// Vertex buffer, per-vertex step: slot 0 carries the 2D base position.
	SlotVertexPosition = 0

	// Instance buffer, per-instance step.
	SlotInstancePosition  = 1
	SlotInstanceVelocity  = 2
	SlotInstanceRotation  = 3
	SlotInstanceRotationV = 4

	InstanceStride          = 24
	instancePositionOffset  = 0
	instanceVelocityOffset  = 8
	instanceRotationOffset  = 16
	instanceRotationVOffset = 20
)

// PackUniforms serializes the shared uniform block: the transform matrix in
// column-major order with the forecast scalar trailing it, little-endian.
func PackUniforms(viewProj Mat4, forecast float32) []byte {
	buf := make([]byte, 0, UniformBlockSize)
	for _, f := range viewProj {
		buf = appendFloat32(buf, f)
	}
	return appendFloat32(buf, forecast)
}

// PackInstances serializes instance records back-to-back at InstanceStride,
// preserving field order: position, velocity, rotation, rotational velocity.
func PackInstances(instances []TankInstance) []byte {
	buf := make([]byte, 0, len(instances)*InstanceStride)
	for _, inst := range instances {
		buf = appendFloat32(buf, inst.Position[0])
		buf = appendFloat32(buf, inst.Position[1])
		buf = appendFloat32(buf, inst.Velocity[0])
		buf = appendFloat32(buf, inst.Velocity[1])
		buf = appendFloat32(buf, inst.Rotation)
		buf = appendFloat32(buf, inst.RotationV)
	}
	return buf
}

func appendFloat32(buf []byte, f float32) []byte {
	return binary.LittleEndian.AppendUint32(buf, math.Float32bits(f))
}
