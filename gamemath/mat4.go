package gamemath

// Mat4 is a 4x4 float32 matrix in column-major order: element (row r, col c)
// lives at index c*4+r. Column-major matches the GPU uniform layout, so a
// Mat4 can be packed byte-for-byte without reshuffling.
type Mat4 [16]float32

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mul returns m * n.
func (m Mat4) Mul(n Mat4) Mat4 {
	var out Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[k*4+r] * n[c*4+k]
			}
			out[c*4+r] = sum
		}
	}
	return out
}

// MulVec4 returns m * v.
func (m Mat4) MulVec4(v [4]float32) [4]float32 {
	var out [4]float32
	for r := 0; r < 4; r++ {
		out[r] = m[0*4+r]*v[0] + m[1*4+r]*v[1] + m[2*4+r]*v[2] + m[3*4+r]*v[3]
	}
	return out
}

// AppendScaling returns S * m where S scales x, y and z uniformly by s.
// "Append" means the scaling applies after m, matching the order the
// projection builder composes its stages in.
func (m Mat4) AppendScaling(s float32) Mat4 {
	return scaling(s, s, s).Mul(m)
}

// AppendNonuniformScaling returns S * m with independent axis factors.
func (m Mat4) AppendNonuniformScaling(x, y, z float32) Mat4 {
	return scaling(x, y, z).Mul(m)
}

// AppendTranslation returns T * m.
func (m Mat4) AppendTranslation(x, y, z float32) Mat4 {
	t := Identity()
	t[12] = x
	t[13] = y
	t[14] = z
	return t.Mul(m)
}

func scaling(x, y, z float32) Mat4 {
	var s Mat4
	s[0] = x
	s[5] = y
	s[10] = z
	s[15] = 1
	return s
}
