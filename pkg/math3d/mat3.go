package math3d

// Mat3 is a 3x3 matrix stored in column-major order, matching Mat4.
//
// Memory layout (indices):
// | 0  3  6 |
// | 1  4  7 |
// | 2  5  8 |
//
// Used for normal matrices (inverse-transpose of a model matrix's rotation
// block) and tangent-space bases.
type Mat3 [9]float64

// Identity3 returns the 3x3 identity matrix.
func Identity3() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Mat3FromBasis builds a matrix whose columns are the given basis vectors.
func Mat3FromBasis(x, y, z Vec3) Mat3 {
	return Mat3{
		x.X, x.Y, x.Z,
		y.X, y.Y, y.Z,
		z.X, z.Y, z.Z,
	}
}

// Mat3 extracts the upper-left 3x3 block of a Mat4 (rotation/scale part).
func (m Mat4) Mat3() Mat3 {
	return Mat3{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
}

// MulVec3 transforms a Vec3.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[3]*v.Y + m[6]*v.Z,
		m[1]*v.X + m[4]*v.Y + m[7]*v.Z,
		m[2]*v.X + m[5]*v.Y + m[8]*v.Z,
	}
}

// Transpose returns the transposed matrix.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Determinant returns the determinant of the matrix.
func (m Mat3) Determinant() float64 {
	return m[0]*(m[4]*m[8]-m[7]*m[5]) -
		m[3]*(m[1]*m[8]-m[7]*m[2]) +
		m[6]*(m[1]*m[5]-m[4]*m[2])
}

// Inverse returns the inverse of the matrix and true, or the identity and
// false when the matrix is singular.
func (m Mat3) Inverse() (Mat3, bool) {
	det := m.Determinant()
	if det == 0 {
		return Identity3(), false
	}
	invDet := 1.0 / det

	var inv Mat3
	inv[0] = (m[4]*m[8] - m[7]*m[5]) * invDet
	inv[1] = (m[7]*m[2] - m[1]*m[8]) * invDet
	inv[2] = (m[1]*m[5] - m[4]*m[2]) * invDet
	inv[3] = (m[6]*m[5] - m[3]*m[8]) * invDet
	inv[4] = (m[0]*m[8] - m[6]*m[2]) * invDet
	inv[5] = (m[3]*m[2] - m[0]*m[5]) * invDet
	inv[6] = (m[3]*m[7] - m[6]*m[4]) * invDet
	inv[7] = (m[6]*m[1] - m[0]*m[7]) * invDet
	inv[8] = (m[0]*m[4] - m[3]*m[1]) * invDet
	return inv, true
}

// NormalMatrix computes the inverse-transpose of the model matrix's
// upper-left 3x3 block. Falls back to the identity when the block is
// singular, so degenerate scales degrade instead of erroring.
func NormalMatrix(model Mat4) Mat3 {
	inv, ok := model.Mat3().Transpose().Inverse()
	if !ok {
		return Identity3()
	}
	return inv
}
