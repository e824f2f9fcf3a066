package heartbutton

// Affine is a 2D affine matrix [a, b, c, d, tx, ty].
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
type Affine [6]float64

// Identity is the identity affine matrix.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// ScaleTransform maps the logical box onto a surface of width × height
// pixels. X and Y scale independently, so a non-square surface stretches the
// artwork instead of letterboxing it.
func ScaleTransform(width, height float64) Affine {
	return Affine{width / LogicalSize, 0, 0, height / LogicalSize, 0, 0}
}

// ScaleAbout scales by (sx, sy) around the pivot (px, py).
func ScaleAbout(sx, sy, px, py float64) Affine {
	return Affine{sx, 0, 0, sy, px - sx*px, py - sy*py}
}

// Translate returns a pure translation.
func Translate(tx, ty float64) Affine {
	return Affine{1, 0, 0, 1, tx, ty}
}

// Multiply returns m * c, i.e. c is applied first.
func (m Affine) Multiply(c Affine) Affine {
	return Affine{
		m[0]*c[0] + m[2]*c[1],
		m[1]*c[0] + m[3]*c[1],
		m[0]*c[2] + m[2]*c[3],
		m[1]*c[2] + m[3]*c[3],
		m[0]*c[4] + m[2]*c[5] + m[4],
		m[1]*c[4] + m[3]*c[5] + m[5],
	}
}

// Apply transforms the point (x, y).
func (m Affine) Apply(x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// ScaleFactors returns the X and Y scale of an axis-aligned matrix.
func (m Affine) ScaleFactors() (float64, float64) {
	return m[0], m[3]
}
