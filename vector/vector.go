package vector

import "math"

// Number is the scalar type used for all coordinates, distances, and angles.
type Number = float64

// Epsilon is the tolerance used by AboutEq and AboutZero. Two quantities
// within Epsilon of each other are treated as equal throughout GCAD.
const Epsilon Number = 1e-9

// AboutEq reports whether a and b are within Epsilon of each other.
func AboutEq(a, b Number) bool {
	return math.Abs(a-b) <= Epsilon
}

// AboutZero reports whether a is within Epsilon of zero.
func AboutZero(a Number) bool {
	return math.Abs(a) <= Epsilon
}

// Vector is an ordered pair (X, Y) of Number, GCAD's only point/direction type.
type Vector struct {
	X, Y Number
}

// Zero, PosX, NegX, PosY, and NegY are the common unit/origin constants.
var (
	Zero = Vector{0, 0}
	PosX = Vector{1, 0}
	NegX = Vector{-1, 0}
	PosY = Vector{0, 1}
	NegY = Vector{0, -1}
)

// Add returns the component-wise sum v + w.
func (v Vector) Add(w Vector) Vector {
	return Vector{v.X + w.X, v.Y + w.Y}
}

// Sub returns the component-wise difference v - w.
func (v Vector) Sub(w Vector) Vector {
	return Vector{v.X - w.X, v.Y - w.Y}
}

// Scale returns v scaled by the scalar s.
func (v Vector) Scale(s Number) Vector {
	return Vector{v.X * s, v.Y * s}
}

// Div returns v with both components divided by the scalar s.
func (v Vector) Div(s Number) Vector {
	return Vector{v.X / s, v.Y / s}
}

// Dot returns the dot product v . w.
func (v Vector) Dot(w Vector) Number {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the scalar cross product v.X*w.Y - v.Y*w.X.
func (v Vector) Cross(w Vector) Number {
	return v.X*w.Y - v.Y*w.X
}

// Mag returns the Euclidean length of v.
func (v Vector) Mag() Number {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Dist returns the Euclidean distance between v and w.
func (v Vector) Dist(w Vector) Number {
	return w.Sub(v).Mag()
}

// Unit returns v scaled to unit length. The result is undefined if v is the
// zero vector; callers must guard against that case (see UnitMag).
func (v Vector) Unit() Vector {
	return v.Div(v.Mag())
}

// UnitMag returns both the unit vector and the original magnitude in one
// call, avoiding a redundant Mag() for callers that need both (the common
// case in constraint lowering, e.g. Angle's inscribed-angle locus).
func (v Vector) UnitMag() (Vector, Number) {
	d := v.Mag()
	return v.Div(d), d
}

// Perp returns v rotated 90 degrees counter-clockwise: (x, y) -> (-y, x).
func (v Vector) Perp() Vector {
	return Vector{-v.Y, v.X}
}

// Rot returns v rotated by angle radians.
func (v Vector) Rot(angle Number) Vector {
	u := FromAngle(angle)
	return Vector{
		X: v.X*u.X - v.Y*u.Y,
		Y: v.X*u.Y + v.Y*u.X,
	}
}

// FromAngle returns the unit vector at the given angle from the positive X axis.
func FromAngle(angle Number) Vector {
	return Vector{math.Cos(angle), math.Sin(angle)}
}

// AboutEq reports whether v and w are equal to within Epsilon componentwise.
func (v Vector) AboutEq(w Vector) bool {
	return AboutEq(v.X, w.X) && AboutEq(v.Y, w.Y)
}

// AboutZero reports whether v is within Epsilon of the zero vector.
func (v Vector) AboutZero() bool {
	return AboutZero(v.X) && AboutZero(v.Y)
}
