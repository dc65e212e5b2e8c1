package geo

import (
	"math"

	"github.com/grovedg/gcad/vector"
)

// Intersect returns the intersection of g0 and g1 as zero, one, or two
// simpler loci, using a closed-form solution for each pair of shapes. The
// return order is deterministic so repeated solves over equal inputs pick
// the same branch at every backtracking choice point.
func Intersect(g0, g1 Geo) []Geo {
	if g0 == g1 {
		return []Geo{g0}
	}

	if _, ok := g0.(All); ok {
		return []Geo{g1}
	}
	if _, ok := g1.(All); ok {
		return []Geo{g0}
	}

	switch a := g0.(type) {
	case Point:
		return intersectPoint(a, g1)
	default:
		if b, ok := g1.(Point); ok {
			return intersectPoint(b, g0)
		}
	}

	switch a := g0.(type) {
	case Linear:
		switch b := g1.(type) {
		case Linear:
			return intersectLinearLinear(a, b)
		case Circle:
			return intersectCircleLinear(b, a)
		case Half:
			return intersectHalfLinear(b, a)
		}
	case Circle:
		switch b := g1.(type) {
		case Linear:
			return intersectCircleLinear(a, b)
		case Circle:
			return intersectCircleCircle(a, b)
		case Half:
			return intersectHalfCircle(b, a)
		}
	case Half:
		switch b := g1.(type) {
		case Linear:
			return intersectHalfLinear(a, b)
		case Circle:
			return intersectHalfCircle(a, b)
		case Half:
			return intersectHalfHalf(a, b)
		}
	}

	return nil
}

// intersectPoint handles every (Point, g) or (g, Point) pair.
func intersectPoint(p Point, g Geo) []Geo {
	if other, ok := g.(Point); ok {
		if p.P.AboutEq(other.P) {
			return []Geo{p}
		}
		return nil
	}
	if vector.AboutZero(Dist(p.P, g)) {
		return []Geo{p}
	}
	return nil
}

// intersectLinearLinear solves the 2x2 system o0 + t0*v0 == o1 + t1*v1 via
// Cramer's rule.
func intersectLinearLinear(l0, l1 Linear) []Geo {
	b := l1.O.Sub(l0.O)
	a := vector.Vector{X: l0.V.X, Y: -l1.V.X}.Cross(vector.Vector{X: l0.V.Y, Y: -l1.V.Y})
	if a == 0 {
		return nil
	}
	t0 := vector.Vector{X: b.X, Y: -l1.V.X}.Cross(vector.Vector{X: b.Y, Y: -l1.V.Y}) / a
	t1 := vector.Vector{X: l0.V.X, Y: b.X}.Cross(vector.Vector{X: l0.V.Y, Y: b.Y}) / a
	if t0 < l0.L || t1 < l1.L {
		return nil
	}
	return []Geo{Point{P: AlongLinear(l0.O, l0.V, t0)}}
}

// intersectCircleLinear solves the quadratic |o + t*v - c|^2 == r^2.
func intersectCircleLinear(c Circle, l Linear) []Geo {
	oc := l.O.Sub(c.C)
	vOC := l.V.Dot(oc)
	delta := vOC*vOC - (oc.Mag()*oc.Mag() - c.R*c.R)

	var ts []vector.Number
	switch {
	case delta < 0 && !vector.AboutZero(delta):
		return nil
	case vector.AboutZero(delta):
		ts = []vector.Number{-vOC}
	default:
		sqrtDelta := math.Sqrt(delta)
		ts = []vector.Number{-vOC - sqrtDelta, -vOC + sqrtDelta}
	}

	var out []Geo
	for _, t := range ts {
		if t >= l.L {
			out = append(out, Point{P: AlongLinear(l.O, l.V, t)})
		}
	}
	return out
}

// intersectCircleCircle uses the closed form in terms of center separation d.
func intersectCircleCircle(c0, c1 Circle) []Geo {
	dir, d := c1.C.Sub(c0.C).UnitMag()

	if d < math.Abs(c0.R-c1.R) {
		return nil
	}
	if d > c0.R+c1.R {
		return nil
	}

	a := (c0.R*c0.R - c1.R*c1.R + d*d) / (2 * d)
	center := c0.C.Add(dir.Scale(a))

	if vector.AboutEq(d, c0.R+c1.R) {
		return []Geo{Point{P: center}}
	}

	h2 := c0.R*c0.R - a*a
	if h2 < 0 {
		h2 = 0
	}
	h := math.Sqrt(h2)
	hv := dir.Perp().Scale(h)

	return []Geo{
		Point{P: center.Add(hv)},
		Point{P: center.Sub(hv)},
	}
}

// intersectHalfLinear clips a ray/line against a closed half-plane.
//
// Our Linear has only a lower parameter bound (no upper bound), so a clip
// that would produce a genuinely bounded segment on both ends cannot be
// represented exactly; this matters only when Half meets an already-bounded
// ray, which never happens for a well-posed figure (Half only ever arises
// from a non-discretizing chirality constraint, and by the time one is
// intersected the accumulated candidates are already Points).
func intersectHalfLinear(h Half, l Linear) []Geo {
	nv := h.N.Dot(l.V)
	c0 := h.N.Dot(l.O.Sub(h.O))

	if vector.AboutZero(nv) {
		if c0 >= -vector.Epsilon {
			return []Geo{l}
		}
		return nil
	}

	t0 := -c0 / nv
	if nv > 0 {
		newL := l.L
		if t0 > newL {
			newL = t0
		}
		return []Geo{Linear{O: l.O, V: l.V, L: newL}}
	}

	if l.L > t0 && !vector.AboutEq(l.L, t0) {
		return nil
	}
	return []Geo{Linear{O: AlongLinear(l.O, l.V, t0), V: l.V.Scale(-1), L: 0}}
}

// intersectHalfCircle approximates a half-plane clip of a circle: a circle
// straddling the boundary cannot be represented by any Geo variant (the
// result is a circular arc), so the circle is kept whole when its center
// lies in the half-plane and dropped otherwise. See intersectHalfLinear's
// comment: Half never meets anything but a Point in a well-posed figure.
func intersectHalfCircle(h Half, c Circle) []Geo {
	if h.N.Dot(c.C.Sub(h.O)) >= -vector.Epsilon {
		return []Geo{c}
	}
	return nil
}

// intersectHalfHalf does not arise from any constraint lowering in GCAD
// (chirality never produces two Half loci for the same target in the same
// fold step), but is defined for completeness: it keeps h0 when the two
// half-planes agree in the region around h0's own origin, else empty.
func intersectHalfHalf(h0, h1 Half) []Geo {
	if h1.N.Dot(h0.O.Sub(h1.O)) >= -vector.Epsilon {
		return []Geo{h0}
	}
	return nil
}

// Meet computes the Cartesian product of a and b, concatenating the
// Intersect of every pair. It is commutative and associative up to the
// order of returned alternatives.
func Meet(a, b []Geo) []Geo {
	var out []Geo
	for _, g0 := range a {
		for _, g1 := range b {
			out = append(out, Intersect(g0, g1)...)
		}
	}
	return out
}
