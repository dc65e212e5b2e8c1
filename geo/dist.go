package geo

import (
	"math"

	"github.com/grovedg/gcad/vector"
)

// Dist returns the shortest distance from p to the locus g.
func Dist(p vector.Vector, g Geo) vector.Number {
	switch v := g.(type) {
	case All:
		return 0
	case Point:
		return p.Dist(v.P)
	case Linear:
		return p.Dist(ClosestLinear(v.O, v.V, v.L, p))
	case Circle:
		return math.Abs(p.Dist(v.C) - v.R)
	case Half:
		signed := v.N.Dot(p.Sub(v.O))
		if signed >= 0 {
			return 0
		}
		return -signed
	}
	return 0
}
