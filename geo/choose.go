package geo

import "github.com/grovedg/gcad/vector"

// Choose returns a deterministic representative point of g, used when a
// locus is one- or two-dimensional (under-constrained by itself) so the
// solver still advances with a concrete value.
func Choose(g Geo) vector.Vector {
	switch v := g.(type) {
	case All:
		return vector.Zero
	case Point:
		return v.P
	case Linear:
		l := v.L
		if l < 0 {
			l = 0
		}
		return AlongLinear(v.O, v.V, l+1)
	case Circle:
		return vector.PosX.Scale(v.R).Add(v.C)
	case Half:
		// Unreachable for well-posed figures: chirality never discretizes
		// on its own, so some other locus always narrows the choice
		// before Half alone would have to supply one.
		return v.O.Add(v.N)
	}
	return vector.Zero
}
