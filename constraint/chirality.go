package constraint

import (
	"fmt"
	"strings"

	"github.com/grovedg/gcad/geo"
	"github.com/grovedg/gcad/vector"
)

// Polarity records whether a chirality triple is asserted to wind the same
// way as the constraint's reference triple (Same) or the opposite way (Opposite).
type Polarity int

const (
	Same Polarity = iota
	Opposite
)

// Chirality asserts that every triple in Triples winds consistently: all
// triples sharing Polarity turn the same way, and triples with opposite
// Polarity turn the opposite way. It never discretizes a point on its own
// (FlagNone) — it only ever narrows a half-plane, and needs at least one
// fully-known triple to have anything to compare against. At least two
// triples (six points) are required for the constraint to mean anything.
type Chirality struct {
	Triples    [][3]PointID
	Polarities []Polarity
}

func (c Chirality) ReferencedPoints() []PointID {
	out := make([]PointID, 0, 3*len(c.Triples))
	for _, t := range c.Triples {
		out = append(out, t[0], t[1], t[2])
	}
	return out
}

func (c Chirality) Targets(known Known) []PointID {
	if _, _, ok := c.findReference(known); !ok {
		return nil
	}
	var out []PointID
	for _, t := range c.Triples {
		if p, ok := exactlyOneUnknown(t[:], known); ok {
			out = append(out, p)
		}
	}
	return out
}

func (c Chirality) findReference(known Known) ([3]PointID, Polarity, bool) {
	for i, t := range c.Triples {
		if known(t[0]) && known(t[1]) && known(t[2]) {
			return t, c.Polarities[i], true
		}
	}
	return [3]PointID{}, Same, false
}

func windSign(p [3]vector.Vector) vector.Number {
	return p[1].Sub(p[0]).Cross(p[2].Sub(p[1]))
}

// Loci narrows the target to the half-plane consistent with a fully-known
// reference triple's winding. The boundary is the line through the
// target's two known points; which side of it is correct is resolved by
// probing: nudge a trial point off the candidate boundary along the
// candidate normal and check whether the resulting triple's wind sign
// matches what's required. The same probe serves all three possible target
// slots, including the middle (vertex) slot: the wind sign is affine in
// each point and vanishes on the boundary line, so one probe decides the
// side.
func (c Chirality) Loci(positions []vector.Vector, targetIndex int) []geo.Geo {
	tripleIdx := targetIndex / 3
	slot := targetIndex % 3

	refTriple, refPol, ok := c.findReference(func(p PointID) bool { return p < len(positions) })
	if !ok {
		return nil
	}
	refPos := [3]vector.Vector{positions[refTriple[0]], positions[refTriple[1]], positions[refTriple[2]]}
	refWind := windSign(refPos)
	if vector.AboutZero(refWind) {
		return nil
	}

	targetPol := c.Polarities[tripleIdx]
	want := refWind
	if targetPol != refPol {
		want = -refWind
	}

	target := c.Triples[tripleIdx]
	var knownSlots []int
	for s := 0; s < 3; s++ {
		if s != slot {
			knownSlots = append(knownSlots, s)
		}
	}
	a := positions[target[knownSlots[0]]]
	b := positions[target[knownSlots[1]]]
	dir, d := b.Sub(a).UnitMag()
	if vector.AboutZero(d) {
		return nil
	}
	n := dir.Perp()

	probe := a.Add(n)
	var trial [3]vector.Vector
	for s := 0; s < 3; s++ {
		if s == slot {
			trial[s] = probe
		} else {
			trial[s] = positions[target[s]]
		}
	}
	probeWind := windSign(trial)
	if (probeWind >= 0) != (want >= 0) {
		n = n.Scale(-1)
	}

	return []geo.Geo{geo.Half{O: a, N: n}}
}

func (c Chirality) Flags() Flags { return FlagNone }

func (c Chirality) Remap(mapping map[PointID]PointID) Constraint {
	triples := make([][3]PointID, len(c.Triples))
	for i, t := range c.Triples {
		triples[i] = [3]PointID{mapping[t[0]], mapping[t[1]], mapping[t[2]]}
	}
	polarities := make([]Polarity, len(c.Polarities))
	copy(polarities, c.Polarities)
	return Chirality{Triples: triples, Polarities: polarities}
}

func (c Chirality) String() string {
	parts := make([]string, len(c.Triples))
	for i, t := range c.Triples {
		sign := "+"
		if c.Polarities[i] == Opposite {
			sign = "-"
		}
		parts[i] = fmt.Sprintf("%s∠P%dP%dP%d", sign, t[0], t[1], t[2])
	}
	return strings.Join(parts, ", ")
}
