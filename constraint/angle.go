package constraint

import (
	"fmt"
	"math"

	"github.com/grovedg/gcad/geo"
	"github.com/grovedg/gcad/vector"
)

// Angle fixes the angle A-B-C (Points[1] is the vertex) to Measure radians.
type Angle struct {
	Points  [3]PointID
	Measure vector.Number
}

func (c Angle) ReferencedPoints() []PointID { return c.Points[:] }

func (c Angle) Targets(known Known) []PointID {
	p, ok := exactlyOneUnknown(c.Points[:], known)
	if !ok {
		return nil
	}
	return []PointID{p}
}

// Loci implements the inscribed-angle construction: when the vertex is the
// target, the locus is one or two circles through the two known arm ends;
// otherwise it is one of two rays from the known vertex at ±Measure from
// the known arm.
func (c Angle) Loci(positions []vector.Vector, targetIndex int) []geo.Geo {
	if targetIndex == 1 {
		s := positions[c.Points[0]]
		e := positions[c.Points[2]]
		v, d := e.Sub(s).UnitMag()
		if vector.AboutZero(d) {
			return nil
		}
		sinM := math.Sin(c.Measure)
		if vector.AboutZero(sinM) {
			return nil
		}
		r := (d / 2) / sinM
		mid := s.Add(e).Scale(0.5)
		a := r * math.Cos(c.Measure)
		if vector.AboutZero(a) {
			return []geo.Geo{geo.Circle{C: mid, R: math.Abs(r)}}
		}
		offset := v.Perp().Scale(a)
		return []geo.Geo{
			geo.Circle{C: mid.Add(offset), R: math.Abs(r)},
			geo.Circle{C: mid.Sub(offset), R: math.Abs(r)},
		}
	}

	baseIdx := 2
	if targetIndex == 2 {
		baseIdx = 0
	}
	o := positions[c.Points[1]]
	b := positions[c.Points[baseIdx]]
	bv, bd := b.Sub(o).UnitMag()
	if vector.AboutZero(bd) {
		return nil
	}
	return []geo.Geo{
		geo.Linear{O: o, V: bv.Rot(c.Measure), L: 0},
		geo.Linear{O: o, V: bv.Rot(-c.Measure), L: 0},
	}
}

func (c Angle) Flags() Flags { return FlagDiscretizing }

func (c Angle) Remap(mapping map[PointID]PointID) Constraint {
	return Angle{
		Points:  [3]PointID{mapping[c.Points[0]], mapping[c.Points[1]], mapping[c.Points[2]]},
		Measure: c.Measure,
	}
}

func (c Angle) String() string {
	return fmt.Sprintf("∠P%dP%dP%d = %v", c.Points[0], c.Points[1], c.Points[2], c.Measure)
}
