package constraint

import (
	"fmt"
	"math"
	"strings"

	"github.com/grovedg/gcad/geo"
	"github.com/grovedg/gcad/vector"
)

// Perpendicular groups Points into consecutive pairs (2k, 2k+1) and
// requires each pair's line to be perpendicular to its neighbor, so pair k
// is perpendicular to pair j when k-j is odd and parallel to it when k-j
// is even. len(Points) must be even and at least 4.
type Perpendicular struct {
	Points []PointID
}

func (c Perpendicular) ReferencedPoints() []PointID { return c.Points }

func (c Perpendicular) pairs() int { return len(c.Points) / 2 }

func (c Perpendicular) Targets(known Known) []PointID {
	haveRef := false
	for j := 0; j < c.pairs(); j++ {
		if known(c.Points[2*j]) && known(c.Points[2*j+1]) {
			haveRef = true
			break
		}
	}
	if !haveRef {
		return nil
	}
	var out []PointID
	for k := 0; k < c.pairs(); k++ {
		a, b := c.Points[2*k], c.Points[2*k+1]
		switch {
		case known(a) && !known(b):
			out = append(out, b)
		case known(b) && !known(a):
			out = append(out, a)
		}
	}
	return out
}

func (c Perpendicular) Loci(positions []vector.Vector, targetIndex int) []geo.Geo {
	pair := targetIndex / 2
	other := 1 - targetIndex%2
	partner := c.Points[pair*2+other]
	if partner >= len(positions) {
		return nil
	}
	origin := positions[partner]

	for j := 0; j < c.pairs(); j++ {
		if j == pair {
			continue
		}
		a, b := c.Points[2*j], c.Points[2*j+1]
		if a < len(positions) && b < len(positions) {
			dir, d := positions[b].Sub(positions[a]).UnitMag()
			if vector.AboutZero(d) {
				continue
			}
			if (pair-j)%2 != 0 {
				dir = dir.Perp()
			}
			return []geo.Geo{geo.Linear{O: origin, V: dir, L: math.Inf(-1)}}
		}
	}
	return nil
}

func (c Perpendicular) Flags() Flags { return FlagDiscretizing }

func (c Perpendicular) Remap(mapping map[PointID]PointID) Constraint {
	out := make([]PointID, len(c.Points))
	for i, p := range c.Points {
		out[i] = mapping[p]
	}
	return Perpendicular{Points: out}
}

func (c Perpendicular) String() string {
	names := make([]string, len(c.Points))
	for i, p := range c.Points {
		names[i] = fmt.Sprintf("P%d", p)
	}
	return "Perpendicular(" + strings.Join(names, ", ") + ")"
}
