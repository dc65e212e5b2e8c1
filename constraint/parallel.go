package constraint

import (
	"fmt"
	"math"
	"strings"

	"github.com/grovedg/gcad/geo"
	"github.com/grovedg/gcad/vector"
)

// Parallel groups Points into consecutive pairs (2k, 2k+1), each pair
// defining a line, and requires all of those lines to share one direction.
// len(Points) must be even and at least 4 (two pairs).
type Parallel struct {
	Points []PointID
}

func (c Parallel) ReferencedPoints() []PointID { return c.Points }

func (c Parallel) pairs() int { return len(c.Points) / 2 }

func (c Parallel) Targets(known Known) []PointID {
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

// Loci returns the line through the target's known partner, parallel to
// any other pair that is already fully known.
func (c Parallel) Loci(positions []vector.Vector, targetIndex int) []geo.Geo {
	pair := targetIndex / 2
	other := 1 - targetIndex%2
	partner := c.Points[pair*2+other]
	if partner >= len(positions) {
		return nil
	}
	origin := positions[partner]

	for j := 0; j < c.pairs(); j++ {
		a, b := c.Points[2*j], c.Points[2*j+1]
		if a < len(positions) && b < len(positions) {
			dir, d := positions[b].Sub(positions[a]).UnitMag()
			if vector.AboutZero(d) {
				continue
			}
			return []geo.Geo{geo.Linear{O: origin, V: dir, L: math.Inf(-1)}}
		}
	}
	return nil
}

func (c Parallel) Flags() Flags { return FlagDiscretizing }

func (c Parallel) Remap(mapping map[PointID]PointID) Constraint {
	out := make([]PointID, len(c.Points))
	for i, p := range c.Points {
		out[i] = mapping[p]
	}
	return Parallel{Points: out}
}

func (c Parallel) String() string {
	names := make([]string, len(c.Points))
	for i, p := range c.Points {
		names[i] = fmt.Sprintf("P%d", p)
	}
	return "Parallel(" + strings.Join(names, ", ") + ")"
}
