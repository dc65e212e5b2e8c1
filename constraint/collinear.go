package constraint

import (
	"fmt"
	"math"
	"strings"

	"github.com/grovedg/gcad/geo"
	"github.com/grovedg/gcad/vector"
)

// Collinear requires every point in Points (at least 3) to lie on a common
// line. Unlike Distance/Angle it can target more than one point at once:
// once two members are known, every remaining unknown member is pinned to
// the line through them.
type Collinear struct {
	Points []PointID
}

func (c Collinear) ReferencedPoints() []PointID { return c.Points }

func (c Collinear) Targets(known Known) []PointID {
	if countKnown(c.Points, known) < 2 {
		return nil
	}
	var out []PointID
	for _, p := range c.Points {
		if !known(p) {
			out = append(out, p)
		}
	}
	return out
}

// Loci returns the single line through any two already-known members.
func (c Collinear) Loci(positions []vector.Vector, targetIndex int) []geo.Geo {
	var known []PointID
	for _, p := range c.Points {
		if p < len(positions) {
			known = append(known, p)
			if len(known) == 2 {
				break
			}
		}
	}
	if len(known) < 2 {
		return nil
	}
	line := geo.LineFromPoints(positions[known[0]], positions[known[1]], math.Inf(-1))
	return []geo.Geo{line}
}

func (c Collinear) Flags() Flags { return FlagDiscretizing }

func (c Collinear) Remap(mapping map[PointID]PointID) Constraint {
	out := make([]PointID, len(c.Points))
	for i, p := range c.Points {
		out[i] = mapping[p]
	}
	return Collinear{Points: out}
}

func (c Collinear) String() string {
	names := make([]string, len(c.Points))
	for i, p := range c.Points {
		names[i] = fmt.Sprintf("P%d", p)
	}
	return "Collinear(" + strings.Join(names, ", ") + ")"
}
