package constraint

import (
	"fmt"

	"github.com/grovedg/gcad/geo"
	"github.com/grovedg/gcad/vector"
)

// Distance fixes the separation between two points to Dist.
type Distance struct {
	Points [2]PointID
	Dist   vector.Number
}

func (c Distance) ReferencedPoints() []PointID { return c.Points[:] }

func (c Distance) Targets(known Known) []PointID {
	p, ok := exactlyOneUnknown(c.Points[:], known)
	if !ok {
		return nil
	}
	return []PointID{p}
}

// Loci returns a circle of radius Dist centered on the point that is not
// the target, i.e. the locus of points exactly Dist away from it.
func (c Distance) Loci(positions []vector.Vector, targetIndex int) []geo.Geo {
	centerIdx := 0
	if targetIndex == 0 {
		centerIdx = 1
	}
	center := positions[c.Points[centerIdx]]
	return []geo.Geo{geo.Circle{C: center, R: c.Dist}}
}

func (c Distance) Flags() Flags { return FlagDiscretizing }

func (c Distance) Remap(mapping map[PointID]PointID) Constraint {
	return Distance{Points: [2]PointID{mapping[c.Points[0]], mapping[c.Points[1]]}, Dist: c.Dist}
}

func (c Distance) String() string {
	return fmt.Sprintf("|P%d P%d| = %v", c.Points[0], c.Points[1], c.Dist)
}
