package constraint

import (
	"github.com/grovedg/gcad/geo"
	"github.com/grovedg/gcad/vector"
)

// PointID indexes a named point inside a figure. Before ordering it is an
// insertion-order id; after ordering it is the point's solve position.
type PointID = int

// Flags describes properties of a constraint relevant to ordering.
type Flags uint8

const (
	FlagNone Flags = 0
	// FlagDiscretizing marks a constraint that pins down an exact position
	// (as opposed to, say, Chirality, which only ever narrows a half-plane).
	// A point becomes solvable once it is targeted by two distinct
	// discretizing constraints.
	FlagDiscretizing Flags = 1 << 0
)

// Contains reports whether f has every bit set in other.
func (f Flags) Contains(other Flags) bool { return f&other == other }

// Known reports, for a given PointID, whether its position has already
// been fixed by the solve so far. Targets receives one; Loci instead
// receives the positions of the points known so far.
type Known func(PointID) bool

// Constraint is the capability set every geometric relationship between
// named points must expose. ReferencedPoints lists every point slot in
// declaration order (a point may repeat, e.g. as the vertex of an angle
// and the end of a side). Targets reports which of those points this
// constraint could currently help pin down, given what is already known.
// Loci returns the geometric loci contributed for points[targetIndex],
// given the positions of every point whose id is below len(positions).
type Constraint interface {
	ReferencedPoints() []PointID
	Targets(known Known) []PointID
	Loci(positions []vector.Vector, targetIndex int) []geo.Geo
	Flags() Flags
	String() string
	// Remap returns a copy of the constraint with every referenced PointID
	// p replaced by mapping[p]. Used when a figure's points are renumbered
	// (e.g. after ordering settles on a solve sequence).
	Remap(mapping map[PointID]PointID) Constraint
}

// exactlyOneUnknown returns the sole element of pts for which known
// reports false, or (0, false) if zero or more than one are unknown.
func exactlyOneUnknown(pts []PointID, known Known) (PointID, bool) {
	found := -1
	for _, p := range pts {
		if !known(p) {
			if found != -1 {
				return 0, false
			}
			found = p
		}
	}
	if found == -1 {
		return 0, false
	}
	return found, true
}

// countKnown reports how many of pts are already known.
func countKnown(pts []PointID, known Known) int {
	n := 0
	for _, p := range pts {
		if known(p) {
			n++
		}
	}
	return n
}
