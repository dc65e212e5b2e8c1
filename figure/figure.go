package figure

import (
	"errors"

	"github.com/grovedg/gcad/constraint"
)

// PointID indexes a named point. CID indexes a constraint in a Figure's
// constraint table. Both are dense, non-negative, and start at 0.
type PointID = constraint.PointID
type CID = int

// ErrUnknownPoint is returned when a PointID outside the figure's current
// range is used in an operation that requires it to already exist.
var ErrUnknownPoint = errors.New("figure: unknown point id")

// ErrIncompleteMapping is returned by RemapIDs when mapping does not cover
// every current point id.
var ErrIncompleteMapping = errors.New("figure: remapping does not cover every point")

// Figure is the mutable container a caller builds up by naming points and
// attaching constraints between them, before handing it to order.OrderAndSolve.
type Figure struct {
	names   []string                // PointID -> name
	ids     map[string]int          // name -> PointID
	cids    [][]CID                 // PointID -> constraint ids referencing it
	constrs []constraint.Constraint // CID -> constraint
}

// New returns an empty Figure.
func New() *Figure {
	return &Figure{
		ids: make(map[string]int),
	}
}

// GetOrInsert returns the PointID for name, allocating a fresh one (in
// insertion order) the first time name is seen.
func (f *Figure) GetOrInsert(name string) PointID {
	if id, ok := f.ids[name]; ok {
		return id
	}
	id := len(f.names)
	f.names = append(f.names, name)
	f.cids = append(f.cids, nil)
	f.ids[name] = id
	return id
}

// AddConstraint appends c to the figure's constraint table and indexes it
// against every point it references, returning its CID.
func (f *Figure) AddConstraint(c constraint.Constraint) CID {
	cid := len(f.constrs)
	seen := make(map[PointID]bool)
	for _, p := range c.ReferencedPoints() {
		if seen[p] {
			continue
		}
		seen[p] = true
		f.cids[p] = append(f.cids[p], cid)
	}
	f.constrs = append(f.constrs, c)
	return cid
}

// NumPoints returns the number of distinct points named so far.
func (f *Figure) NumPoints() int { return len(f.names) }

// Name returns the name a PointID was first inserted under.
func (f *Figure) Name(p PointID) string { return f.names[p] }

// Constraint returns the constraint stored under cid.
func (f *Figure) Constraint(cid CID) constraint.Constraint { return f.constrs[cid] }

// NumConstraints returns the number of constraints added so far.
func (f *Figure) NumConstraints() int { return len(f.constrs) }

// ConstraintsOf returns the CIDs of every constraint that references p, in
// the order they were added.
func (f *Figure) ConstraintsOf(p PointID) []CID {
	return f.cids[p]
}

// RemapIDs renumbers every point according to mapping, which must be a
// bijection from {0, ..., NumPoints()-1} onto itself. It rewrites every
// constraint's referenced points, the name bimap, and the reverse index.
//
// The rename is built into fresh out-of-place buffers rather than mutated
// in place: if mapping is not the identity, writing q := mapping[p] into
// position p while also needing to read position q for some other p'
// later risks clobbering data a subsequent iteration still needs.
func (f *Figure) RemapIDs(mapping map[PointID]PointID) error {
	n := len(f.names)
	if len(mapping) != n {
		return ErrIncompleteMapping
	}
	seen := make([]bool, n)
	for p, q := range mapping {
		if p < 0 || p >= n || q < 0 || q >= n {
			return ErrUnknownPoint
		}
		if seen[q] {
			return ErrIncompleteMapping
		}
		seen[q] = true
	}

	newNames := make([]string, n)
	newCids := make([][]CID, n)
	for p, q := range mapping {
		newNames[q] = f.names[p]
		newCids[q] = f.cids[p]
	}

	newConstrs := make([]constraint.Constraint, len(f.constrs))
	for i, c := range f.constrs {
		newConstrs[i] = c.Remap(mapping)
	}

	f.names = newNames
	f.cids = newCids
	f.constrs = newConstrs
	f.ids = make(map[string]int, n)
	for id, name := range f.names {
		f.ids[name] = id
	}
	return nil
}
