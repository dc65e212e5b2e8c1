package order

import (
	"github.com/grovedg/gcad/constraint"
	"github.com/grovedg/gcad/figure"
)

// discretizingCount reports how many of supports are flagged discretizing.
// A target is considered discretized once this reaches 2: two independent
// constraints narrowing it down to a point (a circle and a line, two
// circles, ...) rather than leaving a whole locus of candidates.
func discretizingCount(fig *figure.Figure, supports []figure.CID) int {
	n := 0
	for _, cid := range supports {
		if fig.Constraint(cid).Flags().Contains(constraint.FlagDiscretizing) {
			n++
		}
	}
	return n
}

func containsCID(list []figure.CID, cid figure.CID) bool {
	for _, c := range list {
		if c == cid {
			return true
		}
	}
	return false
}

// expandFrom walks every constraint touching p and, for each point it can
// now target given known, records the constraint as support for that
// target (skipping a constraint already recorded against the same target).
// It returns the targets whose discretizing support count just reached 2.
func expandFrom(fig *figure.Figure, known constraint.Known, p figure.PointID, support map[figure.PointID][]figure.CID) []figure.PointID {
	var fresh []figure.PointID
	for _, cid := range fig.ConstraintsOf(p) {
		c := fig.Constraint(cid)
		for _, t := range c.Targets(known) {
			if containsCID(support[t], cid) {
				continue
			}
			support[t] = append(support[t], cid)
			if c.Flags().Contains(constraint.FlagDiscretizing) && discretizingCount(fig, support[t]) == 2 {
				fresh = append(fresh, t)
			}
		}
	}
	return fresh
}

// treeEntry is one step of a root tree's placement order: a point and the
// constraints that discretize it (or, for the orbiter, whatever partial
// support it accumulated for free from the root/orbiter pairing).
type treeEntry struct {
	point    figure.PointID
	supports []figure.CID
}

type tree struct {
	order   []treeEntry
	covered map[figure.PointID]bool
}

// computeTree grows a root tree from (root, orbiter). root is processed
// alone first — known holds only root — before orbiter is folded into
// known. This lets a lone constraint relating root and orbiter register
// one support entry for orbiter (not enough to discretize it on its own)
// before orbiter's position is fixed by the root/orbiter gauge freedom
// rather than by a real 2-support intersection. Any other point already
// discretized by root's constraints alone is queued right after orbiter.
// Every point after that must earn its place through expandFrom the normal
// way.
func computeTree(fig *figure.Figure, root, orbiter figure.PointID) tree {
	support := make(map[figure.PointID][]figure.CID)
	known := map[figure.PointID]bool{root: true}
	isKnown := func(p figure.PointID) bool { return known[p] }
	fresh := expandFrom(fig, isKnown, root, support)

	known[orbiter] = true
	order := []figure.PointID{root, orbiter}
	for _, t := range fresh {
		if t != orbiter {
			order = append(order, t)
		}
	}
	for i := 1; i < len(order); i++ {
		p := order[i]
		known[p] = true
		order = append(order, expandFrom(fig, isKnown, p, support)...)
	}

	covered := make(map[figure.PointID]bool, len(order))
	entries := make([]treeEntry, len(order))
	for i, p := range order {
		covered[p] = true
		entries[i] = treeEntry{point: p, supports: support[p]}
	}
	return tree{order: entries, covered: covered}
}

// eligibleRoot requires a candidate root to be touched by at least two
// distinct constraints. A point touched by only the one constraint that
// relates it to its would-be orbiter has nothing anchoring it to the rest
// of the figure: accepting it as a root would let any lone pairwise
// relation bootstrap a whole coordinate frame, which would make a bare
// two-point, one-constraint figure solvable when it is in fact
// underdetermined (its position and orientation are both still free).
func eligibleRoot(fig *figure.Figure, p figure.PointID) bool {
	return len(fig.ConstraintsOf(p)) >= 2
}

func canonicalPair(a, b figure.PointID) [2]figure.PointID {
	if a < b {
		return [2]figure.PointID{a, b}
	}
	return [2]figure.PointID{b, a}
}

// rootPairs enumerates every candidate pair once, as (root, orbiter) with
// the eligible root first: for each eligible root p, every point reachable
// as a target of one of p's constraints when only p is known. A pair
// already produced from its other end is skipped. Iteration is in
// increasing PointID order throughout, so the result is deterministic.
func rootPairs(fig *figure.Figure) [][2]figure.PointID {
	seen := make(map[[2]figure.PointID]bool)
	var pairs [][2]figure.PointID
	n := fig.NumPoints()
	for p := 0; p < n; p++ {
		if !eligibleRoot(fig, p) {
			continue
		}
		known := map[figure.PointID]bool{p: true}
		isKnown := func(q figure.PointID) bool { return known[q] }
		seenTarget := make(map[figure.PointID]bool)
		for _, cid := range fig.ConstraintsOf(p) {
			c := fig.Constraint(cid)
			for _, t := range c.Targets(isKnown) {
				if t == p || seenTarget[t] {
					continue
				}
				seenTarget[t] = true
				key := canonicalPair(p, t)
				if seen[key] {
					continue
				}
				seen[key] = true
				pairs = append(pairs, [2]figure.PointID{p, t})
			}
		}
	}
	return pairs
}

func isSubset(a, b map[figure.PointID]bool) bool {
	for p := range a {
		if !b[p] {
			return false
		}
	}
	return true
}

// computeForest runs every candidate root pair, in rootPairs' deterministic
// order, skipping a pair already jointly covered by an existing tree and
// discarding any existing tree that turns out to be a subset of a newly
// grown one.
func computeForest(fig *figure.Figure) []tree {
	pairs := rootPairs(fig)
	var forest []tree
	for _, pr := range pairs {
		root, orbiter := pr[0], pr[1]
		alreadyCovered := false
		for _, t := range forest {
			if t.covered[root] && t.covered[orbiter] {
				alreadyCovered = true
				break
			}
		}
		if alreadyCovered {
			continue
		}
		nt := computeTree(fig, root, orbiter)
		kept := forest[:0:0]
		for _, t := range forest {
			if isSubset(t.covered, nt.covered) {
				continue
			}
			kept = append(kept, t)
		}
		forest = append(kept, nt)
	}
	return forest
}

// partitionSupports orders a point's final support list with discretizing
// constraints first, so the solver tries the loci that actually narrow the
// candidate set before the ones that only filter it.
func partitionSupports(fig *figure.Figure, cids []figure.CID) []figure.CID {
	out := make([]figure.CID, 0, len(cids))
	for _, c := range cids {
		if fig.Constraint(c).Flags().Contains(constraint.FlagDiscretizing) {
			out = append(out, c)
		}
	}
	for _, c := range cids {
		if !fig.Constraint(c).Flags().Contains(constraint.FlagDiscretizing) {
			out = append(out, c)
		}
	}
	return out
}

// Order computes a solve order for fig and renumbers its points in place
// (via figure.Figure.RemapIDs) to match that order: point i's entry in the
// returned slice lists the CIDs that discretize it, in the renumbered
// figure's terms. It fails with AmbiguousPlacement if some point is
// reached by more than one root tree, or Unreached if some point is
// reached by none.
func Order(fig *figure.Figure) ([][]figure.CID, error) {
	forest := computeForest(fig)

	n := fig.NumPoints()
	const none, ambiguous = -1, -2
	owner := make([]int, n)
	for i := range owner {
		owner[i] = none
	}
	for ti, t := range forest {
		for p := range t.covered {
			switch owner[p] {
			case none:
				owner[p] = ti
			case ti:
			default:
				owner[p] = ambiguous
			}
		}
	}

	var ambiguousPts, unreachedPts []int
	for p := 0; p < n; p++ {
		switch owner[p] {
		case none:
			unreachedPts = append(unreachedPts, p)
		case ambiguous:
			ambiguousPts = append(ambiguousPts, p)
		}
	}
	if len(ambiguousPts) > 0 {
		return nil, &OrderingError{Kind: AmbiguousPlacement, Points: ambiguousPts}
	}
	if len(unreachedPts) > 0 {
		return nil, &OrderingError{Kind: Unreached, Points: unreachedPts}
	}

	mapping := make(map[figure.PointID]figure.PointID, n)
	support := make([][]figure.CID, n)
	pos := 0
	for _, t := range forest {
		for _, e := range t.order {
			mapping[e.point] = pos
			support[pos] = partitionSupports(fig, e.supports)
			pos++
		}
	}
	if err := fig.RemapIDs(mapping); err != nil {
		return nil, err
	}
	return support, nil
}
