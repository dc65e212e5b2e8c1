package solve

import (
	"github.com/grovedg/gcad/constraint"
	"github.com/grovedg/gcad/figure"
	"github.com/grovedg/gcad/geo"
	"github.com/grovedg/gcad/vector"
)

// targetIndexOf finds p's slot within c's referenced points, so c.Loci can
// be told which argument it is being asked to solve for.
func targetIndexOf(c constraint.Constraint, p figure.PointID) int {
	for i, q := range c.ReferencedPoints() {
		if q == p {
			return i
		}
	}
	return -1
}

// Solve assigns a position to every point of fig, given the per-point
// support lists order.Order produced (fig must already be renumbered by
// Order: support[i] lists the CIDs that discretize point i). It
// backtracks: at point i, every support constraint contributes a locus,
// the loci are met down to a candidate set, and geo.Choose of each
// candidate is tried in turn, recursing into i+1 and backing off to the
// next candidate on failure.
func Solve(fig *figure.Figure, support [][]figure.CID, opts ...Option) ([]vector.Vector, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	positions := make([]vector.Vector, fig.NumPoints())
	attempts := 0
	failedAt := 0
	if !step(fig, support, positions, 0, o.MaxAttempts, &attempts, &failedAt) {
		return nil, &SolveError{Kind: Infeasible, Point: failedAt}
	}
	return positions, nil
}

func step(fig *figure.Figure, support [][]figure.CID, positions []vector.Vector, i int, maxAttempts int, attempts, failedAt *int) bool {
	if i == len(positions) {
		return true
	}

	// A nil Loci result (a degenerate input, e.g. a zero-length known arm)
	// collapses candidates to empty exactly like a genuinely contradictory
	// intersection would: geo.Meet ranges over its second argument, so
	// meeting against nil yields nil, and the loop below tries no
	// candidates and backtracks.
	candidates := []geo.Geo{geo.All{}}
	for _, cid := range support[i] {
		c := fig.Constraint(cid)
		loci := c.Loci(positions[:i], targetIndexOf(c, i))
		candidates = geo.Meet(candidates, loci)
	}

	for _, cand := range candidates {
		if maxAttempts > 0 && *attempts >= maxAttempts {
			*failedAt = i
			return false
		}
		*attempts++
		positions[i] = geo.Choose(cand)
		if step(fig, support, positions, i+1, maxAttempts, attempts, failedAt) {
			return true
		}
	}
	*failedAt = i
	return false
}
