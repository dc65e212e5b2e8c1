package solve_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/grovedg/gcad/constraint"
	"github.com/grovedg/gcad/figure"
	"github.com/grovedg/gcad/solve"
)

func TestSolvePlacesPointsSatisfyingSupport(t *testing.T) {
	fig := figure.New()
	a := fig.GetOrInsert("A")
	b := fig.GetOrInsert("B")
	cid := fig.AddConstraint(constraint.Distance{Points: [2]int{a, b}, Dist: 5})

	positions, err := solve.Solve(fig, [][]figure.CID{nil, {cid}})
	require.NoError(t, err)
	require.InDelta(t, 5, positions[0].Dist(positions[1]), 1e-9)
}

func TestSolveReturnsInfeasibleOnContradiction(t *testing.T) {
	fig := figure.New()
	a := fig.GetOrInsert("A")
	b := fig.GetOrInsert("B")
	c1 := fig.AddConstraint(constraint.Distance{Points: [2]int{a, b}, Dist: 1})
	c2 := fig.AddConstraint(constraint.Distance{Points: [2]int{a, b}, Dist: 2})

	_, err := solve.Solve(fig, [][]figure.CID{nil, {c1, c2}})
	require.Error(t, err)
	var se *solve.SolveError
	require.ErrorAs(t, err, &se)
	require.Equal(t, solve.Infeasible, se.Kind)
}

func TestWithMaxAttemptsRejectsNegative(t *testing.T) {
	fig := figure.New()
	fig.GetOrInsert("A")

	_, err := solve.Solve(fig, [][]figure.CID{nil}, solve.WithMaxAttempts(-1))
	require.ErrorIs(t, err, solve.ErrOptionViolation)
}
