package order

import (
	"github.com/grovedg/gcad/figure"
	"github.com/grovedg/gcad/solve"
	"github.com/grovedg/gcad/vector"
)

// OrderAndSolve is the single entry point a caller needs: it orders fig
// (renumbering its points and erroring out on AmbiguousPlacement or
// Unreached) and then solves for concrete positions, returning them
// indexed by the figure's final point numbering. Use fig.Name(i) to map a
// position back to the name it was inserted under.
func OrderAndSolve(fig *figure.Figure, opts ...solve.Option) ([]vector.Vector, error) {
	support, err := Order(fig)
	if err != nil {
		return nil, err
	}
	return solve.Solve(fig, support, opts...)
}
