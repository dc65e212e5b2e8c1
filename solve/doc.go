// Package solve assigns positions to an ordered figure's points via
// backtracking: at each point, every supporting constraint contributes its
// loci, the loci are met down to a small candidate set, and a
// deterministic representative is tried before recursing. On failure it
// backtracks to the previous point's next candidate.
package solve
