package geo_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/grovedg/gcad/geo"
	"github.com/grovedg/gcad/vector"
)

func TestIntersectAllIsIdentity(t *testing.T) {
	p := geo.Point{P: vector.Vector{X: 1, Y: 2}}
	require.Equal(t, []geo.Geo{p}, geo.Intersect(p, geo.All{}))
	require.Equal(t, []geo.Geo{p}, geo.Intersect(geo.All{}, p))
}

func TestIntersectIdenticalShortCircuits(t *testing.T) {
	c := geo.Circle{C: vector.Vector{X: 1, Y: 1}, R: 2}
	require.Equal(t, []geo.Geo{c}, geo.Intersect(c, c))
}

func TestIntersectPointPoint(t *testing.T) {
	p0 := geo.Point{P: vector.Vector{X: 1, Y: 1}}
	p1 := geo.Point{P: vector.Vector{X: 1, Y: 1 + 1e-12}}
	require.Equal(t, []geo.Geo{p0}, geo.Intersect(p0, p1))

	p2 := geo.Point{P: vector.Vector{X: 5, Y: 5}}
	require.Empty(t, geo.Intersect(p0, p2))
}

func TestIntersectLinearLinear(t *testing.T) {
	horiz := geo.Linear{O: vector.Vector{X: 0, Y: 0}, V: vector.PosX, L: math.Inf(-1)}
	vert := geo.Linear{O: vector.Vector{X: 2, Y: -5}, V: vector.PosY, L: math.Inf(-1)}
	got := geo.Intersect(horiz, vert)
	require.Len(t, got, 1)
	pt, ok := got[0].(geo.Point)
	require.True(t, ok)
	require.True(t, pt.P.AboutEq(vector.Vector{X: 2, Y: 0}))
}

func TestIntersectParallelLinesEmpty(t *testing.T) {
	l0 := geo.Linear{O: vector.Vector{X: 0, Y: 0}, V: vector.PosX, L: math.Inf(-1)}
	l1 := geo.Linear{O: vector.Vector{X: 0, Y: 1}, V: vector.PosX, L: math.Inf(-1)}
	require.Empty(t, geo.Intersect(l0, l1))
}

func TestIntersectRayBeforeStartEmpty(t *testing.T) {
	ray := geo.Linear{O: vector.Vector{X: 0, Y: 0}, V: vector.PosX, L: 5}
	vert := geo.Linear{O: vector.Vector{X: 2, Y: -5}, V: vector.PosY, L: math.Inf(-1)}
	require.Empty(t, geo.Intersect(ray, vert))
}

func TestIntersectCircleLinearTangent(t *testing.T) {
	c := geo.Circle{C: vector.Vector{X: 0, Y: 0}, R: 1}
	line := geo.Linear{O: vector.Vector{X: -2, Y: 1}, V: vector.PosX, L: math.Inf(-1)}
	got := geo.Intersect(c, line)
	require.Len(t, got, 1)
	pt := got[0].(geo.Point)
	require.True(t, pt.P.AboutEq(vector.Vector{X: 0, Y: 1}))
}

func TestIntersectCircleLinearTwoPoints(t *testing.T) {
	c := geo.Circle{C: vector.Vector{X: 0, Y: 0}, R: 1}
	line := geo.Linear{O: vector.Vector{X: -2, Y: 0}, V: vector.PosX, L: math.Inf(-1)}
	got := geo.Intersect(c, line)
	require.Len(t, got, 2)
}

func TestIntersectCircleLinearMiss(t *testing.T) {
	c := geo.Circle{C: vector.Vector{X: 0, Y: 0}, R: 1}
	line := geo.Linear{O: vector.Vector{X: -2, Y: 5}, V: vector.PosX, L: math.Inf(-1)}
	require.Empty(t, geo.Intersect(c, line))
}

func TestIntersectCircleCircleTwoPoints(t *testing.T) {
	c0 := geo.Circle{C: vector.Vector{X: -1, Y: 0}, R: 2}
	c1 := geo.Circle{C: vector.Vector{X: 1, Y: 0}, R: 2}
	got := geo.Intersect(c0, c1)
	require.Len(t, got, 2)
	for _, g := range got {
		pt := g.(geo.Point)
		require.InDelta(t, 2.0, pt.P.Dist(c0.C), 1e-9)
		require.InDelta(t, 2.0, pt.P.Dist(c1.C), 1e-9)
	}
}

func TestIntersectCircleCircleSeparateEmpty(t *testing.T) {
	c0 := geo.Circle{C: vector.Vector{X: -10, Y: 0}, R: 1}
	c1 := geo.Circle{C: vector.Vector{X: 10, Y: 0}, R: 1}
	require.Empty(t, geo.Intersect(c0, c1))
}

func TestIntersectCircleCircleContainedEmpty(t *testing.T) {
	c0 := geo.Circle{C: vector.Vector{X: 0, Y: 0}, R: 1}
	c1 := geo.Circle{C: vector.Vector{X: 0, Y: 0}, R: 5}
	require.Empty(t, geo.Intersect(c0, c1))
}

func TestIntersectCircleCircleTangent(t *testing.T) {
	c0 := geo.Circle{C: vector.Vector{X: 0, Y: 0}, R: 1}
	c1 := geo.Circle{C: vector.Vector{X: 2, Y: 0}, R: 1}
	got := geo.Intersect(c0, c1)
	require.Len(t, got, 1)
	pt := got[0].(geo.Point)
	require.True(t, pt.P.AboutEq(vector.Vector{X: 1, Y: 0}))
}

func TestMeetCartesianProduct(t *testing.T) {
	a := []geo.Geo{
		geo.Circle{C: vector.Vector{X: 0, Y: 0}, R: 1},
	}
	b := []geo.Geo{
		geo.Linear{O: vector.Vector{X: -2, Y: 0}, V: vector.PosX, L: math.Inf(-1)},
	}
	got := geo.Meet(a, b)
	require.Len(t, got, 2)
}

func TestChooseStability(t *testing.T) {
	c := geo.Circle{C: vector.Vector{X: 3, Y: 4}, R: 2}
	require.Equal(t, geo.Choose(c), geo.Choose(c))
	require.True(t, geo.Choose(c).AboutEq(vector.Vector{X: 5, Y: 4}))

	require.Equal(t, vector.Zero, geo.Choose(geo.All{}))

	p := geo.Point{P: vector.Vector{X: 1, Y: 1}}
	require.Equal(t, p.P, geo.Choose(p))
}

func TestHalfFiltersPoints(t *testing.T) {
	h := geo.Half{O: vector.Zero, N: vector.PosY}
	inside := geo.Point{P: vector.Vector{X: 0, Y: 1}}
	outside := geo.Point{P: vector.Vector{X: 0, Y: -1}}
	require.Equal(t, []geo.Geo{inside}, geo.Intersect(h, inside))
	require.Empty(t, geo.Intersect(h, outside))
}

func TestDistToLinear(t *testing.T) {
	l := geo.Linear{O: vector.Zero, V: vector.PosX, L: 0}
	require.InDelta(t, 3.0, geo.Dist(vector.Vector{X: 2, Y: 3}, l), 1e-9)
}
