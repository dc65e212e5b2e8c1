// Package geo implements the geometric locus type (Geo) GCAD's constraints
// lower into, and the operations the solver composes them with: Intersect,
// Meet, Dist, and Choose.
//
// A Geo is a zero- or one-dimensional subset of the plane — a Point, a
// Linear (ray/line/segment), a Circle — or one of two special cases: Half
// (a closed half-plane, produced only by chirality constraints) and All
// (the entire plane, the identity element for Meet). Geo values are
// immutable; every operation returns new values built from existing
// positions.
package geo
