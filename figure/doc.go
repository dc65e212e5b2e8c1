// Package figure owns the mutable state of a geometric figure under
// construction: the bijection between point names and PointIDs, the table
// of constraints, and the reverse index from a point to the constraints
// that reference it. A figure is built and then ordered/solved by a single
// caller, so there is no lock to carry.
package figure
