// Package constraint implements the capability set every geometric
// relationship between named points exposes: which points it references,
// which of those points it can currently pin given a "known" predicate,
// and — once a target is chosen — the geometric loci it contributes for
// that target.
//
// Concrete variants (Distance, Angle, Collinear, Parallel, Perpendicular,
// Chirality) are one file each. PointID is a dense non-negative index;
// before the ordering pass runs it is an insertion-order identifier,
// after it is a solve-position index — the type itself does not encode
// which regime is in effect.
package constraint
