// Package order computes a solve order for a figure.Figure: a renumbering
// of its points into a sequence where every point is "discretized" by the
// constraints referencing it and points earlier in the sequence, following
// a breadth-first expansion seeded from root/orbiter pairs.
package order
