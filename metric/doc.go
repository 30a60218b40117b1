// Package metric defines the distance contract BitPart indexes against.
//
// A metric space is a pair (T, d) where d satisfies identity, positivity,
// symmetry and the triangle inequality. BitPart never inspects T directly;
// every partitioning and query operation reaches the dataset only through
// a Metric[T] value supplied at build time.
//
// Implementations must uphold the metric axioms themselves — a distance
// function that violates them silently produces incorrect pruning, since
// the must-be-in / must-be-out predicates in package zone are derived from
// the triangle inequality and assume it holds.
package metric
