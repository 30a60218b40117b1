// Package builder accumulates a dataset, a metric and partitioning
// parameters, then materializes one of BitPart's three backends.
//
// Builder follows the functional-options idiom: WithMeanDistance and
// WithRadiusIncrement validate eagerly and panic on non-finite values, and
// NewBuilder applies the options over the documented defaults, then panics
// if ref_points is 0 or greater than the dataset size (a programmer error,
// not a recoverable one). The dataset and metric are immutable once
// captured; every terminal operation (Build, BuildParallel, BuildOnDisk)
// may be called any number of times and each produces an independent
// index sharing no mutable state with the others.
package builder
