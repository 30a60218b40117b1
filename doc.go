// Package bitpart is the root of an exact range-search index for metric
// spaces.
//
// BitPart precomputes a set of "exclusion zones" — balls and separating
// hyperplane sheets anchored at a handful of reference points drawn from
// the dataset — and records, as one bit per zone per point, which points
// each zone is known to contain. A range query classifies zones against
// the query and threshold, combines their bit rows with AND/OR/NOT into a
// candidate set that contains every true answer (and possibly some false
// positives), and verifies every candidate with one exact distance computation. No true
// answer is ever pruned away; every returned point is confirmed.
//
// The public surface is organized as:
//
//	metric/    — the Metric[T] contract and the reference Euclidean metric
//	zone/      — ball and sheet exclusion zones and their membership tests
//	partition/ — reference-point selection and the bitset matrix build
//	query/     — the classify/combine/verify algorithm, shared by backends
//	index/     — Sequential, Parallel and Disk backends implementing Index[T]
//	builder/   — the functional-options entry point tying the above together
//
// A minimal program builds an index and runs one query:
//
//	b := builder.NewBuilder[[]float64](dataset, metric.Euclidean{})
//	idx := b.Build()
//	results := idx.RangeSearch(query, threshold)
package bitpart
