// Package partition builds the exclusion-zone list and the bitset matrix
// it induces over a dataset.
//
// Given a dataset D and a metric, partition.Build selects k reference
// points, emits 5k ball zones (five radii per reference point) and
// k(k-1)/2 sheet zones (one per unordered pair of reference points), and
// computes each zone's column of N bits — one bit per dataset position,
// set iff that zone's IsIn predicate holds for that point. The result is
// deterministic from its inputs: the same dataset, metric and parameters
// always produce the same zone list and the same bits.
package partition
