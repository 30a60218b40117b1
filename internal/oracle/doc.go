// Package oracle is a brute-force range-search reference implementation
// used only by tests. It exists so the bitset-pruned backends (Sequential,
// Parallel, Disk) have an independent ground truth to check soundness and
// completeness against, mirroring the "nearest-neighbor oracle" collaborator
// spec.md's own data model section names.
package oracle
