// Package index implements BitPart's three execution backends —
// Sequential, Parallel and Disk — and the culling operations that prune
// low-value zones from a built index.
//
// All three backends share the same partitioning model (package
// partition) and the same query algorithm (package query); they differ
// only in how the zone bitset matrix is stored and scanned:
//
//	Sequential — one contiguous in-memory bitset per zone, single thread.
//	Parallel   — the same rows, queried and built over a bounded worker
//	             pool, with dataset columns sliced into blocks for scan
//	             parallelism.
//	Disk       — the same schema as Parallel, but each zone row is a
//	             memory-mapped file instead of a Go-heap bitset.
//
// An index is immutable after construction except for culling, which
// requires exclusive access and is only exposed on Parallel.
package index
