// Package query implements the range-search algorithm shared by every
// BitPart backend: classify each zone against (q, t), combine the
// classified rows into a candidate bitset, then verify every candidate
// with an exact distance computation.
//
// The classify and combine steps are pure bit algebra over whatever rows
// a backend hands them; they don't know whether those rows live in a Go
// slice, a column-blocked in-memory matrix, or a memory-mapped file. This
// mirrors how a block-pipelined bit-index (e.g. an Ethereum log bloom
// matcher) separates "which rows does this query need" from "how are
// those rows fetched" — BitPart has no incremental delivery requirement,
// so the split here is a plain synchronous pull instead of a channel
// pipeline.
package query
