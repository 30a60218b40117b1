package index

import "github.com/bits-and-blooms/bitset"

// sliceRow copies the [start, start+length) window of src into a new,
// independently-owned BitSet positioned at 0. Only called for the small
// subset of rows Classify actually marks In/Out, so the O(length) copy
// cost is paid per classified zone per block, not per zone.
func sliceRow(src *bitset.BitSet, start, length uint) *bitset.BitSet {
	out := bitset.New(length)
	for i, ok := src.NextSet(start); ok && i < start+length; i, ok = src.NextSet(i + 1) {
		out.Set(i - start)
	}

	return out
}

// blockRowSource adapts a full-length row slice plus a Block window into a
// query.RowSource, used by the parallel backend to scan one block at a
// time without materializing a full block-sliced matrix. The on-disk
// backend uses diskRowSource instead.
type blockRowSource struct {
	rows  []*bitset.BitSet
	block Block
}

func (b blockRowSource) Row(z int) *bitset.BitSet {
	return sliceRow(b.rows[z], b.block.Start, b.block.Length)
}

func (b blockRowSource) N() uint { return b.block.Length }

// fullRowSource adapts a full-length row slice directly into a
// query.RowSource, used by the sequential backend (a single implicit
// block spanning the whole dataset).
type fullRowSource struct {
	rows []*bitset.BitSet
	n    uint
}

func (f fullRowSource) Row(z int) *bitset.BitSet { return f.rows[z] }
func (f fullRowSource) N() uint                  { return f.n }
