package query

import "github.com/bits-and-blooms/bitset"

// RowSource hands back a zone's bit column on demand. Backends implement
// this over whatever storage they use; Combine never looks past the
// interface.
type RowSource interface {
	// Row returns zone index z's bit column. The returned BitSet must not
	// be mutated by the caller.
	Row(z int) *bitset.BitSet
	// N is the number of dataset positions (the row length).
	N() uint
}

// Combine folds the In and Out zone rows into a single candidate bitset:
// candidates := AND(rows[In]) AND NOT(OR(rows[Out])).
//
// An empty In set degenerates to an all-ones AND identity; an empty Out
// set degenerates to an all-zeros OR identity — together, In == Out == ∅
// yields all-ones, the documented linear-verification fast path.
func Combine(rs RowSource, in, out []int) *bitset.BitSet {
	n := rs.N()

	var a *bitset.BitSet
	if len(in) == 0 {
		a = bitset.New(n).Complement()
	} else {
		a = rs.Row(in[0]).Clone()
		for _, z := range in[1:] {
			a.InPlaceIntersection(rs.Row(z))
		}
	}

	if len(out) == 0 {
		return a
	}

	o := rs.Row(out[0]).Clone()
	for _, z := range out[1:] {
		o.InPlaceUnion(rs.Row(z))
	}
	a.InPlaceIntersection(o.Complement())

	return a
}
