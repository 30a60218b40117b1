package index

import "github.com/emeraldsearch/bitpart/query"

// Index is the capability shared by every backend.
type Index[T any] interface {
	// RangeSearch returns every indexed point within distance t of q, as
	// an unordered set of (point, distance) pairs.
	RangeSearch(q T, t float64) []query.Result[T]
	// Len is the number of indexed points.
	Len() int
	// IsEmpty reports whether Len() == 0.
	IsEmpty() bool
	// Zones is the number of exclusion zones currently in the index
	// (reduced by culling, where supported).
	Zones() int
}
