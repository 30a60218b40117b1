package query

import (
	"github.com/emeraldsearch/bitpart/metric"
	"github.com/emeraldsearch/bitpart/zone"
)

// Classification is the bucket a zone falls into for one (q, t) query.
type Classification uint8

const (
	// Unknown zones are ignored by Combine.
	Unknown Classification = iota
	// In zones must have a 1 bit for every true candidate.
	In
	// Out zones must have a 0 bit for every true candidate.
	Out
)

// Classify evaluates every zone's MustBeIn/MustBeOut predicates against
// (q, t) and returns the indices of the In and Out zones. Zones for which
// neither predicate holds are Unknown and are omitted from both slices.
func Classify[T any](m metric.Metric[T], zones []zone.Zone[T], q T, t float64) (in, out []int) {
	for _, z := range zones {
		switch ClassifyOne(m, z, q, t) {
		case In:
			in = append(in, z.Index)
		case Out:
			out = append(out, z.Index)
		}
	}

	return in, out
}

// ClassifyOne classifies a single zone against (q, t).
func ClassifyOne[T any](m metric.Metric[T], z zone.Zone[T], q T, t float64) Classification {
	if z.MustBeIn(m, q, t) {
		return In
	}
	if z.MustBeOut(m, q, t) {
		return Out
	}

	return Unknown
}
