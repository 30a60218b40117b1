package zone

import "github.com/emeraldsearch/bitpart/metric"

// Kind discriminates the two zone shapes BitPart supports.
type Kind uint8

const (
	// Ball is an exclusion zone centered at a single reference point.
	Ball Kind = iota
	// Sheet is an exclusion zone separating two reference points.
	Sheet
)

// Zone is a single exclusion zone: either a Ball(pivot, radius) or a
// Sheet(a, b, offset). Index is the zone's row position in the bitset
// matrix; it is assigned by package partition at build time and is not
// meaningful before that.
type Zone[T any] struct {
	Kind Kind

	// Ball fields. Pivot is the reference point; Radius is the ball's
	// radius. Unused when Kind == Sheet.
	Pivot  T
	Radius float64

	// Sheet fields. A and B are the two reference points; Offset shifts
	// the separating sheet. Unused when Kind == Ball.
	A, B   T
	Offset float64

	Index int
}

// NewBall builds a Ball(pivot, radius) exclusion zone.
func NewBall[T any](pivot T, radius float64) Zone[T] {
	return Zone[T]{Kind: Ball, Pivot: pivot, Radius: radius}
}

// NewSheet builds a Sheet(a, b, offset) exclusion zone.
func NewSheet[T any](a, b T, offset float64) Zone[T] {
	return Zone[T]{Kind: Sheet, A: a, B: b, Offset: offset}
}

// IsIn reports whether x lies inside the zone.
//
// Ball:  d(pivot, x) < radius
// Sheet: d(a, x) - d(b, x) - offset < 0
func (z Zone[T]) IsIn(m metric.Metric[T], x T) bool {
	switch z.Kind {
	case Ball:
		return m.Distance(z.Pivot, x) < z.Radius
	case Sheet:
		return m.Distance(z.A, x)-m.Distance(z.B, x)-z.Offset < 0
	default:
		return false
	}
}

// MustBeIn reports whether every point within distance t of q is
// guaranteed to lie inside the zone — a conservative test derived from the
// triangle inequality. If true, the zone's bit must be 1 for any candidate
// answer to q at threshold t.
//
// Ball:  d(pivot, q) < radius - t
// Sheet: d(a, q) - d(b, q) - offset < -2t
func (z Zone[T]) MustBeIn(m metric.Metric[T], q T, t float64) bool {
	switch z.Kind {
	case Ball:
		return m.Distance(z.Pivot, q) < z.Radius-t
	case Sheet:
		return m.Distance(z.A, q)-m.Distance(z.B, q)-z.Offset < -2*t
	default:
		return false
	}
}

// MustBeOut reports whether every point within distance t of q is
// guaranteed to lie outside the zone. If true, the zone's bit must be 0
// for any candidate answer to q at threshold t.
//
// Ball:  d(pivot, q) >= radius + t
// Sheet: d(a, q) - d(b, q) - offset >= 2t
func (z Zone[T]) MustBeOut(m metric.Metric[T], q T, t float64) bool {
	switch z.Kind {
	case Ball:
		return m.Distance(z.Pivot, q) >= z.Radius+t
	case Sheet:
		return m.Distance(z.A, q)-m.Distance(z.B, q)-z.Offset >= 2*t
	default:
		return false
	}
}
