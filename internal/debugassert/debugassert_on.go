//go:build bitpart_debug

package debugassert

import (
	"fmt"
	"math"

	"github.com/emeraldsearch/bitpart/metric"
)

type checkedMetric[T any] struct {
	inner metric.Metric[T]
}

func (c checkedMetric[T]) Distance(a, b T) float64 {
	d := c.inner.Distance(a, b)
	if math.IsNaN(d) || d < 0 {
		panic(fmt.Sprintf("bitpart: metric contract violated: Distance returned %v", d))
	}
	return d
}

// WrapMetric returns a Metric that panics if the wrapped Distance ever
// returns NaN or a negative value. Built only with -tags bitpart_debug.
func WrapMetric[T any](m metric.Metric[T]) metric.Metric[T] {
	return checkedMetric[T]{inner: m}
}
