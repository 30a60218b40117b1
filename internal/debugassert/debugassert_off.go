//go:build !bitpart_debug

package debugassert

import "github.com/emeraldsearch/bitpart/metric"

// WrapMetric is a no-op passthrough in default builds. See
// debugassert_on.go for the checked variant built with -tags bitpart_debug.
func WrapMetric[T any](m metric.Metric[T]) metric.Metric[T] {
	return m
}
