// Package debugassert provides a build-tag-gated check on the metric
// contract: Distance must never return NaN or a negative value. The check
// is compiled in only with -tags bitpart_debug; default builds get a plain
// passthrough with no runtime cost.
package debugassert
