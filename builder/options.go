package builder

import (
	"math"

	"github.com/klauspost/cpuid/v2"

	"github.com/emeraldsearch/bitpart/partition"
)

//-----------------------------------------------------------------------------
// Defaults (single source of truth)
//-----------------------------------------------------------------------------

const (
	// DefaultBlockSize is the recommended column-block width for the
	// parallel and on-disk backends when the caller has no more specific
	// preference.
	DefaultBlockSize uint = 8192

	// SmallBlockSize is a SIMD-friendly alternative named directly by the
	// partitioning model's design notes — useful on narrower vector
	// units or when block-scan latency matters more than throughput.
	SmallBlockSize uint = 512
)

//-----------------------------------------------------------------------------
// Internal panic messages (no magic strings at call sites)
//-----------------------------------------------------------------------------

const (
	panicRefPointsInvalid    = "builder: ref_points must satisfy 0 < ref_points <= len(dataset)"
	panicMeanDistanceInvalid = "builder: WithMeanDistance: value must be finite"
	panicRadiusIncInvalid    = "builder: WithRadiusIncrement: value must be finite"
	panicBlockSizeInvalid    = "builder: block size must be > 0"
)

//-----------------------------------------------------------------------------
// Option type
//-----------------------------------------------------------------------------

// Option mutates the builder's internal configuration. Safe to apply in
// any order except where noted; later options override earlier ones for
// the same field.
type Option func(*options)

type options struct {
	meanDistance    float64
	radiusIncrement float64
	refPoints       int
	seed            *int64
	fourPoint       bool // deprecated no-op, kept for compatibility
}

// WithMeanDistance overrides μ, the center of the five-radius ball grid.
func WithMeanDistance(mu float64) Option {
	if math.IsNaN(mu) || math.IsInf(mu, 0) {
		panic(panicMeanDistanceInvalid)
	}
	return func(o *options) { o.meanDistance = mu }
}

// WithRadiusIncrement overrides Δ, the spacing of the five-radius ball
// grid.
func WithRadiusIncrement(delta float64) Option {
	if math.IsNaN(delta) || math.IsInf(delta, 0) {
		panic(panicRadiusIncInvalid)
	}
	return func(o *options) { o.radiusIncrement = delta }
}

// WithRefPoints overrides k, the reference-point count. Validated again at
// NewBuilder time against the dataset size, since the dataset isn't known
// to the option itself.
func WithRefPoints(k int) Option {
	return func(o *options) { o.refPoints = k }
}

// WithSeed switches reference-point selection from the default
// deterministic first-k to a seeded uniform sample of size k without
// replacement. Correctness is unaffected either way — only which zones
// exist, not whether pruning is sound, depends on this choice.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = &seed }
}

// WithFourPoint is a deprecated no-op retained only for API compatibility
// with a prior sheet-exclusion design. BitPart implements only the
// three-point (two-anchor, offset) sheet form; this option changes no
// behavior.
//
// Deprecated: has no effect.
func WithFourPoint() Option {
	return func(o *options) { o.fourPoint = true }
}

func defaultOptions() options {
	return options{
		meanDistance:    partition.DefaultMeanDistance,
		radiusIncrement: partition.DefaultRadiusIncrement,
		refPoints:       partition.DefaultRefPoints,
	}
}

// RecommendedBlockSize is an advisory helper: it returns SmallBlockSize on
// cores without wide SIMD lanes and DefaultBlockSize otherwise. The
// source's own "SIMD width" language is a hint, not a requirement — this
// helper exists so a caller who wants the hint doesn't have to query
// cpuid themselves, not because block size correctness depends on it.
func RecommendedBlockSize() uint {
	if cpuid.CPU.Supports(cpuid.AVX512F) || cpuid.CPU.Supports(cpuid.AVX2) {
		return DefaultBlockSize
	}

	return SmallBlockSize
}
