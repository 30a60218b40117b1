package partition

//-----------------------------------------------------------------------------
// Default parameters (single source of truth)
//-----------------------------------------------------------------------------

const (
	// DefaultMeanDistance (μ) centers the five-radius ball grid. Its
	// provenance is undocumented in the reference implementation this
	// design is drawn from; it affects performance, not correctness.
	DefaultMeanDistance = 1.81

	// DefaultRadiusIncrement (Δ) spaces the five-radius ball grid.
	DefaultRadiusIncrement = 0.3

	// DefaultRefPoints (k) is the default reference-point count.
	DefaultRefPoints = 40
)

// radiusOffsets are the five multiples of Δ added to μ for each reference
// point's ball grid: μ-2Δ, μ-Δ, μ, μ+Δ, μ+2Δ.
var radiusOffsets = [5]int{-2, -1, 0, 1, 2}

// ZoneCount returns Z = 5k + k(k-1)/2, the total number of zones emitted
// for k reference points.
func ZoneCount(k int) int {
	return 5*k + k*(k-1)/2
}
