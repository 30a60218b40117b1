// Package zone implements the exclusion-zone predicates BitPart's
// partitioning model is built from: balls centered on a reference point
// and sheets separating two reference points.
//
// Zones are represented as a flat tagged union rather than an interface
// per variant. is_in is evaluated Z·N times during a build (once per zone,
// per dataset point); keeping Zone a plain struct in a contiguous slice
// avoids an interface dispatch and a heap allocation on every one of those
// calls. must_be_in and must_be_out are conservative: derived from the
// triangle inequality applied to the zone's own geometry, they may both
// return false (the zone is inconclusive for a query), but whenever either
// returns true the classification is exact.
package zone
