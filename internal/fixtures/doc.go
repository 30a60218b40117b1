// Package fixtures builds small, reproducible datasets for BitPart's own
// tests: the seed scenarios' 2-D point sets and a generic uniform-random
// N-dimensional generator standing in for the large "nasa"/"colors" style
// property-test fixtures spec.md names (those exact corpora are external
// resources outside this repo; the generator exists so the same soundness
// and completeness properties can be exercised at a size a test suite can
// actually carry).
package fixtures
