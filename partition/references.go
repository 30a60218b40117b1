package partition

import "math/rand"

// SelectReferences returns the indices of the k reference points chosen
// from a dataset of size n.
//
// With seed == nil, selection is the deterministic first-k: refs :=
// D[0:k]. This is the reference implementation's original behavior and
// remains the default — callers who never configure a seed see identical
// zone layouts across runs and across BitPart versions.
//
// With a non-nil seed, k distinct indices are sampled uniformly without
// replacement via a seeded PRNG. Either choice is correctness-preserving:
// reference-point selection only affects which exclusion zones exist, and
// every zone's must_be_in/must_be_out predicates remain sound regardless
// of which points anchor them.
func SelectReferences(n, k int, seed *int64) []int {
	if seed == nil {
		refs := make([]int, k)
		for i := range refs {
			refs[i] = i
		}
		return refs
	}

	rng := rand.New(rand.NewSource(*seed))
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}
	rng.Shuffle(n, func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	refs := make([]int, k)
	copy(refs, pool[:k])

	return refs
}
