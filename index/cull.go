package index

import (
	"log/slog"

	"github.com/bits-and-blooms/bitset"

	"github.com/emeraldsearch/bitpart/zone"
)

// CullByPopcount drops every zone z whose row is too unselective: if
// ones(M[z])/N > tau or zeros(M[z])/N > tau, the zone rarely discriminates
// between candidates and is removed. Culling never drops a constraint
// that would wrongly exclude a true answer — fewer zones just means fewer
// constraints — so soundness is preserved by construction.
//
// Only Parallel exposes culling, matching the external interface: it
// requires exclusive access to the index and is incompatible with
// concurrent queries against the same value.
func (p *Parallel[T]) CullByPopcount(tau float64) {
	slog.Debug("index: cull_by_popcount start", "tau", tau, "zones", len(p.zones))

	n := float64(len(p.dataset))
	if n == 0 {
		slog.Debug("index: cull_by_popcount done", "zones", len(p.zones))
		return
	}

	keepZones := make([]zone.Zone[T], 0, len(p.zones))
	keepRows := make([]*bitset.BitSet, 0, len(p.rows))
	for i, row := range p.rows {
		ones := float64(row.Count())
		zeros := n - ones
		if ones/n > tau || zeros/n > tau {
			continue // too unselective, drop
		}
		keepZones = append(keepZones, p.zones[i])
		keepRows = append(keepRows, row)
	}

	p.zones = reindex(keepZones)
	p.rows = keepRows

	slog.Debug("index: cull_by_popcount done", "zones", len(p.zones))
}

// CullBySimilarity drops z2 from every unordered pair (z1 < z2) whose rows
// agree on more than tau of their bits: 1 - hamming(M[z1] xor M[z2])/N >
// tau. Comparison uses the *current* row set, so CullByPopcount and
// CullBySimilarity are not commutative — the caller's ordering choice is
// part of the index's identity, not an implementation detail.
func (p *Parallel[T]) CullBySimilarity(tau float64) {
	slog.Debug("index: cull_by_similarity start", "tau", tau, "zones", len(p.zones))

	n := float64(len(p.dataset))
	if n == 0 {
		slog.Debug("index: cull_by_similarity done", "zones", len(p.zones))
		return
	}

	dropped := make([]bool, len(p.rows))
	for z1 := 0; z1 < len(p.rows); z1++ {
		if dropped[z1] {
			continue
		}
		for z2 := z1 + 1; z2 < len(p.rows); z2++ {
			if dropped[z2] {
				continue
			}
			xor := p.rows[z1].Clone()
			xor.InPlaceSymmetricDifference(p.rows[z2])
			agreement := 1 - float64(xor.Count())/n
			if agreement > tau {
				dropped[z2] = true
			}
		}
	}

	keepZones := make([]zone.Zone[T], 0, len(p.zones))
	keepRows := make([]*bitset.BitSet, 0, len(p.rows))
	for i, drop := range dropped {
		if drop {
			continue
		}
		keepZones = append(keepZones, p.zones[i])
		keepRows = append(keepRows, p.rows[i])
	}

	p.zones = reindex(keepZones)
	p.rows = keepRows

	slog.Debug("index: cull_by_similarity done", "zones", len(p.zones))
}
