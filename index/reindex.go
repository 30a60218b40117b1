package index

import "github.com/emeraldsearch/bitpart/zone"

// reindex reassigns each zone's Index to its position in zones, so that
// query.Classify's returned indices remain valid row positions into rows
// after culling has removed earlier entries.
func reindex[T any](zones []zone.Zone[T]) []zone.Zone[T] {
	for i := range zones {
		zones[i].Index = i
	}

	return zones
}
