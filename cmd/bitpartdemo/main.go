// Command bitpartdemo builds a small BitPart index over a handful of 2-D
// points and runs a single range query against it, printing every point
// found within the threshold.
//
// Scenario:
//
//	Five points: a unit square plus one outlier at (5,5). Querying around
//	the origin with a threshold of 1.5 should return every square corner
//	but not the outlier.
//
//	    (0,1)---(1,1)
//	      |       |         (5,5)
//	    (0,0)---(1,0)
//
// Usage:
//
//	bitpartdemo -qx 0 -qy 0 -t 1.5
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/emeraldsearch/bitpart/builder"
	"github.com/emeraldsearch/bitpart/metric"
)

func main() {
	qx := flag.Float64("qx", 0, "query point x coordinate")
	qy := flag.Float64("qy", 0, "query point y coordinate")
	t := flag.Float64("t", 1.5, "range threshold")
	refPoints := flag.Int("ref-points", 2, "number of reference points (k)")
	flag.Parse()

	dataset := [][]float64{
		{0, 0},
		{1, 0},
		{0, 1},
		{1, 1},
		{5, 5},
	}

	b := builder.NewBuilder[[]float64](dataset, metric.Euclidean{},
		builder.WithRefPoints(*refPoints),
	)
	idx := b.Build()

	q := []float64{*qx, *qy}
	results := idx.RangeSearch(q, *t)
	if len(results) == 0 {
		log.Printf("no points within %.3g of (%.3g, %.3g)", *t, *qx, *qy)
		return
	}

	fmt.Printf("points within %.3g of (%.3g, %.3g):\n", *t, *qx, *qy)
	for _, r := range results {
		fmt.Printf("  (%.3g, %.3g) distance=%.6g\n", r.Point[0], r.Point[1], r.Distance)
	}
}
