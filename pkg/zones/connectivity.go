package zones

import (
	"sort"

	"github.com/planforge/floorplan/pkg/geom"
)

// DefaultConnectTolerance is the pixel-space distance within which two
// segment endpoints count as connected.
const DefaultConnectTolerance = 10.0

// ConnectedLines returns the indices of every segment transitively
// reachable from seed through shared or near-coincident endpoints, the
// seed included. Two segments connect when any endpoint of one lies within
// tol of any endpoint of the other (four pairwise checks). Frontier search
// visits each reachable segment exactly once; indices come back sorted for
// deterministic downstream use. An out-of-range seed returns nil.
//
// Pairwise scanning per frontier pop is O(n²) overall, acceptable for the
// small segment counts of a drawn plan.
func ConnectedLines(segs []geom.Segment, seed int, tol float64) []int {
	if seed < 0 || seed >= len(segs) {
		return nil
	}

	connected := map[int]bool{seed: true}
	frontier := []int{seed}

	for len(frontier) > 0 {
		cur := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		for i, s := range segs {
			if connected[i] {
				continue
			}
			if segmentsTouch(segs[cur], s, tol) {
				connected[i] = true
				frontier = append(frontier, i)
			}
		}
	}

	indices := make([]int, 0, len(connected))
	for i := range connected {
		indices = append(indices, i)
	}
	sort.Ints(indices)
	return indices
}

func segmentsTouch(a, b geom.Segment, tol float64) bool {
	return a.Start.Near(b.Start, tol) ||
		a.Start.Near(b.End, tol) ||
		a.End.Near(b.Start, tol) ||
		a.End.Near(b.End, tol)
}
