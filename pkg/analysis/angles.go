package analysis

import (
	"math"

	"github.com/planforge/floorplan/pkg/geom"
)

// DefaultAngleTolerance is the tolerance in degrees for parallel,
// perpendicular and expected-angle classification.
const DefaultAngleTolerance = 5.0

// DefaultExpectedAngles are the angles a tidy floor plan is drawn at.
var DefaultExpectedAngles = []float64{0, 45, 90, 135, 180}

// ParallelPairs returns all index pairs (i, j), i < j, whose normalized
// angles differ by at most tol. A difference near 180 also counts: the
// segments point in opposite directions but are geometrically parallel.
// Pairwise O(n²), fine for the tens of segments a floor plan has.
func ParallelPairs(segs []geom.Segment, tol float64) [][2]int {
	var pairs [][2]int
	for i := 0; i < len(segs); i++ {
		for j := i + 1; j < len(segs); j++ {
			diff := math.Abs(segs[i].NormalizedAngle() - segs[j].NormalizedAngle())
			if diff <= tol || diff >= 180-tol {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}
	return pairs
}

// PerpendicularPairs returns all index pairs (i, j), i < j, whose angle
// difference reduced modulo 180 is within tol of 90.
func PerpendicularPairs(segs []geom.Segment, tol float64) [][2]int {
	var pairs [][2]int
	for i := 0; i < len(segs); i++ {
		for j := i + 1; j < len(segs); j++ {
			diff := math.Mod(math.Abs(segs[i].Angle()-segs[j].Angle()), 180)
			if math.Abs(diff-90) <= tol {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}
	return pairs
}

// IrregularAngles returns every segment whose normalized angle is not
// within tol of any expected angle, checking each expected value and its
// +180 alias. The closest expected angle is reported for correction; ties
// resolve to the first minimal entry in iteration order.
func IrregularAngles(segs []geom.Segment, expected []float64, tol float64) []IrregularAngle {
	var irregular []IrregularAngle
	for i, s := range segs {
		angle := s.NormalizedAngle()

		regular := false
		for _, exp := range expected {
			if math.Abs(angle-exp) <= tol || math.Abs(angle-(exp+180)) <= tol {
				regular = true
				break
			}
		}
		if regular {
			continue
		}

		closest := expected[0]
		best := math.Abs(angle - expected[0])
		for _, exp := range expected[1:] {
			if d := math.Abs(angle - exp); d < best {
				best = d
				closest = exp
			}
		}
		irregular = append(irregular, IrregularAngle{
			Index:           i,
			Angle:           angle,
			ClosestExpected: closest,
		})
	}
	return irregular
}
