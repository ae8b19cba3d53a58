package analysis

import (
	"math"

	"github.com/planforge/floorplan/pkg/geom"
)

const (
	lengthWeight = 0.6
	angleWeight  = 0.4

	// angleNorm floors the angle component at 0 when the mean squared
	// deviation from 90 degrees reaches a full 90 degrees (90² = 8100).
	angleNorm = 8100.0
)

// Regularity scores how regular the drawn shape is, in [0, 1] with 1 most
// regular. It blends two components: length uniformity (1 minus the
// coefficient of variation of declared lengths, clamped) and angle
// proximity to 90 degrees (1 minus the normalized mean squared deviation).
// Fewer than 3 segments scores 0. The weights and normalization constant
// are fixed output-compatibility parameters.
func Regularity(segs []geom.Segment) float64 {
	if len(segs) < 3 {
		return 0
	}
	n := float64(len(segs))

	mean := 0.0
	for _, s := range segs {
		mean += s.Length
	}
	mean /= n

	variance := 0.0
	for _, s := range segs {
		d := s.Length - mean
		variance += d * d
	}
	variance /= n
	stdDev := math.Sqrt(variance)

	lengthRegularity := 0.0
	if mean > 0 {
		lengthRegularity = 1 - math.Min(stdDev/mean, 1)
	}

	angleVariance := 0.0
	for _, s := range segs {
		d := s.NormalizedAngle() - 90
		angleVariance += d * d
	}
	angleVariance /= n
	angleRegularity := 1 - math.Min(angleVariance/angleNorm, 1)

	return lengthWeight*lengthRegularity + angleWeight*angleRegularity
}
