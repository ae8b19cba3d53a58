package analysis

import (
	"math"

	"github.com/planforge/floorplan/pkg/geom"
)

// lengthDeviationThreshold triggers a suggestion when a declared length is
// more than 50% off the mean; lengthHighThreshold escalates the severity.
const (
	lengthDeviationThreshold = 0.5
	lengthHighThreshold      = 1.0
	angleHighThreshold       = 10.0
)

// SuggestCorrections turns classifier findings into an ordered list of
// severity-tagged suggestions: one angle_correction per irregular angle,
// then one length_inconsistency per segment whose declared length deviates
// more than 50% from the mean. The current rules never emit low severity.
func SuggestCorrections(segs []geom.Segment) []Suggestion {
	var suggestions []Suggestion

	for _, item := range IrregularAngles(segs, DefaultExpectedAngles, DefaultAngleTolerance) {
		severity := SeverityHigh
		if math.Abs(item.Angle-item.ClosestExpected) < angleHighThreshold {
			severity = SeverityMedium
		}
		suggestions = append(suggestions, Suggestion{
			Type:           SuggestionAngle,
			LineIndex:      item.Index,
			CurrentAngle:   fptr(round2(item.Angle)),
			SuggestedAngle: fptr(item.ClosestExpected),
			Severity:       severity,
		})
	}

	if len(segs) == 0 {
		return suggestions
	}

	mean := 0.0
	for _, s := range segs {
		mean += s.Length
	}
	mean /= float64(len(segs))

	for i, s := range segs {
		deviation := 0.0
		if mean > 0 {
			deviation = math.Abs(s.Length-mean) / mean
		}
		if deviation <= lengthDeviationThreshold {
			continue
		}
		severity := SeverityMedium
		if deviation > lengthHighThreshold {
			severity = SeverityHigh
		}
		suggestions = append(suggestions, Suggestion{
			Type:          SuggestionLength,
			LineIndex:     i,
			CurrentLength: fptr(round2(s.Length)),
			AverageLength: fptr(round2(mean)),
			Severity:      severity,
		})
	}

	return suggestions
}

func fptr(v float64) *float64 {
	return &v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
