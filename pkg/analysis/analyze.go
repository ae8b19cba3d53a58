package analysis

import "github.com/planforge/floorplan/pkg/geom"

// Analyze runs the full geometric analysis over a plan's segments and
// produces the aggregate report. Segments arrive in pixel space with the
// plan's scale (pixels per meter); area and closure are computed in metric
// space, while angle classification, regularity and suggestions operate on
// the raw drawing. The function is pure: it never mutates its input.
func Analyze(segs []geom.Segment, scale float64) Report {
	metric := geom.ToMeters(segs, scale)

	parallel := ParallelPairs(segs, DefaultAngleTolerance)
	perpendicular := PerpendicularPairs(segs, DefaultAngleTolerance)
	irregular := IrregularAngles(segs, DefaultExpectedAngles, DefaultAngleTolerance)
	suggestions := SuggestCorrections(segs)

	return Report{
		Measurements: Measurements{
			AreaM2:          round2(geom.Area(metric)),
			PerimeterM:      round2(geom.Perimeter(segs)),
			NumLines:        len(segs),
			IsClosed:        geom.Closed(metric, geom.DefaultClosureTolerance),
			RegularityIndex: round2(Regularity(segs)),
		},
		Geometry: Geometry{
			ParallelPairs:        len(parallel),
			PerpendicularPairs:   len(perpendicular),
			IrregularAnglesCount: len(irregular),
			IrregularAngles:      irregular,
		},
		Issues: Issues{
			Suggestions:    suggestions,
			HasIssues:      len(suggestions) > 0,
			SeverityCounts: countSeverities(suggestions),
		},
	}
}

func countSeverities(suggestions []Suggestion) SeverityCounts {
	var counts SeverityCounts
	for _, s := range suggestions {
		switch s.Severity {
		case SeverityMedium:
			counts.Medium++
		case SeverityHigh:
			counts.High++
		default:
			counts.Low++
		}
	}
	return counts
}
