package validation

import (
	"fmt"

	"github.com/planforge/floorplan/pkg/analysis"
	"github.com/planforge/floorplan/pkg/geom"
)

// ValidateGeometry runs the geometric analysis and folds its findings
// into a validation report. Nothing here is an error: a crooked or open
// plan is still a usable plan, the findings only guide cleanup.
func ValidateGeometry(lines []geom.Segment, scale float64) *Report {
	r := NewReport()
	if len(lines) < 3 {
		r.AddInfo(Result{
			Level:    LevelGeometry,
			Message:  fmt.Sprintf("only %d lines drawn; geometric checks need at least 3", len(lines)),
			PlanPath: "lines",
		})
		return r
	}

	report := analysis.Analyze(lines, scale)

	if !report.Measurements.IsClosed {
		r.AddWarning(Result{
			Level:       LevelGeometry,
			Message:     "outline does not close; the total area cannot be trusted",
			PlanPath:    "lines",
			Suggestions: []string{"Snap the last wall back to the starting corner"},
		})
	}

	for _, s := range report.Issues.Suggestions {
		res := Result{
			Level:    LevelGeometry,
			PlanPath: fmt.Sprintf("lines[%d]", s.LineIndex),
		}
		switch s.Type {
		case analysis.SuggestionAngle:
			res.Message = fmt.Sprintf("lines[%d]: angle %.2f° is irregular", s.LineIndex, *s.CurrentAngle)
			res.ActualValue = *s.CurrentAngle
			res.Expected = fmt.Sprintf("%.0f°", *s.SuggestedAngle)
		case analysis.SuggestionLength:
			res.Message = fmt.Sprintf("lines[%d]: length %.2fm is far from the plan average %.2fm", s.LineIndex, *s.CurrentLength, *s.AverageLength)
			res.ActualValue = *s.CurrentLength
			res.Expected = fmt.Sprintf("near %.2f", *s.AverageLength)
		}
		r.AddWarning(res)
	}

	r.AddInfo(Result{
		Level:       LevelGeometry,
		Message:     fmt.Sprintf("regularity index %.2f", report.Measurements.RegularityIndex),
		PlanPath:    "lines",
		ActualValue: report.Measurements.RegularityIndex,
	})

	return r
}
