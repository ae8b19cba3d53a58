package validation

import (
	"fmt"
	"math"

	"github.com/planforge/floorplan/pkg/plan"
)

// declaredLengthSlack is how far a declared length may drift from the
// pixel geometry (relative) before a warning is raised. Hand-drawn plans
// routinely disagree a little; large gaps usually mean a typo.
const declaredLengthSlack = 0.25

// ValidateSchema performs structural validation on a parsed plan before
// any geometric computation.
func ValidateSchema(p *plan.Plan) *Report {
	r := NewReport()

	validateScale(p, r)
	validateLines(p, r)
	validateZoneDefs(p, r)

	return r
}

func validateScale(p *plan.Plan, r *Report) {
	if p.Scale <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("scale %.2f must be a positive number of pixels per meter", p.Scale),
			PlanPath:    "scale",
			ActualValue: p.Scale,
			Expected:    "> 0",
		})
	}
}

func validateLines(p *plan.Plan, r *Report) {
	if len(p.Lines) == 0 {
		r.AddWarning(Result{
			Level:    LevelSchema,
			Message:  "plan has no lines; all measurements will be zero",
			PlanPath: "lines",
		})
		return
	}

	for i, line := range p.Lines {
		if line.Length < 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("lines[%d]: declared length must not be negative", i),
				PlanPath:    fmt.Sprintf("lines[%d].length", i),
				ActualValue: line.Length,
				Expected:    ">= 0",
			})
			continue
		}

		if p.Scale <= 0 || line.Length == 0 {
			continue
		}
		pixelMeters := line.PixelLength() / p.Scale
		if pixelMeters == 0 {
			continue
		}
		drift := math.Abs(line.Length-pixelMeters) / pixelMeters
		if drift > declaredLengthSlack {
			r.AddWarning(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("lines[%d]: declared length %.2fm differs from drawn geometry (%.2fm)", i, line.Length, pixelMeters),
				PlanPath:    fmt.Sprintf("lines[%d].length", i),
				ActualValue: line.Length,
				Expected:    fmt.Sprintf("within %.0f%% of %.2f", declaredLengthSlack*100, pixelMeters),
				Suggestions: []string{"Check the measurement or redraw the wall to match"},
			})
		}
	}
}

func validateZoneDefs(p *plan.Plan, r *Report) {
	for i, z := range p.Zones {
		if len(z.LineIndices) < 3 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("zones[%d] (%s): a zone needs at least 3 member lines", i, z.Name),
				PlanPath:    fmt.Sprintf("zones[%d].line_indices", i),
				ActualValue: len(z.LineIndices),
				Expected:    ">= 3",
			})
		}
		for _, li := range z.LineIndices {
			if li < 0 || li >= len(p.Lines) {
				r.AddWarning(Result{
					Level:       LevelSchema,
					Message:     fmt.Sprintf("zones[%d] (%s): line index %d is outside the plan and will be skipped", i, z.Name, li),
					PlanPath:    fmt.Sprintf("zones[%d].line_indices", i),
					ActualValue: li,
					Expected:    fmt.Sprintf("0-%d", len(p.Lines)-1),
				})
			}
		}
	}
}
