package validation

import (
	"strings"
	"testing"

	"github.com/planforge/floorplan/pkg/geom"
	"github.com/planforge/floorplan/pkg/plan"
)

func validPlan() *plan.Plan {
	return &plan.Plan{
		Name:  "demo",
		Scale: 50,
		Lines: []geom.Segment{
			geom.Seg(geom.Pt(50, 50), geom.Pt(550, 50), 10),
			geom.Seg(geom.Pt(550, 50), geom.Pt(550, 450), 8),
			geom.Seg(geom.Pt(550, 450), geom.Pt(50, 450), 10),
			geom.Seg(geom.Pt(50, 450), geom.Pt(50, 50), 8),
		},
		Zones: []plan.ZoneDef{
			{Name: "Living room", Type: "living_room", LineIndices: []int{0, 1, 2, 3}},
		},
	}
}

func TestValidateSchemaCleanPlan(t *testing.T) {
	r := ValidateSchema(validPlan())
	if !r.Valid {
		t.Fatalf("expected valid plan, got %+v", r.Errors)
	}
	if len(r.Warnings) != 0 {
		t.Errorf("expected no warnings, got %+v", r.Warnings)
	}
}

func TestValidateSchemaBadScale(t *testing.T) {
	p := validPlan()
	p.Scale = 0
	r := ValidateSchema(p)
	if r.Valid {
		t.Fatal("expected invalid report for zero scale")
	}
	if r.Errors[0].PlanPath != "scale" {
		t.Errorf("expected scale error, got %+v", r.Errors[0])
	}
}

func TestValidateSchemaNegativeLength(t *testing.T) {
	p := validPlan()
	p.Lines[2].Length = -1
	r := ValidateSchema(p)
	if r.Valid {
		t.Fatal("expected invalid report for negative length")
	}
	if !strings.Contains(r.Errors[0].Message, "lines[2]") {
		t.Errorf("expected error to name lines[2], got %q", r.Errors[0].Message)
	}
}

func TestValidateSchemaLengthDrift(t *testing.T) {
	p := validPlan()
	// Drawn as 10m but declared 20m: well past the 25% slack.
	p.Lines[0].Length = 20
	r := ValidateSchema(p)
	if !r.Valid {
		t.Fatalf("drift is a warning, not an error: %+v", r.Errors)
	}
	if len(r.Warnings) != 1 {
		t.Fatalf("expected 1 drift warning, got %+v", r.Warnings)
	}
}

func TestValidateSchemaZoneDefs(t *testing.T) {
	p := validPlan()
	p.Zones = append(p.Zones,
		plan.ZoneDef{Name: "Tiny", Type: "other", LineIndices: []int{0, 1}},
		plan.ZoneDef{Name: "Stale", Type: "other", LineIndices: []int{0, 1, 99}},
	)
	r := ValidateSchema(p)
	if r.Valid {
		t.Fatal("expected invalid report for 2-line zone")
	}
	if len(r.Errors) != 1 {
		t.Errorf("expected 1 error for the tiny zone, got %+v", r.Errors)
	}
	// An out-of-range index is tolerated with a warning only.
	if len(r.Warnings) != 1 {
		t.Errorf("expected 1 warning for the stale index, got %+v", r.Warnings)
	}
}

func TestValidateGeometryOpenOutline(t *testing.T) {
	lines := []geom.Segment{
		geom.Seg(geom.Pt(0, 0), geom.Pt(500, 0), 10),
		geom.Seg(geom.Pt(500, 0), geom.Pt(500, 400), 8),
		geom.Seg(geom.Pt(500, 400), geom.Pt(900, 400), 8),
	}
	r := ValidateGeometry(lines, 50)
	if len(r.Warnings) == 0 {
		t.Fatal("expected a warning for the open outline")
	}
	if !strings.Contains(r.Warnings[0].Message, "does not close") {
		t.Errorf("expected closure warning first, got %q", r.Warnings[0].Message)
	}
}

func TestValidateGeometryTooFewLines(t *testing.T) {
	r := ValidateGeometry(nil, 50)
	if !r.Valid || len(r.Warnings) != 0 {
		t.Errorf("expected info-only report for empty plan, got %+v", r)
	}
	if len(r.Info) != 1 {
		t.Errorf("expected a single info entry, got %+v", r.Info)
	}
}

func TestMerge(t *testing.T) {
	a := NewReport()
	a.AddWarning(Result{Level: LevelSchema, Message: "w"})
	b := NewReport()
	b.AddError(Result{Level: LevelGeometry, Message: "e"})

	a.Merge(b)
	if a.Valid {
		t.Error("expected merged report invalid")
	}
	if a.Summary != "1 errors, 1 warnings, 0 info" {
		t.Errorf("unexpected summary %q", a.Summary)
	}
}
