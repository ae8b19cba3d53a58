package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/planforge/floorplan/pkg/analysis"
	"github.com/planforge/floorplan/pkg/plan"
	"github.com/planforge/floorplan/pkg/validation"
	"github.com/planforge/floorplan/pkg/zones"
)

// loadAndValidate loads the plan and runs schema validation.
func loadAndValidate(projectPath string) (*plan.Plan, *validation.Report, error) {
	p, err := plan.LoadProject(projectPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading plan: %w", err)
	}
	schemaReport := validation.ValidateSchema(p)
	return p, schemaReport, nil
}

// buildZones materializes the plan's declared zones and, when requested,
// auto-detects closed rooms on top of them.
func buildZones(p *plan.Plan, detect bool) (*zones.Manager, *validation.Report) {
	report := validation.NewReport()
	mgr := zones.NewManager(p.Scale)

	for _, def := range p.Zones {
		if _, err := mgr.Create(def.Name, zones.ZoneType(def.Type), def.Color, def.LineIndices, p.Lines); err != nil {
			report.AddWarning(validation.Result{
				Level:    validation.LevelGeometry,
				Message:  fmt.Sprintf("skipping declared zone: %v", err),
				PlanPath: "zones",
			})
		}
	}
	if detect {
		mgr.AutoDetect(p.Lines)
	}
	return mgr, report
}

func runValidate(projectPath string) error {
	p, schemaReport, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}

	geometryReport := validation.ValidateGeometry(p.Lines, p.Scale)
	schemaReport.Merge(geometryReport)

	printValidationReport(schemaReport)

	if !schemaReport.Valid {
		os.Exit(1)
	}
	return nil
}

func runAnalyze(projectPath string, detect bool) error {
	p, schemaReport, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !schemaReport.Valid {
		printValidationReport(schemaReport)
		return fmt.Errorf("plan has validation errors")
	}

	report := analysis.Analyze(p.Lines, p.Scale)

	mgr, zoneReport := buildZones(p, detect)
	if len(mgr.All()) > 0 {
		summary := mgr.Summary()
		report.Zones = &summary
	}

	output := map[string]any{
		"plan":       p.Name,
		"scale":      p.Scale,
		"analysis":   report,
		"validation": zoneReport,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

func runZones(projectPath string, detect bool) error {
	p, schemaReport, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !schemaReport.Valid {
		printValidationReport(schemaReport)
		return fmt.Errorf("plan has validation errors")
	}

	mgr, zoneReport := buildZones(p, detect)
	printZoneSummary(mgr)

	if len(zoneReport.Warnings) > 0 {
		fmt.Println()
		printValidationReport(zoneReport)
	}
	return nil
}
