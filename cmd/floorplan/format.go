package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/planforge/floorplan/pkg/validation"
	"github.com/planforge/floorplan/pkg/zones"
)

func printValidationReport(r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Printf("  [%s] %s\n", e.Level, e.Message)
			if e.PlanPath != "" {
				fmt.Printf("    -> %s = %v\n", e.PlanPath, e.ActualValue)
			}
			if e.Expected != "" {
				fmt.Printf("    expected: %s\n", e.Expected)
			}
			for _, s := range e.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Printf("  [%s] %s\n", w.Level, w.Message)
			if w.Expected != "" {
				fmt.Printf("    expected: %s\n", w.Expected)
			}
			for _, s := range w.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Info) > 0 {
		fmt.Printf("INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Printf("  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Println()
	}

	if r.Valid {
		fmt.Printf("Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: INVALID (%s)\n", r.Summary)
	}
}

func printZoneSummary(mgr *zones.Manager) {
	s := mgr.Summary()

	fmt.Println("Zones")
	fmt.Println("=====")
	fmt.Println()
	fmt.Printf("  Total:   %d (%d valid, %d invalid)\n", s.TotalZones, s.ValidZones, s.InvalidZones)
	fmt.Printf("  Area:    %.2f m² across valid zones\n", s.TotalArea)

	if len(s.ZonesByType) > 0 {
		fmt.Println()
		fmt.Println("  By type")
		fmt.Println("  -------")
		types := make([]zones.ZoneType, 0, len(s.ZonesByType))
		for t := range s.ZonesByType {
			types = append(types, t)
		}
		sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
		for _, t := range types {
			bt := s.ZonesByType[t]
			fmt.Printf("  %-14s %d zone(s)  |  %.2f m²\n", t, bt.Count, bt.TotalArea)
		}
	}

	if len(s.ZonesList) > 0 {
		fmt.Println()
		for _, z := range s.ZonesList {
			status := "✓"
			if !z.IsValid {
				status = "✗"
			}
			// The canvas label is two lines (icon + name, then area);
			// fold it onto one line for the terminal.
			title, area, _ := strings.Cut(mgr.Label(&z), "\n")
			fmt.Printf("  %s %-24s (%-12s) %s\n", status, title, z.Type, area)
		}
	}
}
