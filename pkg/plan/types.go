package plan

import "github.com/planforge/floorplan/pkg/geom"

// Plan is the top-level floor-plan document.
type Plan struct {
	Name  string         `yaml:"name" json:"name"`
	Scale float64        `yaml:"scale" json:"scale"`
	Lines []geom.Segment `yaml:"lines" json:"lines"`
	Zones []ZoneDef      `yaml:"zones,omitempty" json:"zones,omitempty"`
}

// ZoneDef declares a zone in the plan document. Type is a free-form tag;
// unrecognized values fall back to the catch-all type defaults. Color,
// when set, overrides the type-derived display color.
type ZoneDef struct {
	Name        string `yaml:"name" json:"name"`
	Type        string `yaml:"type" json:"type"`
	Color       string `yaml:"color,omitempty" json:"color,omitempty"`
	LineIndices []int  `yaml:"line_indices" json:"line_indices"`
}
