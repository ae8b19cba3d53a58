package analysis

import "github.com/planforge/floorplan/pkg/zones"

// Severity indicates how urgent a correction suggestion is.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// SuggestionType identifies the kind of inconsistency a suggestion targets.
type SuggestionType string

const (
	SuggestionAngle  SuggestionType = "angle_correction"
	SuggestionLength SuggestionType = "length_inconsistency"
)

// Suggestion is one structured correction finding. Angle suggestions
// populate the angle fields, length suggestions the length fields; the
// unused pair is omitted from JSON.
type Suggestion struct {
	Type           SuggestionType `json:"type"`
	LineIndex      int            `json:"line_index"`
	CurrentAngle   *float64       `json:"current_angle,omitempty"`
	SuggestedAngle *float64       `json:"suggested_angle,omitempty"`
	CurrentLength  *float64       `json:"current_length,omitempty"`
	AverageLength  *float64       `json:"average_length,omitempty"`
	Severity       Severity       `json:"severity"`
}

// IrregularAngle describes one segment whose angle matches no expected
// value within tolerance.
type IrregularAngle struct {
	Index           int     `json:"index"`
	Angle           float64 `json:"angle"`
	ClosestExpected float64 `json:"closest_expected"`
}

// Measurements is the aggregate metric summary of a plan.
type Measurements struct {
	AreaM2          float64 `json:"area_m2"`
	PerimeterM      float64 `json:"perimeter_m"`
	NumLines        int     `json:"num_lines"`
	IsClosed        bool    `json:"is_closed"`
	RegularityIndex float64 `json:"regularity_index"`
}

// Geometry holds the pattern-detection counts and details.
type Geometry struct {
	ParallelPairs        int              `json:"parallel_pairs"`
	PerpendicularPairs   int              `json:"perpendicular_pairs"`
	IrregularAnglesCount int              `json:"irregular_angles_count"`
	IrregularAngles      []IrregularAngle `json:"irregular_angles_details"`
}

// SeverityCounts tallies suggestions per severity. Low is never produced
// by the current rules but stays in the contract.
type SeverityCounts struct {
	Low    int `json:"low"`
	Medium int `json:"medium"`
	High   int `json:"high"`
}

// Issues groups the correction suggestions.
type Issues struct {
	Suggestions    []Suggestion   `json:"suggestions"`
	HasIssues      bool           `json:"has_issues"`
	SeverityCounts SeverityCounts `json:"severity_counts"`
}

// Report is the complete analysis output. Field names are the contract
// consumed by external collaborators (UI, exporter, prompt builder).
type Report struct {
	Measurements Measurements   `json:"measurements"`
	Geometry     Geometry       `json:"geometry"`
	Issues       Issues         `json:"issues"`
	Zones        *zones.Summary `json:"zones,omitempty"`
}
