package plan

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/planforge/floorplan/pkg/geom"
)

// Load reads a plan document from a YAML file. A missing or zero scale
// takes the default.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plan file: %w", err)
	}

	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing plan YAML: %w", err)
	}
	if p.Scale == 0 {
		p.Scale = geom.DefaultScale
	}

	return &p, nil
}

// LoadProject loads a plan from a project directory. It looks for
// floorplan.yaml in the given directory.
func LoadProject(projectDir string) (*Plan, error) {
	planPath := filepath.Join(projectDir, "floorplan.yaml")
	return Load(planPath)
}
