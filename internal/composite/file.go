package composite

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/structcode/gosect/internal/geometry"
)

// Definition is the JSON file format for a composite cross-section.
type Definition struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	Parts []PartDef  `json:"parts"`
	Rebar []RebarDef `json:"rebar,omitempty"`
}

// PartDef defines one polygon part. Vertices wind counter-clockwise for
// solid material, clockwise for a hole.
type PartDef struct {
	Label    string           `json:"label,omitempty"`
	Material Material         `json:"material"`
	Vertices []geometry.Point `json:"vertices"`
}

// RebarDef defines one point-reinforcement entry.
type RebarDef struct {
	Label    string   `json:"label,omitempty"`
	Area     float64  `json:"area"` // mm²
	X        float64  `json:"x"`    // mm
	Y        float64  `json:"y"`    // mm
	Material Material `json:"material"`
}

// LoadFromFile reads and parses a section definition file.
func LoadFromFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var def Definition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &def, nil
}

// CrossSection builds the validated cross-section the definition describes.
func (d *Definition) CrossSection() (*CrossSection, error) {
	parts := make([]Part, len(d.Parts))
	for i, p := range d.Parts {
		parts[i] = Part{
			Label:    p.Label,
			Polygon:  geometry.Polygon{Vertices: p.Vertices},
			Material: p.Material,
		}
	}
	rebar := make([]Rebar, len(d.Rebar))
	for i, r := range d.Rebar {
		rebar[i] = Rebar{
			Label:    r.Label,
			Area:     r.Area,
			At:       geometry.Point{X: r.X, Y: r.Y},
			Material: r.Material,
		}
	}
	return New(parts, rebar)
}
