package dragbox

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// BoxLayout describes one box in a YAML layout document. Color is an
// optional "#rrggbb" string interpreted by the caller's renderer; the core
// never paints.
type BoxLayout struct {
	ID     string  `yaml:"id"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Color  string  `yaml:"color,omitempty"`
}

// LayoutOptions mirrors the SurfaceOptions interpreter flags in layout files,
// so a demo variant is data rather than code.
type LayoutOptions struct {
	Draggable         bool `yaml:"draggable"`
	Marquee           bool `yaml:"marquee"`
	ClearOnEmptyPress bool `yaml:"clearOnEmptyPress"`
}

// Layout is a YAML-described box arrangement for a surface.
type Layout struct {
	Boxes   []BoxLayout   `yaml:"boxes"`
	Options LayoutOptions `yaml:"options"`
}

// LoadLayout parses and validates a YAML layout document: at least one box,
// unique non-empty ids, positive sizes.
func LoadLayout(data []byte) (*Layout, error) {
	var layout Layout
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return nil, fmt.Errorf("dragbox: failed to parse layout YAML: %w", err)
	}
	if len(layout.Boxes) == 0 {
		return nil, fmt.Errorf("dragbox: layout has no boxes")
	}
	seen := make(map[string]bool, len(layout.Boxes))
	for i, b := range layout.Boxes {
		if b.ID == "" {
			return nil, fmt.Errorf("dragbox: layout box %d has no id", i)
		}
		if seen[b.ID] {
			return nil, fmt.Errorf("dragbox: layout box id %q duplicated", b.ID)
		}
		seen[b.ID] = true
		if b.Width <= 0 || b.Height <= 0 {
			return nil, fmt.Errorf("dragbox: layout box %q has non-positive size", b.ID)
		}
	}
	return &layout, nil
}

// SurfaceOptions converts the layout's option flags. The responder is left
// zero; wire one separately if needed.
func (l *Layout) SurfaceOptions() SurfaceOptions {
	return SurfaceOptions{
		Draggable:         l.Options.Draggable,
		Marquee:           l.Options.Marquee,
		ClearOnEmptyPress: l.Options.ClearOnEmptyPress,
	}
}
