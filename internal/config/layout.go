package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed layout.yaml
var defaultLayoutYAML []byte

// Layout describes presentation settings of the dashboard
type Layout struct {
	Title          string   `yaml:"title"`
	EducationOrder []string `yaml:"education_order"`
	IntentionLabel string   `yaml:"intention_label"`
}

// DefaultLayout returns the embedded layout
func DefaultLayout() *Layout {
	layout, err := parseLayout(defaultLayoutYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded layout.yaml is invalid: %v", err))
	}
	return layout
}

// LoadLayout reads a layout file; an empty path yields the embedded default.
// Fields left empty in the file keep their default values.
func LoadLayout(path string) (*Layout, error) {
	layout := DefaultLayout()
	if path == "" {
		return layout, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout file %s: %w", path, err)
	}

	override, err := parseLayout(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout file %s: %w", path, err)
	}

	if override.Title != "" {
		layout.Title = override.Title
	}
	if len(override.EducationOrder) > 0 {
		layout.EducationOrder = override.EducationOrder
	}
	if override.IntentionLabel != "" {
		layout.IntentionLabel = override.IntentionLabel
	}
	return layout, nil
}

func parseLayout(data []byte) (*Layout, error) {
	var layout Layout
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return nil, err
	}
	return &layout, nil
}
