package analytics

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/silkroad-freight/freightboard/internal/timeline"
)

type bandsFile struct {
	Bands struct {
		Operator Bands `yaml:"operator"`
		Salesman Bands `yaml:"salesman"`
	} `yaml:"bands"`
}

// LoadSettings reads a tuning file of the form
//
//	thresholds:
//	  customs_declaration: 45
//	bands:
//	  operator: {normal: 5, warning: 8}
//	  salesman: {normal: 3, warning: 5}
//
// on top of DefaultSettings. An empty path returns the defaults.
func LoadSettings(path string) (Settings, error) {
	if path == "" {
		return DefaultSettings(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("load settings %q: %w", path, err)
	}
	return ParseSettings(data)
}

// ParseSettings decodes a tuning document. Missing keys keep their defaults;
// inverted bands are rejected.
func ParseSettings(data []byte) (Settings, error) {
	settings := DefaultSettings()
	thresholds, err := timeline.ParseThresholds(data)
	if err != nil {
		return Settings{}, err
	}
	settings.Thresholds = thresholds

	var file bandsFile
	file.Bands.Operator = settings.OperatorBands
	file.Bands.Salesman = settings.SalesmanBands
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Settings{}, fmt.Errorf("parse bands: %w", err)
	}
	if err := file.Bands.Operator.Validate(); err != nil {
		return Settings{}, fmt.Errorf("operator %w", err)
	}
	if err := file.Bands.Salesman.Validate(); err != nil {
		return Settings{}, fmt.Errorf("salesman %w", err)
	}
	settings.OperatorBands = file.Bands.Operator
	settings.SalesmanBands = file.Bands.Salesman
	return settings, nil
}
