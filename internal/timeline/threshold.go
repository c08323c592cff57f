// Package timeline evaluates node durations against thresholds and derives
// the display timeline of a waybill.
package timeline

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/silkroad-freight/freightboard/internal/waybill"
)

// Evaluation is the result of comparing an observed duration to its threshold.
type Evaluation struct {
	IsOverThreshold bool    `json:"is_over_threshold"`
	OverageMinutes  float64 `json:"overage_minutes"`
}

// Evaluate compares an average duration with its threshold. Equal values are
// not over the threshold.
func Evaluate(avgTimeMinutes, thresholdMinutes float64) Evaluation {
	overage := avgTimeMinutes - thresholdMinutes
	if overage < 0 {
		overage = 0
	}
	return Evaluation{
		IsOverThreshold: avgTimeMinutes > thresholdMinutes,
		OverageMinutes:  overage,
	}
}

// Thresholds holds the acceptable duration per node type, in minutes.
type Thresholds map[waybill.NodeType]float64

// DefaultThresholds mirrors the operational targets used by the process panel.
func DefaultThresholds() Thresholds {
	return Thresholds{
		waybill.NodeLoading:            60,
		waybill.NodeSealing:            30,
		waybill.NodeCustomsDeclaration: 60,
		waybill.NodeExit:               30,
		waybill.NodeTransit:            2880,
		waybill.NodeDelivery:           120,
	}
}

// For returns the threshold of a node type and whether one is configured.
func (t Thresholds) For(nt waybill.NodeType) (float64, bool) {
	v, ok := t[nt]
	return v, ok
}

type thresholdsFile struct {
	Thresholds map[string]float64 `yaml:"thresholds"`
}

// LoadThresholds reads a YAML file of the form
//
//	thresholds:
//	  loading: 60
//	  customs_declaration: 45
//
// on top of DefaultThresholds.
func LoadThresholds(path string) (Thresholds, error) {
	out := DefaultThresholds()
	if path == "" {
		return out, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load thresholds %q: %w", path, err)
	}
	return parseThresholds(data, out)
}

// ParseThresholds decodes the thresholds section of a YAML document on top of
// DefaultThresholds. Other top-level keys are ignored.
func ParseThresholds(data []byte) (Thresholds, error) {
	return parseThresholds(data, DefaultThresholds())
}

func parseThresholds(data []byte, base Thresholds) (Thresholds, error) {
	var file thresholdsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse thresholds: %w", err)
	}
	for raw, minutes := range file.Thresholds {
		nt, err := waybill.ParseNodeType(raw)
		if err != nil {
			return nil, fmt.Errorf("parse thresholds: %w", err)
		}
		if minutes < 0 {
			return nil, fmt.Errorf("parse thresholds: negative threshold for %s", raw)
		}
		base[nt] = minutes
	}
	return base, nil
}
