package analytics

import "fmt"

// Band is a display classification of a rate.
type Band string

const (
	BandNormal  Band = "normal"
	BandWarning Band = "warning"
	BandHigh    Band = "high"
)

// Bands holds inclusive cut points: rates up to Normal are normal, up to
// Warning are warnings, anything above is high.
type Bands struct {
	Normal  float64 `yaml:"normal" json:"normal"`
	Warning float64 `yaml:"warning" json:"warning"`
}

// DefaultOperatorBands are the overtime rate cut points shown on the team panel.
func DefaultOperatorBands() Bands { return Bands{Normal: 5, Warning: 8} }

// DefaultSalesmanBands are the exception rate cut points shown on the team panel.
func DefaultSalesmanBands() Bands { return Bands{Normal: 3, Warning: 5} }

// Validate rejects inverted cut points.
func (b Bands) Validate() error {
	if b.Normal < 0 || b.Warning < b.Normal {
		return fmt.Errorf("analytics: invalid bands normal=%v warning=%v", b.Normal, b.Warning)
	}
	return nil
}

// Classify places a rate in a band.
func (b Bands) Classify(rate float64) Band {
	switch {
	case rate <= b.Normal:
		return BandNormal
	case rate <= b.Warning:
		return BandWarning
	default:
		return BandHigh
	}
}

// OperatorBand classifies an operator's overtime rate.
func OperatorBand(overtimeRate float64, b Bands) Band { return b.Classify(overtimeRate) }

// SalesmanBand classifies a salesman's exception rate.
func SalesmanBand(exceptionRate float64, b Bands) Band { return b.Classify(exceptionRate) }

// BandStyle returns badge class tokens for a band.
func BandStyle(b Band) (background, foreground string) {
	switch b {
	case BandNormal:
		return "bg-green-100", "text-green-700"
	case BandWarning:
		return "bg-yellow-100", "text-yellow-700"
	case BandHigh:
		return "bg-red-100", "text-red-700"
	default:
		return "bg-gray-100", "text-gray-700"
	}
}

// BadgeStyle is the rendered badge of a band.
type BadgeStyle struct {
	Background string `json:"background"`
	Foreground string `json:"foreground"`
}

func badgeOf(b Band) BadgeStyle {
	bg, fg := BandStyle(b)
	return BadgeStyle{Background: bg, Foreground: fg}
}

// ClassifiedOperator pairs the supplied scorecard with its display band.
type ClassifiedOperator struct {
	OperatorPerformance
	Band          Band       `json:"band"`
	Badge         BadgeStyle `json:"badge"`
	BandDisagrees bool       `json:"band_disagrees"`
}

// ClassifiedSalesman pairs the supplied scorecard with its display band.
type ClassifiedSalesman struct {
	SalesmanPerformance
	Band          Band       `json:"band"`
	Badge         BadgeStyle `json:"badge"`
	BandDisagrees bool       `json:"band_disagrees"`
}

// ClassifyOperators attaches bands while keeping IsHighRisk as supplied.
// BandDisagrees marks records where the high band and the flag differ.
func ClassifyOperators(ops []OperatorPerformance, b Bands) []ClassifiedOperator {
	out := make([]ClassifiedOperator, 0, len(ops))
	for _, op := range ops {
		band := OperatorBand(op.OvertimeRate, b)
		out = append(out, ClassifiedOperator{
			OperatorPerformance: op,
			Band:                band,
			Badge:               badgeOf(band),
			BandDisagrees:       (band == BandHigh) != op.IsHighRisk,
		})
	}
	return out
}

// ClassifySalesmen attaches bands while keeping IsHighRisk as supplied.
func ClassifySalesmen(sales []SalesmanPerformance, b Bands) []ClassifiedSalesman {
	out := make([]ClassifiedSalesman, 0, len(sales))
	for _, s := range sales {
		band := SalesmanBand(s.ExceptionRate, b)
		out = append(out, ClassifiedSalesman{
			SalesmanPerformance: s,
			Band:                band,
			Badge:               badgeOf(band),
			BandDisagrees:       (band == BandHigh) != s.IsHighRisk,
		})
	}
	return out
}
