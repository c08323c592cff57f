package analytics

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Unit is a display scale for money amounts.
type Unit string

const (
	UnitYuan Unit = "元"
	UnitWan  Unit = "万"
	UnitYi   Unit = "亿"
)

const (
	wan = 1e4
	yi  = 1e8
)

// ToWan scales an amount in yuan to 万.
func ToWan(amount float64) float64 { return amount / wan }

// ToYi scales an amount in yuan to 亿.
func ToYi(amount float64) float64 { return amount / yi }

// Scale converts an amount in yuan to the given unit. Unknown units leave the
// amount unscaled.
func Scale(amount float64, unit Unit) float64 {
	switch unit {
	case UnitWan:
		return ToWan(amount)
	case UnitYi:
		return ToYi(amount)
	default:
		return amount
	}
}

// Scaled is an amount prepared for display.
type Scaled struct {
	Raw     float64 `json:"raw"`
	Value   float64 `json:"value"`
	Unit    Unit    `json:"unit"`
	Display string  `json:"display"`
}

var printer = message.NewPrinter(language.SimplifiedChinese)

// Format scales an amount and renders it with the given number of decimals
// and the unit suffix.
func Format(amount float64, unit Unit, decimals int) Scaled {
	if decimals < 0 {
		decimals = 0
	}
	v := Scale(amount, unit)
	return Scaled{
		Raw:     amount,
		Value:   v,
		Unit:    unit,
		Display: printer.Sprintf(fmt.Sprintf("%%.%df%%s", decimals), v, string(unit)),
	}
}
