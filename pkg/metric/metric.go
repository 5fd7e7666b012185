package metric

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Metric is a read-only record produced by a metrics source. Rendering
// derives display strings from it without mutating the record.
type Metric struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Formatted returns the value in compact notation with at most one
// fractional digit, using the locale's digit conventions: 1247 renders
// as "1.2K" in English and "1,2K" in German.
func (m Metric) Formatted(tag language.Tag) string {
	v, suffix := compact(m.Value)
	p := message.NewPrinter(tag)
	return p.Sprint(number.Decimal(v, number.MaxFractionDigits(1))) + suffix
}

// compact scales a value into the largest suffix bucket it fills.
func compact(v float64) (float64, string) {
	av := math.Abs(v)
	switch {
	case av >= 1e12:
		return v / 1e12, "T"
	case av >= 1e9:
		return v / 1e9, "B"
	case av >= 1e6:
		return v / 1e6, "M"
	case av >= 1e3:
		return v / 1e3, "K"
	default:
		return v, ""
	}
}
