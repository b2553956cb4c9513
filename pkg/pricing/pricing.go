package pricing

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Format renders a minor-unit amount as a display string, e.g.
// 1990 -> "19.90". The stores keep prices as int64 minor units; this
// conversion happens only at the presentation edge.
func Format(minor int64) string {
	return decimal.NewFromInt(minor).Div(hundred).StringFixed(2)
}
