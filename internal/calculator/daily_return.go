package calculator

import (
	"math"

	"stockdash/internal/domain"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// DailyReturn is the percent change from the previous row. The first
// row, and any row whose previous close is zero or not finite, is nil
func DailyReturn(series domain.SymbolSeries) []*float64 {
	closes := series.Closes()
	out := make([]*float64, len(closes))
	for i := 1; i < len(closes); i++ {
		prev, cur := closes[i-1], closes[i]
		if prev == 0 || !isFinite(prev) || !isFinite(cur) {
			continue
		}
		p := decimal.NewFromFloat(prev)
		pct := hundred.Mul(decimal.NewFromFloat(cur).Sub(p)).Div(p).InexactFloat64()
		out[i] = &pct
	}
	return out
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
