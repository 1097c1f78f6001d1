package calculator

import (
	"stockdash/internal/domain"

	"github.com/montanaflynn/stats"
)

// MovingAverage is the trailing mean of closing prices over window rows.
// rows with fewer than window points behind them (inclusive) are nil;
// there is no partial-window averaging
func MovingAverage(series domain.SymbolSeries, window int) []*float64 {
	closes := series.Closes()
	out := make([]*float64, len(closes))
	if window <= 0 {
		return out
	}
	for i := window - 1; i < len(closes); i++ {
		mean, err := stats.Mean(closes[i-window+1 : i+1])
		if err != nil {
			continue
		}
		out[i] = &mean
	}
	return out
}
