package calculator

import "stockdash/internal/domain"

// Derive adds a moving average column per window and the daily return
// column. The input series is not modified
func Derive(series domain.SymbolSeries, windows []int) domain.DerivedSeries {
	averages := make([][]*float64, len(windows))
	for w, window := range windows {
		averages[w] = MovingAverage(series, window)
	}
	returns := DailyReturn(series)

	out := domain.DerivedSeries{
		Symbol:  series.Symbol,
		Windows: append([]int{}, windows...),
		Points:  make([]domain.DerivedPoint, len(series.Records)),
	}
	for i, r := range series.Records {
		point := domain.DerivedPoint{
			Record:         r,
			MovingAverages: make([]*float64, len(windows)),
			DailyReturn:    returns[i],
		}
		for w := range windows {
			point.MovingAverages[w] = averages[w][i]
		}
		out.Points[i] = point
	}
	return out
}
