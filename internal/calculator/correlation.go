package calculator

import (
	"math"

	"stockdash/internal/domain"

	"github.com/montanaflynn/stats"
)

// Correlate builds the pairwise Pearson matrix over the closing price
// columns. Columns are paired by row position as loaded, never joined on
// date, so sources with gaps or different trading days correlate rows
// from different dates.
//
// With AlignStrict unequal lengths fail with a DimensionMismatchError.
// With AlignPositional each pair uses only their common leading rows
func Correlate(columns domain.ClosingPriceColumns, alignment domain.CorrelationAlignment) (*domain.CorrelationMatrix, error) {
	symbols := columns.Symbols
	if alignment != domain.AlignPositional {
		if err := checkLengths(columns); err != nil {
			return nil, err
		}
	}

	n := len(symbols)
	out := &domain.CorrelationMatrix{
		Symbols: append([]string{}, symbols...),
		Labels:  make([]string, n),
		Values:  make([][]*float64, n),
	}
	for i, symbol := range symbols {
		out.Labels[i] = domain.CloseLabel(symbol)
		out.Values[i] = make([]*float64, n)
	}

	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			r, ok := pearson(columns.Columns[symbols[i]], columns.Columns[symbols[j]], i == j)
			if !ok {
				continue
			}
			out.Values[i][j] = &r
			if i != j {
				mirrored := r
				out.Values[j][i] = &mirrored
			}
		}
	}

	return out, nil
}

func checkLengths(columns domain.ClosingPriceColumns) error {
	lengths := map[string]int{}
	mismatch := false
	for i, symbol := range columns.Symbols {
		lengths[symbol] = len(columns.Columns[symbol])
		if lengths[symbol] != lengths[columns.Symbols[0]] && i > 0 {
			mismatch = true
		}
	}
	if mismatch {
		return &domain.DimensionMismatchError{Lengths: lengths}
	}
	return nil
}

// pearson returns false when either side has fewer than two rows or
// no variance
func pearson(a, b []float64, same bool) (float64, bool) {
	l := min(len(a), len(b))
	if l < 2 {
		return 0, false
	}
	a, b = a[:l], b[:l]

	for _, side := range [][]float64{a, b} {
		variance, err := stats.PopulationVariance(side)
		if err != nil || variance == 0 || !isFinite(variance) {
			return 0, false
		}
	}
	if same {
		return 1, true
	}

	r, err := stats.Correlation(a, b)
	if err != nil || !isFinite(r) {
		return 0, false
	}
	return math.Max(-1, math.Min(1, r)), true
}
