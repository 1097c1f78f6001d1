package calculator

import (
	"testing"
	"time"

	"stockdash/internal/domain"
	"stockdash/internal/util"

	"github.com/stretchr/testify/require"
)

func newSeries(symbol string, start time.Time, closes ...float64) domain.SymbolSeries {
	s := domain.SymbolSeries{Symbol: symbol}
	for i, c := range closes {
		s.Records = append(s.Records, domain.Record{
			Symbol: symbol,
			Date:   start.AddDate(0, 0, i),
			Close:  c,
		})
	}
	return s
}

func aaplExample() domain.SymbolSeries {
	return newSeries("AAPL", util.NewDate(2020, 1, 1), 100, 102, 101, 105, 107)
}

func requireValues(t *testing.T, expected []*float64, actual []*float64) {
	t.Helper()
	require.Len(t, actual, len(expected))
	for i := range expected {
		if expected[i] == nil {
			require.Nil(t, actual[i], "index %d", i)
			continue
		}
		require.NotNil(t, actual[i], "index %d", i)
		require.InDelta(t, *expected[i], *actual[i], 0.0005, "index %d", i)
	}
}

func f(v float64) *float64 {
	return &v
}
