package calculator

import (
	"testing"

	"stockdash/internal/util"

	"github.com/montanaflynn/stats"
	"github.com/stretchr/testify/require"
)

func TestMovingAverage(t *testing.T) {
	t.Run("trailing window of three", func(t *testing.T) {
		requireValues(
			t,
			[]*float64{nil, nil, f(101.0), f(102.667), f(104.333)},
			MovingAverage(aaplExample(), 3),
		)
	})

	t.Run("defined count and slice means", func(t *testing.T) {
		closes := []float64{}
		for i := 0; i < 60; i++ {
			closes = append(closes, 100+float64((i*37)%11)-float64(i%4))
		}
		series := newSeries("MSFT", util.NewDate(2019, 6, 1), closes...)

		for _, window := range []int{1, 7, 10, 20, 50, 60} {
			out := MovingAverage(series, window)
			require.Len(t, out, len(closes))

			defined := 0
			for i, v := range out {
				if i < window-1 {
					require.Nil(t, v)
					continue
				}
				require.NotNil(t, v)
				defined++
				mean, err := stats.Mean(closes[i-window+1 : i+1])
				require.NoError(t, err)
				require.InDelta(t, mean, *v, 1e-9)
			}
			require.Equal(t, len(closes)-window+1, defined, "window %d", window)
		}
	})

	t.Run("window longer than the series", func(t *testing.T) {
		out := MovingAverage(aaplExample(), 6)
		require.Len(t, out, 5)
		for _, v := range out {
			require.Nil(t, v)
		}
	})

	t.Run("non positive window", func(t *testing.T) {
		for _, v := range MovingAverage(aaplExample(), 0) {
			require.Nil(t, v)
		}
	})

	t.Run("does not modify the series", func(t *testing.T) {
		series := aaplExample()
		MovingAverage(series, 2)
		require.Equal(t, []float64{100, 102, 101, 105, 107}, series.Closes())
	})
}
