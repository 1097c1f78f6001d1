package calculator

import (
	"sort"
	"time"

	"stockdash/internal/domain"

	"github.com/montanaflynn/stats"
)

// PeriodBounds returns the first and last calendar day of the month,
// quarter or year containing t
func PeriodBounds(t time.Time, frequency domain.ResampleFrequency) (time.Time, time.Time) {
	year, month := t.Year(), t.Month()
	var start time.Time
	var months int
	switch frequency {
	case domain.ResampleQuarterly:
		start = time.Date(year, ((month-1)/3)*3+1, 1, 0, 0, 0, 0, time.UTC)
		months = 3
	case domain.ResampleYearly:
		start = time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		months = 12
	default:
		start = time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
		months = 1
	}
	return start, start.AddDate(0, months, -1)
}

// Resample buckets the series by calendar period and averages the closes
// in each bucket. Only periods holding at least one record are returned,
// ascending by period start
func Resample(series domain.SymbolSeries, frequency domain.ResampleFrequency) []domain.ResampledPoint {
	buckets := map[time.Time][]float64{}
	for _, r := range series.Records {
		start, _ := PeriodBounds(r.Date, frequency)
		buckets[start] = append(buckets[start], r.Close)
	}

	out := make([]domain.ResampledPoint, 0, len(buckets))
	for start, closes := range buckets {
		mean, err := stats.Mean(closes)
		if err != nil {
			continue
		}
		_, end := PeriodBounds(start, frequency)
		out = append(out, domain.ResampledPoint{
			PeriodStart: start,
			PeriodEnd:   end,
			MeanClose:   mean,
			Count:       len(closes),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].PeriodStart.Before(out[j].PeriodStart)
	})
	return out
}
