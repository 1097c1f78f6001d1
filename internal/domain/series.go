package domain

import (
	"fmt"
	"strings"
	"time"
)

type ResampleFrequency string

const (
	ResampleMonthly   ResampleFrequency = "Monthly"
	ResampleQuarterly ResampleFrequency = "Quarterly"
	ResampleYearly    ResampleFrequency = "Yearly"
)

var ResampleFrequencies = []ResampleFrequency{
	ResampleMonthly,
	ResampleQuarterly,
	ResampleYearly,
}

// ParseResampleFrequency is case insensitive
func ParseResampleFrequency(s string) (ResampleFrequency, error) {
	for _, f := range ResampleFrequencies {
		if strings.EqualFold(strings.TrimSpace(s), string(f)) {
			return f, nil
		}
	}
	return "", &InvalidFrequencyError{Value: s}
}

// DerivedPoint is a record plus the computed columns. nil means the
// value is missing for that row
type DerivedPoint struct {
	Record
	MovingAverages []*float64 `json:"movingAverages"`
	DailyReturn    *float64   `json:"dailyReturnPct"`
}

// DerivedSeries is built fresh per render. MovingAverages of each point
// line up with Windows
type DerivedSeries struct {
	Symbol  string
	Windows []int
	Points  []DerivedPoint
}

type ResampledPoint struct {
	PeriodStart time.Time `json:"periodStart"`
	PeriodEnd   time.Time `json:"periodEnd"`
	MeanClose   float64   `json:"meanClose"`
	Count       int       `json:"count"`
}

// CorrelationMatrix is square over Symbols. nil entries belong to a
// zero-variance column
type CorrelationMatrix struct {
	Symbols []string     `json:"symbols"`
	Labels  []string     `json:"labels"`
	Values  [][]*float64 `json:"values"`
}

func (m CorrelationMatrix) Get(i, j int) (float64, bool) {
	v := m.Values[i][j]
	if v == nil {
		return 0, false
	}
	return *v, true
}

func CloseLabel(symbol string) string {
	return fmt.Sprintf("%s_close", strings.ToLower(symbol))
}

func MovingAverageLabel(window int) string {
	return fmt.Sprintf("close_%d", window)
}

type CorrelationAlignment string

const (
	// AlignStrict refuses columns of unequal length
	AlignStrict CorrelationAlignment = "strict"
	// AlignPositional correlates each pair over their common leading rows
	AlignPositional CorrelationAlignment = "positional"
)
