package domain

import (
	"time"

	"github.com/google/uuid"
)

type ChartName string

const (
	ChartClosingPrice   ChartName = "closingPrice"
	ChartMovingAverages ChartName = "movingAverages"
	ChartDailyReturns   ChartName = "dailyReturns"
	ChartResampled      ChartName = "resampled"
	ChartCorrelation    ChartName = "correlation"
)

const (
	DashboardTitle    = "Tech Stocks Analysis Dashboard"
	DashboardFootnote = "This dashboard provides basic technical analysis of major tech stocks."
)

type PricePoint struct {
	Date  time.Time `json:"date"`
	Close float64   `json:"close"`
}

type ClosingPriceChart struct {
	Title  string       `json:"title"`
	Points []PricePoint `json:"points"`
}

type MovingAveragePoint struct {
	Date     time.Time  `json:"date"`
	Close    float64    `json:"close"`
	Averages []*float64 `json:"averages"`
}

// MovingAverageChart has one Labels entry per averages column
type MovingAverageChart struct {
	Title   string               `json:"title"`
	Windows []int                `json:"windows"`
	Labels  []string             `json:"labels"`
	Points  []MovingAveragePoint `json:"points"`
}

type ReturnPoint struct {
	Date          time.Time `json:"date"`
	ReturnPercent *float64  `json:"dailyReturnPct"`
}

type DailyReturnChart struct {
	Title  string        `json:"title"`
	Points []ReturnPoint `json:"points"`
}

type ResampledChart struct {
	Title     string            `json:"title"`
	Frequency ResampleFrequency `json:"frequency"`
	Points    []ResampledPoint  `json:"points"`
}

type CorrelationChart struct {
	Title  string            `json:"title"`
	Matrix CorrelationMatrix `json:"matrix"`
}

// Dashboard is everything one render produces. A nil chart was skipped
// and its reason is in Errors
type Dashboard struct {
	RenderID  uuid.UUID         `json:"renderID"`
	Title     string            `json:"title"`
	Footnote  string            `json:"footnote"`
	Symbols   []string          `json:"symbols"`
	Symbol    string            `json:"symbol"`
	Frequency ResampleFrequency `json:"frequency"`

	ClosingPrice   *ClosingPriceChart  `json:"closingPrice"`
	MovingAverages *MovingAverageChart `json:"movingAverages"`
	DailyReturns   *DailyReturnChart   `json:"dailyReturns"`
	Resampled      *ResampledChart     `json:"resampled"`
	Correlation    *CorrelationChart   `json:"correlation"`

	Errors map[ChartName]string `json:"errors,omitempty"`
}

func (d *Dashboard) Skip(chart ChartName, err error) {
	if d.Errors == nil {
		d.Errors = map[ChartName]string{}
	}
	d.Errors[chart] = err.Error()
}
