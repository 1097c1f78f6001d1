package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"stockdash/internal/calculator"
	"stockdash/internal/domain"
	"stockdash/internal/logger"
	"stockdash/internal/metrics"
	"stockdash/internal/service"

	"github.com/google/uuid"
)

type DashboardInput struct {
	Symbol    string
	Frequency string
}

// DashboardApp is the render function the presentation layer calls on
// every interaction. Each call recomputes everything from the loaded table
type DashboardApp interface {
	Symbols() []string
	Render(ctx context.Context, input DashboardInput) *domain.Dashboard
	Series(ctx context.Context, symbol string) (*domain.DerivedSeries, error)
	Resample(ctx context.Context, symbol, frequency string) (*domain.ResampledChart, error)
	Correlation(ctx context.Context) (*domain.CorrelationChart, error)
}

type DashboardOptions struct {
	MovingAverageWindows []int
	DefaultFrequency     domain.ResampleFrequency
	Alignment            domain.CorrelationAlignment
}

type dashboardAppHandler struct {
	SeriesService service.SeriesService
	Options       DashboardOptions
	Metrics       *metrics.Recorder
}

// NewDashboardApp accepts a nil recorder
func NewDashboardApp(seriesService service.SeriesService, options DashboardOptions, recorder *metrics.Recorder) DashboardApp {
	if options.DefaultFrequency == "" {
		options.DefaultFrequency = domain.ResampleMonthly
	}
	if options.Alignment == "" {
		options.Alignment = domain.AlignStrict
	}
	return dashboardAppHandler{
		SeriesService: seriesService,
		Options:       options,
		Metrics:       recorder,
	}
}

var symbolCharts = []domain.ChartName{
	domain.ChartClosingPrice,
	domain.ChartMovingAverages,
	domain.ChartDailyReturns,
	domain.ChartResampled,
}

func (h dashboardAppHandler) Symbols() []string {
	return h.SeriesService.Symbols()
}

// Render never fails as a whole. A chart that cannot be built is left
// nil with its reason in Errors and the rest still render
func (h dashboardAppHandler) Render(ctx context.Context, input DashboardInput) *domain.Dashboard {
	lg := logger.FromContext(ctx)
	start := time.Now()
	profile, endProfile := domain.NewProfile()

	out := &domain.Dashboard{
		RenderID: uuid.New(),
		Title:    domain.DashboardTitle,
		Footnote: domain.DashboardFootnote,
		Symbols:  h.SeriesService.Symbols(),
		Symbol:   strings.TrimSpace(input.Symbol),
	}
	if out.Symbol == "" && len(out.Symbols) > 0 {
		out.Symbol = out.Symbols[0]
	}
	lg = lg.With("renderID", out.RenderID, "symbol", out.Symbol)
	ctx = logger.WithLogger(ctx, lg)

	frequency, frequencyErr := h.frequency(input.Frequency)
	out.Frequency = frequency

	profile.StartNewSpan("select")
	series, err := h.SeriesService.Select(out.Symbol)
	if err != nil {
		for _, chart := range symbolCharts {
			h.skip(ctx, out, chart, err)
		}
	} else {
		profile.StartNewSpan("derive")
		derived := calculator.Derive(*series, h.Options.MovingAverageWindows)
		out.ClosingPrice = closingPriceChart(derived)
		out.MovingAverages = movingAverageChart(derived)
		out.DailyReturns = dailyReturnChart(derived)

		profile.StartNewSpan("resample")
		if frequencyErr != nil {
			h.skip(ctx, out, domain.ChartResampled, frequencyErr)
		} else {
			out.Resampled = resampledChart(*series, frequency)
		}
	}

	profile.StartNewSpan("correlation")
	correlation, err := h.Correlation(ctx)
	if err != nil {
		h.skip(ctx, out, domain.ChartCorrelation, err)
	} else {
		out.Correlation = correlation
	}
	endProfile()

	if h.Metrics != nil {
		h.Metrics.RecordRender(renderedSymbol(out), string(out.Frequency))
		h.Metrics.RecordLatency("render", time.Since(start).Seconds())
	}
	lg.Debugw("rendered dashboard", "profile", profile, "skipped", len(out.Errors))

	return out
}

// renderedSymbol keeps metric labels to loaded symbols
func renderedSymbol(out *domain.Dashboard) string {
	if _, skipped := out.Errors[domain.ChartClosingPrice]; skipped {
		return metrics.UnknownLabel
	}
	return out.Symbol
}

func (h dashboardAppHandler) skip(ctx context.Context, out *domain.Dashboard, chart domain.ChartName, err error) {
	logger.FromContext(ctx).Warnw("skipping chart", "chart", chart, "error", err)
	out.Skip(chart, err)
	if h.Metrics != nil {
		h.Metrics.RecordSkippedChart(string(chart))
	}
}

// frequency falls back to the configured default when none is given
func (h dashboardAppHandler) frequency(s string) (domain.ResampleFrequency, error) {
	if strings.TrimSpace(s) == "" {
		return h.Options.DefaultFrequency, nil
	}
	return domain.ParseResampleFrequency(s)
}

func (h dashboardAppHandler) Series(ctx context.Context, symbol string) (*domain.DerivedSeries, error) {
	series, err := h.SeriesService.Select(symbol)
	if err != nil {
		return nil, err
	}
	derived := calculator.Derive(*series, h.Options.MovingAverageWindows)
	return &derived, nil
}

func (h dashboardAppHandler) Resample(ctx context.Context, symbol, frequency string) (*domain.ResampledChart, error) {
	f, err := h.frequency(frequency)
	if err != nil {
		return nil, err
	}
	series, err := h.SeriesService.Select(symbol)
	if err != nil {
		return nil, err
	}
	return resampledChart(*series, f), nil
}

func (h dashboardAppHandler) Correlation(ctx context.Context) (*domain.CorrelationChart, error) {
	start := time.Now()
	matrix, err := calculator.Correlate(h.SeriesService.ClosingPriceColumns(), h.Options.Alignment)
	if err != nil {
		return nil, fmt.Errorf("failed to correlate closing prices: %w", err)
	}
	if h.Metrics != nil {
		h.Metrics.RecordLatency("correlate", time.Since(start).Seconds())
	}
	return &domain.CorrelationChart{
		Title:  "Correlation Between Tech Stocks",
		Matrix: *matrix,
	}, nil
}

func closingPriceChart(derived domain.DerivedSeries) *domain.ClosingPriceChart {
	out := &domain.ClosingPriceChart{
		Title:  fmt.Sprintf("%s Closing Prices Over Time", derived.Symbol),
		Points: make([]domain.PricePoint, len(derived.Points)),
	}
	for i, p := range derived.Points {
		out.Points[i] = domain.PricePoint{Date: p.Date, Close: p.Close}
	}
	return out
}

func movingAverageChart(derived domain.DerivedSeries) *domain.MovingAverageChart {
	out := &domain.MovingAverageChart{
		Title:   fmt.Sprintf("%s Closing Price with Moving Averages", derived.Symbol),
		Windows: derived.Windows,
		Labels:  make([]string, len(derived.Windows)),
		Points:  make([]domain.MovingAveragePoint, len(derived.Points)),
	}
	for i, w := range derived.Windows {
		out.Labels[i] = domain.MovingAverageLabel(w)
	}
	for i, p := range derived.Points {
		out.Points[i] = domain.MovingAveragePoint{
			Date:     p.Date,
			Close:    p.Close,
			Averages: p.MovingAverages,
		}
	}
	return out
}

func dailyReturnChart(derived domain.DerivedSeries) *domain.DailyReturnChart {
	out := &domain.DailyReturnChart{
		Title:  fmt.Sprintf("%s Daily Returns (%%)", derived.Symbol),
		Points: make([]domain.ReturnPoint, len(derived.Points)),
	}
	for i, p := range derived.Points {
		out.Points[i] = domain.ReturnPoint{Date: p.Date, ReturnPercent: p.DailyReturn}
	}
	return out
}

func resampledChart(series domain.SymbolSeries, frequency domain.ResampleFrequency) *domain.ResampledChart {
	return &domain.ResampledChart{
		Title:     fmt.Sprintf("%s Resampled Closing Price (%s)", series.Symbol, frequency),
		Frequency: frequency,
		Points:    calculator.Resample(series, frequency),
	}
}
