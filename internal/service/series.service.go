package service

import (
	"fmt"
	"slices"
	"strings"

	"stockdash/internal/domain"
	"stockdash/internal/repository"
)

// SeriesService narrows the process-wide price table to one symbol.
// The table is loaded once and never mutated, so concurrent readers
// are fine
type SeriesService interface {
	Symbols() []string
	Select(symbol string) (*domain.SymbolSeries, error)
	ClosingPriceColumns() domain.ClosingPriceColumns
}

type seriesServiceHandler struct {
	Table   *domain.PriceTable
	symbols []string
}

func NewSeriesService(table *domain.PriceTable) SeriesService {
	return seriesServiceHandler{
		Table:   table,
		symbols: table.Symbols(),
	}
}

// LoadSeriesService does the one startup load through the repository
func LoadSeriesService(priceRepository repository.PriceRepository, sources []domain.PriceSource) (SeriesService, error) {
	table, err := priceRepository.Load(sources)
	if err != nil {
		return nil, fmt.Errorf("failed to load price table: %w", err)
	}
	return NewSeriesService(table), nil
}

func (h seriesServiceHandler) Symbols() []string {
	return append([]string{}, h.symbols...)
}

// Select returns the symbol's records stably sorted by date. Rows that
// share a date keep their load order
func (h seriesServiceHandler) Select(symbol string) (*domain.SymbolSeries, error) {
	symbol = strings.TrimSpace(symbol)
	out := &domain.SymbolSeries{
		Symbol:  symbol,
		Records: []domain.Record{},
	}
	for _, r := range h.Table.Records {
		if r.Symbol == symbol {
			out.Records = append(out.Records, r)
		}
	}
	if len(out.Records) == 0 {
		return nil, &domain.SymbolNotFoundError{Symbol: symbol}
	}

	slices.SortStableFunc(out.Records, func(a, b domain.Record) int {
		return a.Date.Compare(b.Date)
	})

	return out, nil
}

func (h seriesServiceHandler) ClosingPriceColumns() domain.ClosingPriceColumns {
	return h.Table.ClosingPriceColumns()
}
