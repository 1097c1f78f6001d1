package domain

import "time"

// PriceSource is one flat file holding the daily records of a single symbol
type PriceSource struct {
	Symbol string `yaml:"symbol" json:"symbol" validate:"required"`
	Path   string `yaml:"path" json:"path" validate:"required"`
}

// Record is one daily row. Open/High/Low/Volume are carried through
// but nothing downstream reads them
type Record struct {
	Symbol string    `json:"symbol"`
	Date   time.Time `json:"date"`
	Close  float64   `json:"close"`
	Open   float64   `json:"open,omitempty"`
	High   float64   `json:"high,omitempty"`
	Low    float64   `json:"low,omitempty"`
	Volume int64     `json:"volume,omitempty"`
}

// PriceTable is every loaded record, in load order. It is not sorted
// by date and duplicates pass through unchanged
type PriceTable struct {
	Records []Record
}

// Symbols returns the distinct symbols in order of first appearance
func (t PriceTable) Symbols() []string {
	seen := map[string]bool{}
	out := []string{}
	for _, r := range t.Records {
		if !seen[r.Symbol] {
			seen[r.Symbol] = true
			out = append(out, r.Symbol)
		}
	}
	return out
}

// ClosingPriceColumns groups closing prices by symbol keeping the file
// row order. Rows are aligned by position only, never re-joined on date
func (t PriceTable) ClosingPriceColumns() ClosingPriceColumns {
	out := ClosingPriceColumns{
		Symbols: t.Symbols(),
		Columns: map[string][]float64{},
	}
	for _, r := range t.Records {
		out.Columns[r.Symbol] = append(out.Columns[r.Symbol], r.Close)
	}
	return out
}

type ClosingPriceColumns struct {
	Symbols []string
	Columns map[string][]float64
}

// SymbolSeries is one symbol's records sorted ascending by date
type SymbolSeries struct {
	Symbol  string
	Records []Record
}

func (s SymbolSeries) Len() int {
	return len(s.Records)
}

func (s SymbolSeries) Closes() []float64 {
	out := make([]float64, len(s.Records))
	for i, r := range s.Records {
		out[i] = r.Close
	}
	return out
}
