package repository

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"stockdash/internal/domain"
	"stockdash/internal/util"

	"github.com/gocarina/gocsv"
	"github.com/xuri/excelize/v2"
)

// PriceRepository loads the flat per-symbol price files into one table
type PriceRepository interface {
	Load(sources []domain.PriceSource) (*domain.PriceTable, error)
}

type priceFileRepositoryHandler struct{}

func NewPriceFileRepository() PriceRepository {
	return priceFileRepositoryHandler{}
}

var requiredColumns = []string{"date", "close"}

// priceRow keeps every value as text. date and close are validated,
// the other columns are parsed leniently
type priceRow struct {
	Date   string `csv:"date"`
	Open   string `csv:"open"`
	High   string `csv:"high"`
	Low    string `csv:"low"`
	Close  string `csv:"close"`
	Volume string `csv:"volume"`
	Name   string `csv:"name"`
}

// rowsReader feeds already-read rows to gocsv
type rowsReader struct {
	rows [][]string
	next int
}

func (r *rowsReader) Read() ([]string, error) {
	if r.next >= len(r.rows) {
		return nil, fmt.Errorf("no more rows")
	}
	row := r.rows[r.next]
	r.next++
	return row, nil
}

func (r *rowsReader) ReadAll() ([][]string, error) {
	out := r.rows[r.next:]
	r.next = len(r.rows)
	return out, nil
}

// Load reads every source in order and concatenates them. Any bad source
// fails the whole load
func (h priceFileRepositoryHandler) Load(sources []domain.PriceSource) (*domain.PriceTable, error) {
	table := &domain.PriceTable{
		Records: []domain.Record{},
	}
	for _, source := range sources {
		records, err := loadSource(source)
		if err != nil {
			return nil, &domain.LoadError{Source: source.Path, Err: err}
		}
		table.Records = append(table.Records, records...)
	}
	return table, nil
}

func loadSource(source domain.PriceSource) ([]domain.Record, error) {
	rows, err := readRows(source.Path)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("file is empty")
	}

	header := rows[0]
	for i, column := range header {
		header[i] = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(column, "\ufeff")))
	}
	for _, required := range requiredColumns {
		if !slices.Contains(header, required) {
			return nil, fmt.Errorf("missing %q column", required)
		}
	}
	for i := 1; i < len(rows); i++ {
		for len(rows[i]) < len(header) {
			rows[i] = append(rows[i], "")
		}
	}

	parsed := []priceRow{}
	if err := gocsv.UnmarshalCSV(&rowsReader{rows: rows}, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse rows: %w", err)
	}

	out := make([]domain.Record, 0, len(parsed))
	for i, row := range parsed {
		// +2 for the header and 1-based line numbers
		line := i + 2

		date, err := util.ParseDate(row.Date)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		closePrice, err := strconv.ParseFloat(strings.TrimSpace(row.Close), 64)
		if err != nil || math.IsNaN(closePrice) || math.IsInf(closePrice, 0) {
			return nil, fmt.Errorf("line %d: invalid close %q", line, row.Close)
		}
		symbol := strings.TrimSpace(row.Name)
		if symbol == "" {
			symbol = source.Symbol
		}
		if symbol != source.Symbol {
			return nil, fmt.Errorf("line %d: row is tagged %s but the source is configured for %s", line, symbol, source.Symbol)
		}

		out = append(out, domain.Record{
			Symbol: symbol,
			Date:   date,
			Close:  closePrice,
			Open:   parseOptional(row.Open),
			High:   parseOptional(row.High),
			Low:    parseOptional(row.Low),
			Volume: int64(parseOptional(row.Volume)),
		})
	}

	return out, nil
}

// parseOptional is zero for anything that is not a finite number
func parseOptional(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func readRows(path string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return readSpreadsheetRows(path)
	default:
		return readCsvRows(path)
	}
}

func readCsvRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := gocsv.DefaultCSVReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	return rows, nil
}

// readSpreadsheetRows uses the first sheet of the workbook
func readSpreadsheetRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	return rows, nil
}
