package repository

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"stockdash/internal/domain"
	"stockdash/internal/util"

	"github.com/gocarina/gocsv"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type fixtureRow struct {
	Date   string  `csv:"date"`
	Open   float64 `csv:"open"`
	High   float64 `csv:"high"`
	Low    float64 `csv:"low"`
	Close  float64 `csv:"close"`
	Volume int64   `csv:"volume"`
	Name   string  `csv:"Name"`
}

func writeFixture(t *testing.T, dir, name string, rows []fixtureRow) string {
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, gocsv.MarshalFile(&rows, f))
	return path
}

func writeRaw(t *testing.T, dir, name, body string) string {
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func Test_priceFileRepositoryHandler_Load(t *testing.T) {
	repo := NewPriceFileRepository()

	t.Run("concatenates sources in load order", func(t *testing.T) {
		dir := t.TempDir()
		aapl := writeFixture(t, dir, "AAPL_data.csv", []fixtureRow{
			{Date: "2013-02-11", Open: 1, High: 2, Low: 0.5, Close: 101, Volume: 10, Name: "AAPL"},
			{Date: "2013-02-08", Close: 100, Name: "AAPL"},
		})
		msft := writeFixture(t, dir, "MSFT_data.csv", []fixtureRow{
			{Date: "2013-02-08", Close: 27.5, Name: "MSFT"},
		})

		table, err := repo.Load([]domain.PriceSource{
			{Symbol: "AAPL", Path: aapl},
			{Symbol: "MSFT", Path: msft},
		})
		require.NoError(t, err)
		require.Equal(
			t,
			"",
			cmp.Diff(
				[]domain.Record{
					{Symbol: "AAPL", Date: util.NewDate(2013, 2, 11), Open: 1, High: 2, Low: 0.5, Close: 101, Volume: 10},
					{Symbol: "AAPL", Date: util.NewDate(2013, 2, 8), Close: 100},
					{Symbol: "MSFT", Date: util.NewDate(2013, 2, 8), Close: 27.5},
				},
				table.Records,
			),
		)
	})

	t.Run("symbol comes from the source when the name column is absent", func(t *testing.T) {
		dir := t.TempDir()
		path := writeRaw(t, dir, "goog.csv", "Date,Close\n2020-01-02,1337.02\n2020-01-02,1337.02\n")

		table, err := repo.Load([]domain.PriceSource{{Symbol: "GOOG", Path: path}})
		require.NoError(t, err)
		require.Len(t, table.Records, 2)
		for _, r := range table.Records {
			require.Equal(t, "GOOG", r.Symbol)
			require.Equal(t, 1337.02, r.Close)
		}
	})

	t.Run("missing open values are tolerated", func(t *testing.T) {
		dir := t.TempDir()
		path := writeRaw(t, dir, "amzn.csv", "date,open,high,low,close,volume,Name\n2013-02-08,,,,261.95,3879078,AMZN\n")

		table, err := repo.Load([]domain.PriceSource{{Symbol: "AMZN", Path: path}})
		require.NoError(t, err)
		require.Len(t, table.Records, 1)
		require.Equal(t, 0.0, table.Records[0].Open)
		require.Equal(t, 261.95, table.Records[0].Close)
		require.Equal(t, int64(3879078), table.Records[0].Volume)
	})

	t.Run("malformed optional columns fall back to zero", func(t *testing.T) {
		dir := t.TempDir()
		path := writeRaw(t, dir, "aapl.csv", "date,open,high,low,close,volume,Name\n2013-02-08,abc,NaN,67.5,68.56,n/a,AAPL\n")

		table, err := repo.Load([]domain.PriceSource{{Symbol: "AAPL", Path: path}})
		require.NoError(t, err)
		require.Equal(
			t,
			"",
			cmp.Diff(
				[]domain.Record{
					{Symbol: "AAPL", Date: util.NewDate(2013, 2, 8), Low: 67.5, Close: 68.56},
				},
				table.Records,
			),
		)
	})

	t.Run("reads the first sheet of a workbook", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "msft.xlsx")
		f := excelize.NewFile()
		sheet := f.GetSheetName(0)
		require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"date", "close", "Name"}))
		require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"2020-01-02", "160.62", "MSFT"}))
		require.NoError(t, f.SetSheetRow(sheet, "A3", &[]interface{}{"2020-01-03", "158.62"}))
		require.NoError(t, f.SaveAs(path))
		require.NoError(t, f.Close())

		table, err := repo.Load([]domain.PriceSource{{Symbol: "MSFT", Path: path}})
		require.NoError(t, err)
		require.Equal(
			t,
			"",
			cmp.Diff(
				[]domain.Record{
					{Symbol: "MSFT", Date: util.NewDate(2020, 1, 2), Close: 160.62},
					{Symbol: "MSFT", Date: util.NewDate(2020, 1, 3), Close: 158.62},
				},
				table.Records,
			),
		)
	})

	t.Run("one bad source fails the whole load", func(t *testing.T) {
		dir := t.TempDir()
		good := writeFixture(t, dir, "AAPL_data.csv", []fixtureRow{
			{Date: "2013-02-08", Close: 100, Name: "AAPL"},
		})

		cases := map[string]string{
			"missing file":   filepath.Join(dir, "nope.csv"),
			"no close":       writeRaw(t, dir, "no_close.csv", "date,open,Name\n2013-02-08,1,AAPL\n"),
			"no date":        writeRaw(t, dir, "no_date.csv", "close,Name\n1,AAPL\n"),
			"empty":          writeRaw(t, dir, "empty.csv", ""),
			"bad date":       writeRaw(t, dir, "bad_date.csv", "date,close\nnot-a-date,1\n"),
			"bad close":      writeRaw(t, dir, "bad_close.csv", "date,close\n2013-02-08,abc\n"),
			"empty close":    writeRaw(t, dir, "empty_close.csv", "date,close\n2013-02-08,\n"),
			"nan close":      writeRaw(t, dir, "nan_close.csv", "date,close,Name\n2020-01-02,NaN,AAPL\n"),
			"inf close":      writeRaw(t, dir, "inf_close.csv", "date,close\n2020-01-02,+Inf\n"),
			"wrong symbol":   writeRaw(t, dir, "wrong.csv", "date,close,Name\n2013-02-08,1,MSFT\n"),
			"ragged csv row": writeRaw(t, dir, "ragged.csv", "date,close\n2013-02-08,1,extra\n"),
		}
		for name, path := range cases {
			table, err := repo.Load([]domain.PriceSource{
				{Symbol: "AAPL", Path: good},
				{Symbol: "AAPL", Path: path},
			})
			require.Nil(t, table, name)

			loadErr := &domain.LoadError{}
			require.True(t, errors.As(err, &loadErr), name)
			require.Equal(t, path, loadErr.Source, name)
		}
	})
}
