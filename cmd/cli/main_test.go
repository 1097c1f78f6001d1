package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"stockdash/internal/domain"

	"github.com/stretchr/testify/require"
)

func writeFixtures(t *testing.T, msftRows int) string {
	dir := t.TempDir()
	for symbol, rows := range map[string]int{"AAPL": 6, "MSFT": msftRows} {
		lines := []string{"date,open,high,low,close,volume,Name"}
		for i := 0; i < rows; i++ {
			lines = append(lines, fmt.Sprintf("2018-01-%02d,1,1,1,%d,100,%s", i+1, 100+i*(i%3), symbol))
		}
		path := filepath.Join(dir, symbol+"_data.csv")
		require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
	}

	config := fmt.Sprintf(`
data:
  dir: %s
  sources:
    - symbol: AAPL
      path: AAPL_data.csv
    - symbol: MSFT
      path: MSFT_data.csv
dashboard:
  movingAverageWindows: [2, 3]
`, dir)
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(config), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	out := &bytes.Buffer{}
	root := newRootCommand(out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCommands(t *testing.T) {
	config := writeFixtures(t, 6)

	t.Run("symbols", func(t *testing.T) {
		out, err := run(t, "symbols", "--config", config)
		require.NoError(t, err)
		require.Equal(t, "AAPL\nMSFT\n", out)
	})

	t.Run("render", func(t *testing.T) {
		out, err := run(t, "render", "--config", config, "--symbol", "MSFT", "--frequency", "yearly")
		require.NoError(t, err)

		dashboard := domain.Dashboard{}
		require.NoError(t, json.Unmarshal([]byte(out), &dashboard))
		require.Equal(t, "MSFT", dashboard.Symbol)
		require.Equal(t, domain.ResampleYearly, dashboard.Frequency)
		require.Equal(t, []string{"close_2", "close_3"}, dashboard.MovingAverages.Labels)
		require.Len(t, dashboard.Resampled.Points, 1)
		require.Empty(t, dashboard.Errors)
	})

	t.Run("correlation", func(t *testing.T) {
		out, err := run(t, "correlation", "--config", config)
		require.NoError(t, err)

		chart := domain.CorrelationChart{}
		require.NoError(t, json.Unmarshal([]byte(out), &chart))
		require.Equal(t, []string{"AAPL", "MSFT"}, chart.Matrix.Symbols)
	})
}

func TestCommandErrors(t *testing.T) {
	t.Run("misaligned sources fail the correlation command", func(t *testing.T) {
		config := writeFixtures(t, 4)
		_, err := run(t, "correlation", "--config", config)
		mismatch := &domain.DimensionMismatchError{}
		require.True(t, errors.As(err, &mismatch))
	})

	t.Run("a missing source fails startup", func(t *testing.T) {
		config := writeFixtures(t, 6)
		require.NoError(t, os.Remove(filepath.Join(filepath.Dir(config), "MSFT_data.csv")))

		_, err := run(t, "symbols", "--config", config)
		loadErr := &domain.LoadError{}
		require.True(t, errors.As(err, &loadErr))
	})
}
