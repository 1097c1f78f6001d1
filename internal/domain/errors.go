package domain

import (
	"fmt"
	"sort"
	"strings"
)

// LoadError aborts startup. A single bad source fails the whole load
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

type SymbolNotFoundError struct {
	Symbol string
}

func (e *SymbolNotFoundError) Error() string {
	return fmt.Sprintf("symbol %q not found", e.Symbol)
}

type DimensionMismatchError struct {
	Lengths map[string]int
}

func (e *DimensionMismatchError) Error() string {
	parts := []string{}
	for symbol, l := range e.Lengths {
		parts = append(parts, fmt.Sprintf("%s=%d", symbol, l))
	}
	sort.Strings(parts)
	return fmt.Sprintf("closing price columns have different lengths: %s", strings.Join(parts, ", "))
}

type InvalidFrequencyError struct {
	Value string
}

func (e *InvalidFrequencyError) Error() string {
	return fmt.Sprintf("invalid resample frequency %q: must be one of Monthly, Quarterly, Yearly", e.Value)
}
