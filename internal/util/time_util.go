package util

import (
	"fmt"
	"strings"
	"time"
)

const layout = "2006-01-02"

var dateLayouts = []string{
	layout,
	"2006/01/02",
	"01/02/2006",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"20060102",
}

func NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// ParseDate accepts the layouts price exports tend to use and drops
// any time component
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, l := range dateLayouts {
		t, err := time.Parse(l, s)
		if err == nil {
			return NewDate(t.Year(), int(t.Month()), t.Day()), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

func FormatDate(t time.Time) string {
	return t.Format(layout)
}
