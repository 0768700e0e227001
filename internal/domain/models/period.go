package models

import (
	"errors"
	"fmt"
	"strings"
)

// Period is the time range requested for historical quotes.
//
// Values:
//   - Period1D: last day, hourly points.
//   - Period5D: last five days, daily points.
//   - Period1M: last thirty days, daily points.
type Period string

const (
	Period1D Period = "1D"
	Period5D Period = "5D"
	Period1M Period = "1M"
)

// DefaultPeriod is used when the client does not send "periodo".
const DefaultPeriod = Period1D

// ErrInvalidPeriod is returned by ParsePeriod for values outside {1D, 5D, 1M}.
var ErrInvalidPeriod = errors.New("invalid period")

// periodDays maps each period to the number of days requested upstream.
var periodDays = map[Period]int{
	Period1D: 1,
	Period5D: 5,
	Period1M: 30,
}

// Periods lists every supported period in display order.
func Periods() []Period {
	return []Period{Period1D, Period5D, Period1M}
}

// ParsePeriod converts a query value (case-insensitive) into a Period.
// An empty string yields DefaultPeriod.
func ParsePeriod(s string) (Period, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return DefaultPeriod, nil
	}
	p := Period(s)
	if _, ok := periodDays[p]; !ok {
		return "", fmt.Errorf("%w: %q (expected one of 1D, 5D, 1M)", ErrInvalidPeriod, s)
	}
	return p, nil
}

// Valid reports whether p is one of the supported periods.
func (p Period) Valid() bool {
	_, ok := periodDays[p]
	return ok
}

// Days returns how many days of history the period covers.
func (p Period) Days() int {
	return periodDays[p]
}

func (p Period) String() string { return string(p) }
