// Package history turns raw quote history into chart-ready series.
package history

import (
	"cmp"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/guttosm/conversor/internal/domain/models"
	"github.com/guttosm/conversor/internal/logger"
)

// timestampParser converts a raw timestamp into epoch milliseconds.
// ok=false means the timestamp is unusable and the point is dropped.
type timestampParser func(raw string, loc *time.Location) (ms int64, ok bool)

// policy groups the per-period parsing and windowing rules.
type policy struct {
	parse  timestampParser
	window time.Duration // zero keeps every point
}

var policies = map[models.Period]policy{
	models.Period1D: {parse: parseCalendar, window: 24 * time.Hour},
	models.Period5D: {parse: parseEpochSeconds},
	models.Period1M: {parse: parseEpochSeconds},
}

// fallbackPolicy applies to any period outside the table.
var fallbackPolicy = policy{parse: parseEpochSeconds}

// calendarLayouts are tried in order for 1D timestamps.
var calendarLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Normalizer normalizes raw history using an injected clock and time zone.
type Normalizer struct {
	Now      func() time.Time
	Location *time.Location
}

// NewNormalizer returns a Normalizer reading the wall clock in loc.
// A nil loc means time.Local.
func NewNormalizer(loc *time.Location) *Normalizer {
	if loc == nil {
		loc = time.Local
	}
	return &Normalizer{Now: time.Now, Location: loc}
}

// Normalize parses, windows and sorts raw for the given period.
func (n *Normalizer) Normalize(raw []models.RawHistoryPoint, period models.Period) []models.NormalizedPoint {
	now := time.Now
	if n.Now != nil {
		now = n.Now
	}
	out, dropped := normalize(raw, period, now(), n.Location)
	if dropped > 0 {
		logger.L().Debug().
			Str("period", period.String()).
			Int("raw", len(raw)).
			Int("kept", len(out)).
			Int("dropped", dropped).
			Msg("history normalized")
	}
	return out
}

// NormalizeAt is the pure form of Normalize: now is the reference instant
// for the 1D window and loc the zone used to read 1D calendar timestamps.
//
// The result is sorted ascending by timestamp with equal timestamps kept
// in input order. Values that fail to parse become NaN and are kept;
// timestamps that fail to parse drop the point. It never fails.
func NormalizeAt(raw []models.RawHistoryPoint, period models.Period, now time.Time, loc *time.Location) []models.NormalizedPoint {
	out, _ := normalize(raw, period, now, loc)
	return out
}

func normalize(raw []models.RawHistoryPoint, period models.Period, now time.Time, loc *time.Location) ([]models.NormalizedPoint, int) {
	if loc == nil {
		loc = time.Local
	}
	pol, ok := policies[period]
	if !ok {
		pol = fallbackPolicy
	}

	var lower, upper int64
	if pol.window > 0 {
		upper = now.UnixMilli()
		lower = now.Add(-pol.window).UnixMilli()
	}

	out := make([]models.NormalizedPoint, 0, len(raw))
	dropped := 0
	for _, p := range raw {
		ts, ok := pol.parse(p.Timestamp, loc)
		if !ok {
			dropped++
			continue
		}
		if pol.window > 0 && (ts < lower || ts > upper) {
			dropped++
			continue
		}
		out = append(out, models.NormalizedPoint{Timestamp: ts, Valor: parseValue(p.Valor)})
	}

	slices.SortStableFunc(out, func(a, b models.NormalizedPoint) int {
		return cmp.Compare(a.Timestamp, b.Timestamp)
	})
	return out, dropped
}

// parseCalendar reads a local date-time; RFC 3339 input keeps its own offset.
func parseCalendar(raw string, loc *time.Location) (int64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UnixMilli(), true
	}
	for _, layout := range calendarLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t.UnixMilli(), true
		}
	}
	return 0, false
}

// Seconds beyond these bounds overflow int64 milliseconds.
const (
	maxEpochSeconds = math.MaxInt64 / 1000
	minEpochSeconds = math.MinInt64 / 1000
)

// parseEpochSeconds reads decimal Unix seconds. A fractional part is
// truncated; values whose milliseconds overflow int64 are rejected.
func parseEpochSeconds(raw string, _ *time.Location) (int64, bool) {
	s := strings.TrimSpace(raw)
	if sec, err := strconv.ParseInt(s, 10, 64); err == nil {
		if sec > maxEpochSeconds || sec < minEpochSeconds {
			return 0, false
		}
		return sec * 1000, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	f = math.Trunc(f)
	if f >= maxEpochSeconds || f <= minEpochSeconds {
		return 0, false
	}
	return int64(f) * 1000, true
}

// parseValue returns NaN for anything that is not a base-10 float.
func parseValue(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
