package relochat

import "context"

// NationalAggregateName is the display name of the synthetic country-wide
// aggregate row. Ranking and filtering queries exclude it by default.
const NationalAggregateName = "United States"

// Baseline years for growth calculations. The dataset's most recent annual
// averages are for 2025, so the 3-year window starts at 2022 and the 5-year
// window at 2021.
const (
	Baseline3y = 2022
	Baseline5y = 2021
)

// Trend is a coarse categorical bucket derived from 3-year percentage change.
type Trend string

// Trend values.
const (
	TrendRising  Trend = "rising"
	TrendFlat    Trend = "flat"
	TrendFalling Trend = "falling"
	TrendUnknown Trend = "unknown"
)

// TrendForPct derives a trend label from a 3-year percentage change.
// Boundaries are exclusive: exactly 10 or -5 is flat.
func TrendForPct(pct *float64) Trend {
	if pct == nil {
		return TrendUnknown
	}
	if *pct > 10 {
		return TrendRising
	}
	if *pct < -5 {
		return TrendFalling
	}
	return TrendFlat
}

// Metro represents one metro area row in the rent dataset. Numeric fields
// are pointers so that missing values stay distinguishable from zero.
type Metro struct {
	// Display name, e.g. "Seattle, WA". Uniqueness is not guaranteed.
	Name string `json:"name"`

	// Two-letter state code, or empty for aggregate rows.
	State string `json:"state"`

	// Annual average rent keyed by year. Missing values are absent or nil.
	AvgRent map[int]*float64 `json:"avgRent"`

	// Most recent annual average available for this metro.
	CurrentRent *float64 `json:"currentRent"`

	// Derived by AugmentGrowth.
	Change3y    *float64 `json:"change3y"`
	Change5y    *float64 `json:"change5y"`
	PctChange3y *float64 `json:"pctChange3y"`
	PctChange5y *float64 `json:"pctChange5y"`
	Trend       Trend    `json:"trend"`
}

// AvgRentFor returns the annual average rent for a year, or nil if absent.
func (m *Metro) AvgRentFor(year int) *float64 {
	if m.AvgRent == nil {
		return nil
	}
	return m.AvgRent[year]
}

// Dataset is the full ordered collection of metro records plus derived
// metadata. It is built once by a DatasetLoader and never mutated afterward;
// concurrent readers share the same snapshot.
type Dataset struct {
	// Metros in original table order.
	Metros []*Metro

	// Distinct non-empty uppercased state codes, sorted lexicographically.
	States []string

	// Years for which an annual average column exists in the source table.
	Years []int
}

// HasYear reports whether an annual average column exists for the year.
func (d *Dataset) HasYear(year int) bool {
	for _, y := range d.Years {
		if y == year {
			return true
		}
	}
	return false
}

// HasState reports whether a state code is present in the dataset.
// Comparison is case-insensitive.
func (d *Dataset) HasState(code string) bool {
	code = normalizeState(code)
	for _, s := range d.States {
		if s == code {
			return true
		}
	}
	return false
}

// DatasetLoader loads the rent dataset. Implementations memoize the result:
// the dataset is built once, lazily, on first call, and subsequent calls
// return the same instance. Load errors are surfaced on first access and are
// not retried automatically.
type DatasetLoader interface {
	Load(ctx context.Context) (*Dataset, error)
}

// Polisher optionally rewrites a templated draft answer in a more
// conversational voice. Implementations must keep facts and numbers intact.
// Polishing is best-effort: callers fall back to the draft on any error.
type Polisher interface {
	Polish(ctx context.Context, message, draft string) (string, error)
}

// Responder answers a single free-text message with plain text. Each message
// is answered independently; no dialogue state is kept.
type Responder interface {
	Respond(ctx context.Context, message string) (string, error)
}
