package relochat

import (
	"math"
	"sort"
	"strings"
)

// Horizon is the look-back window used for growth queries.
type Horizon string

// Horizon values.
const (
	Horizon3y Horizon = "3y"
	Horizon5y Horizon = "5y"
)

// BaselineYear returns the baseline year for the horizon.
func (h Horizon) BaselineYear() int {
	if h == Horizon5y {
		return Baseline5y
	}
	return Baseline3y
}

// Direction selects rising or declining markets in growth queries.
type Direction string

// Direction values.
const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// BudgetFilter describes a budget query. Budget must be positive and finite.
type BudgetFilter struct {
	Budget float64

	// Optional two-letter state code. Matched case-insensitively.
	State string

	// Optional trend filter.
	Trend Trend

	// Include the national aggregate row.
	IncludeNational bool
}

// RankQuery describes a cheapest/most-expensive query.
type RankQuery struct {
	Limit           int
	State           string
	IncludeNational bool
}

// GrowthQuery describes a rent growth ranking query.
type GrowthQuery struct {
	Limit           int
	Horizon         Horizon
	Direction       Direction
	State           string
	IncludeNational bool
}

// Comparison holds the resolved records for a two-metro comparison. Either
// side is nil when no match was found for its name.
type Comparison struct {
	A *Metro
	B *Metro
}

// FilterByBudget returns metros whose current rent is at most the budget,
// sorted ascending by current rent. Rows without a current rent are skipped.
// Returns EINVALID if the budget is not a positive finite number.
func (d *Dataset) FilterByBudget(f BudgetFilter) ([]*Metro, error) {
	if f.Budget <= 0 || math.IsNaN(f.Budget) || math.IsInf(f.Budget, 0) {
		return nil, Errorf(EINVALID, "budget must be a positive amount")
	}

	var out []*Metro
	for _, m := range d.Metros {
		if !includeRow(m, f.State, f.IncludeNational) {
			continue
		}
		if m.CurrentRent == nil || *m.CurrentRent > f.Budget {
			continue
		}
		if f.Trend != "" && m.Trend != f.Trend {
			continue
		}
		out = append(out, m)
	}

	sortByCurrentRent(out, true)
	return out, nil
}

// Cheapest returns up to Limit metros with the lowest current rent.
func (d *Dataset) Cheapest(q RankQuery) []*Metro {
	return d.rankByCurrentRent(q, true)
}

// MostExpensive returns up to Limit metros with the highest current rent.
func (d *Dataset) MostExpensive(q RankQuery) []*Metro {
	return d.rankByCurrentRent(q, false)
}

func (d *Dataset) rankByCurrentRent(q RankQuery, ascending bool) []*Metro {
	var out []*Metro
	for _, m := range d.Metros {
		if !includeRow(m, q.State, q.IncludeNational) {
			continue
		}
		if m.CurrentRent == nil {
			continue
		}
		out = append(out, m)
	}
	sortByCurrentRent(out, ascending)
	return limit(out, q.Limit)
}

// RentGrowth returns up to Limit metros ranked by percentage rent change
// over the query horizon. Direction up ranks the strongest growth first,
// down the steepest decline. Returns an empty result when the dataset lacks
// the baseline year for the horizon.
func (d *Dataset) RentGrowth(q GrowthQuery) []*Metro {
	if !d.HasYear(q.Horizon.BaselineYear()) {
		return nil
	}

	var out []*Metro
	for _, m := range d.Metros {
		if !includeRow(m, q.State, q.IncludeNational) {
			continue
		}
		if growthPct(m, q.Horizon) == nil {
			continue
		}
		out = append(out, m)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := *growthPct(out[i], q.Horizon), *growthPct(out[j], q.Horizon)
		if q.Direction == DirectionDown {
			return a < b
		}
		return a > b
	})
	return limit(out, q.Limit)
}

// AvailableStates returns the state codes present in the dataset, sorted.
func (d *Dataset) AvailableStates() []string {
	out := make([]string, len(d.States))
	copy(out, d.States)
	return out
}

// CompareMetros resolves two metros by name. Each name is first matched
// case-insensitively against the full display name, then as a substring,
// taking the first match in table order. Sides are resolved independently;
// an unmatched side is nil.
//
// Substring matching is deliberately loose: very short or generic query
// strings can resolve to an unintended row, and ties beyond "first in table
// order" are not disambiguated.
func (d *Dataset) CompareMetros(nameA, nameB string) Comparison {
	return Comparison{A: d.findMetro(nameA), B: d.findMetro(nameB)}
}

func (d *Dataset) findMetro(name string) *Metro {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return nil
	}
	for _, m := range d.Metros {
		if strings.ToLower(m.Name) == needle {
			return m
		}
	}
	for _, m := range d.Metros {
		if strings.Contains(strings.ToLower(m.Name), needle) {
			return m
		}
	}
	return nil
}

// includeRow applies the national-aggregate and state filters common to all
// ranking and filtering queries.
func includeRow(m *Metro, state string, includeNational bool) bool {
	if !includeNational && m.Name == NationalAggregateName {
		return false
	}
	if state != "" && normalizeState(m.State) != normalizeState(state) {
		return false
	}
	return true
}

func growthPct(m *Metro, h Horizon) *float64 {
	if h == Horizon5y {
		return m.PctChange5y
	}
	return m.PctChange3y
}

// sortByCurrentRent sorts stably so that ties keep original table order.
func sortByCurrentRent(metros []*Metro, ascending bool) {
	sort.SliceStable(metros, func(i, j int) bool {
		a, b := *metros[i].CurrentRent, *metros[j].CurrentRent
		if ascending {
			return a < b
		}
		return a > b
	})
}

func limit(metros []*Metro, n int) []*Metro {
	if n > 0 && len(metros) > n {
		return metros[:n]
	}
	return metros
}

func normalizeState(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
