package relochat

// AugmentGrowth returns a new slice of metros with derived growth fields
// populated: 3-year change from the 2022 baseline, 5-year change from the
// 2021 baseline, and the trend label. The input is never mutated.
//
// A derived field is left nil when its baseline or the current rent is
// missing, or when the baseline is zero (division would be meaningless).
func AugmentGrowth(metros []*Metro) []*Metro {
	out := make([]*Metro, 0, len(metros))
	for _, m := range metros {
		c := cloneMetro(m)
		c.Change3y, c.PctChange3y = growthFrom(c.AvgRentFor(Baseline3y), c.CurrentRent)
		c.Change5y, c.PctChange5y = growthFrom(c.AvgRentFor(Baseline5y), c.CurrentRent)
		c.Trend = TrendForPct(c.PctChange3y)
		out = append(out, c)
	}
	return out
}

// growthFrom computes absolute and percentage change between a baseline rent
// and the current rent. Both are nil when either input is nil or the
// baseline is zero.
func growthFrom(baseline, current *float64) (change, pct *float64) {
	if baseline == nil || current == nil || *baseline == 0 {
		return nil, nil
	}
	c := *current - *baseline
	p := c / *baseline * 100
	return &c, &p
}

func cloneMetro(m *Metro) *Metro {
	c := *m
	if m.AvgRent != nil {
		c.AvgRent = make(map[int]*float64, len(m.AvgRent))
		for y, v := range m.AvgRent {
			c.AvgRent[y] = copyFloat(v)
		}
	}
	c.CurrentRent = copyFloat(m.CurrentRent)
	c.Change3y = copyFloat(m.Change3y)
	c.Change5y = copyFloat(m.Change5y)
	c.PctChange3y = copyFloat(m.PctChange3y)
	c.PctChange5y = copyFloat(m.PctChange5y)
	return &c
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
