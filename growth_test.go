package relochat_test

import (
	"testing"

	"github.com/mrmovin/relochat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAugmentGrowth(t *testing.T) {
	t.Parallel()

	t.Run("computes three and five year change", func(t *testing.T) {
		t.Parallel()

		in := []*relochat.Metro{{
			Name:  "Austin, TX",
			State: "TX",
			AvgRent: map[int]*float64{
				2021: fp(1000),
				2022: fp(2000),
			},
			CurrentRent: fp(2200),
		}}

		out := relochat.AugmentGrowth(in)

		require.Len(t, out, 1)
		m := out[0]
		require.NotNil(t, m.Change3y)
		require.NotNil(t, m.PctChange3y)
		assert.InDelta(t, 200, *m.Change3y, 0.001)
		assert.InDelta(t, 10, *m.PctChange3y, 0.001)
		require.NotNil(t, m.PctChange5y)
		assert.InDelta(t, 1200, *m.Change5y, 0.001)
		assert.InDelta(t, 120, *m.PctChange5y, 0.001)
		assert.Equal(t, relochat.TrendFlat, m.Trend)
	})

	t.Run("missing baseline leaves derived fields nil", func(t *testing.T) {
		t.Parallel()

		in := []*relochat.Metro{{
			Name:        "Pittsburgh, PA",
			State:       "PA",
			AvgRent:     map[int]*float64{2021: fp(1200)},
			CurrentRent: fp(1400),
		}}

		out := relochat.AugmentGrowth(in)

		m := out[0]
		assert.Nil(t, m.Change3y)
		assert.Nil(t, m.PctChange3y)
		assert.NotNil(t, m.PctChange5y)
		assert.Equal(t, relochat.TrendUnknown, m.Trend)
	})

	t.Run("zero baseline leaves percentage nil", func(t *testing.T) {
		t.Parallel()

		in := []*relochat.Metro{{
			Name:        "Nowhere, KS",
			State:       "KS",
			AvgRent:     map[int]*float64{2022: fp(0)},
			CurrentRent: fp(900),
		}}

		out := relochat.AugmentGrowth(in)

		assert.Nil(t, out[0].PctChange3y)
		assert.Equal(t, relochat.TrendUnknown, out[0].Trend)
	})

	t.Run("missing current rent leaves derived fields nil", func(t *testing.T) {
		t.Parallel()

		in := []*relochat.Metro{{
			Name:    "Somewhere, OR",
			State:   "OR",
			AvgRent: map[int]*float64{2022: fp(1500)},
		}}

		out := relochat.AugmentGrowth(in)

		assert.Nil(t, out[0].PctChange3y)
		assert.Nil(t, out[0].Change3y)
	})

	t.Run("never mutates input", func(t *testing.T) {
		t.Parallel()

		in := []*relochat.Metro{{
			Name:        "Austin, TX",
			State:       "TX",
			AvgRent:     map[int]*float64{2022: fp(2000)},
			CurrentRent: fp(2400),
		}}

		out := relochat.AugmentGrowth(in)

		assert.Nil(t, in[0].PctChange3y)
		assert.Empty(t, in[0].Trend)
		assert.NotSame(t, in[0], out[0])

		// Mutating the copy must not reach the original.
		*out[0].CurrentRent = 1
		assert.InDelta(t, 2400, *in[0].CurrentRent, 0.001)
	})
}
