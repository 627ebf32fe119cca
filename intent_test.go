package relochat_test

import (
	"testing"

	"github.com/mrmovin/relochat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBudget(t *testing.T) {
	t.Parallel()

	t.Run("strips thousands separators and currency symbols", func(t *testing.T) {
		t.Parallel()

		got := relochat.ParseBudget("I have a $2,500 budget")

		require.NotNil(t, got)
		assert.InDelta(t, 2500, *got, 0.001)
	})

	t.Run("picks the first numeral in the plausible rent range", func(t *testing.T) {
		t.Parallel()

		got := relochat.ParseBudget("under $1,800 per month")

		require.NotNil(t, got)
		assert.InDelta(t, 1800, *got, 0.001)
	})

	t.Run("skips implausible numerals when a plausible one follows", func(t *testing.T) {
		t.Parallel()

		got := relochat.ParseBudget("my 2 roommates and I can pay 2100")

		require.NotNil(t, got)
		assert.InDelta(t, 2100, *got, 0.001)
	})

	t.Run("falls back to the first numeral when none are plausible", func(t *testing.T) {
		t.Parallel()

		got := relochat.ParseBudget("we are 2 people moving with 3 cats")

		require.NotNil(t, got)
		assert.InDelta(t, 2, *got, 0.001)
	})

	t.Run("no digits means no budget", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, relochat.ParseBudget("somewhere cheap please"))
	})

	t.Run("handles decimals", func(t *testing.T) {
		t.Parallel()

		got := relochat.ParseBudget("around $1850.50")

		require.NotNil(t, got)
		assert.InDelta(t, 1850.5, *got, 0.001)
	})
}

func TestParseState(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"explicit in pattern", "apartment in CA", "CA"},
		{"explicit in pattern lowercase", "find me a place in tx", "TX"},
		{"lowercase me is not Maine", "show me options", ""},
		{"uppercase token after comma", "Portland, ME", "ME"},
		{"uppercase token mid-sentence", "somewhere cheap in the WA area", "WA"},
		{"invalid code is ignored", "in ZZ please", ""},
		{"no state", "cheapest metros", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, relochat.ParseState(tt.text))
		})
	}
}

func TestParseComparePair(t *testing.T) {
	t.Parallel()

	t.Run("parses compare X and Y", func(t *testing.T) {
		t.Parallel()

		a, b, ok := relochat.ParseComparePair("Compare Seattle, WA and Austin, TX.")

		require.True(t, ok)
		assert.Equal(t, "Seattle, WA", a)
		assert.Equal(t, "Austin, TX", b)
	})

	t.Run("takes the last two and-segments", func(t *testing.T) {
		t.Parallel()

		a, b, ok := relochat.ParseComparePair("my partner and I want to compare Dallas and Spokane")

		require.True(t, ok)
		assert.Equal(t, "I want to compare Dallas", a)
		assert.Equal(t, "Spokane", b)
	})

	t.Run("requires the word compare", func(t *testing.T) {
		t.Parallel()

		_, _, ok := relochat.ParseComparePair("Seattle and Austin")

		assert.False(t, ok)
	})

	t.Run("requires two segments", func(t *testing.T) {
		t.Parallel()

		_, _, ok := relochat.ParseComparePair("compare Seattle with Austin")

		assert.False(t, ok)
	})

	t.Run("fails when a side is empty after trimming", func(t *testing.T) {
		t.Parallel()

		_, _, ok := relochat.ParseComparePair("compare and ,.")

		assert.False(t, ok)
	})
}

func TestParseGrowthIntent(t *testing.T) {
	t.Parallel()

	t.Run("up keywords with default horizon", func(t *testing.T) {
		t.Parallel()

		horizon, direction, ok := relochat.ParseGrowthIntent("what are some up-and-coming rental markets?")

		require.True(t, ok)
		assert.Equal(t, relochat.Horizon3y, horizon)
		assert.Equal(t, relochat.DirectionUp, direction)
	})

	t.Run("down keywords", func(t *testing.T) {
		t.Parallel()

		_, direction, ok := relochat.ParseGrowthIntent("which rental markets are cooling off?")

		require.True(t, ok)
		assert.Equal(t, relochat.DirectionDown, direction)
	})

	t.Run("explicit five year phrase selects the long horizon", func(t *testing.T) {
		t.Parallel()

		horizon, _, ok := relochat.ParseGrowthIntent("rising rents over the last 5 years")

		require.True(t, ok)
		assert.Equal(t, relochat.Horizon5y, horizon)
	})

	t.Run("no direction keywords means no match", func(t *testing.T) {
		t.Parallel()

		_, _, ok := relochat.ParseGrowthIntent("rents over the last 5 years")

		assert.False(t, ok)
	})
}

func TestParseMessage(t *testing.T) {
	t.Parallel()

	t.Run("empty input is welcome", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, relochat.IntentWelcome, relochat.ParseMessage("   ").Kind)
	})

	t.Run("greeting", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, relochat.IntentGreeting, relochat.ParseMessage("hey there!").Kind)
	})

	t.Run("garbled input is off-topic", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, relochat.IntentOffTopic, relochat.ParseMessage("asdkfj").Kind)
	})

	t.Run("compare wins over budget", func(t *testing.T) {
		t.Parallel()

		in := relochat.ParseMessage("Compare Seattle, WA and Austin, TX under $2000")

		assert.Equal(t, relochat.IntentCompare, in.Kind)
		assert.Equal(t, "Seattle, WA", in.CompareA)
	})

	t.Run("growth wins over cheapest", func(t *testing.T) {
		t.Parallel()

		in := relochat.ParseMessage("cheapest up-and-coming rental markets")

		assert.Equal(t, relochat.IntentGrowth, in.Kind)
		assert.Equal(t, relochat.DirectionUp, in.Direction)
	})

	t.Run("cheapest wins over most expensive order", func(t *testing.T) {
		t.Parallel()

		in := relochat.ParseMessage("show some of the cheapest metros for rent")

		assert.Equal(t, relochat.IntentCheapest, in.Kind)
	})

	t.Run("most expensive", func(t *testing.T) {
		t.Parallel()

		in := relochat.ParseMessage("what are the priciest rental metros?")

		assert.Equal(t, relochat.IntentMostExpensive, in.Kind)
	})

	t.Run("budget is the default data intent", func(t *testing.T) {
		t.Parallel()

		in := relochat.ParseMessage("I have a $2,500 rent budget in TX")

		assert.Equal(t, relochat.IntentBudget, in.Kind)
		require.NotNil(t, in.Budget)
		assert.InDelta(t, 2500, *in.Budget, 0.001)
		assert.Equal(t, "TX", in.State)
	})

	t.Run("budget intent without numerals has nil budget", func(t *testing.T) {
		t.Parallel()

		in := relochat.ParseMessage("looking for a cheap apartment")

		assert.Equal(t, relochat.IntentBudget, in.Kind)
		assert.Nil(t, in.Budget)
	})

	t.Run("state is attached to data intents", func(t *testing.T) {
		t.Parallel()

		in := relochat.ParseMessage("cheapest metros in WA")

		assert.Equal(t, relochat.IntentCheapest, in.Kind)
		assert.Equal(t, "WA", in.State)
	})
}

func TestIsGreeting(t *testing.T) {
	t.Parallel()

	assert.True(t, relochat.IsGreeting("hi"))
	assert.True(t, relochat.IsGreeting("Good morning"))
	assert.True(t, relochat.IsGreeting("hey, anyone there?"))
	assert.False(t, relochat.IsGreeting("high rents in NY"))
	assert.False(t, relochat.IsGreeting("cheapest metros"))
}

func TestIsRelocationRelated(t *testing.T) {
	t.Parallel()

	assert.True(t, relochat.IsRelocationRelated("what's the rent like in Austin?"))
	assert.True(t, relochat.IsRelocationRelated("thinking about moving somewhere cheaper"))
	assert.False(t, relochat.IsRelocationRelated("what's the weather today?"))
}
