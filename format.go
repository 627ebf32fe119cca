package relochat

import (
	"fmt"
	"math"
	"strings"
)

// IntroMessage is shown when a chat session starts, when the user resets
// the conversation, and in reply to an empty message.
const IntroMessage = "Hi there! I'm Mr. Movin', your Apartment Relocation Assistant.\n\n" +
	"Tell me your monthly rent budget and a place you're interested in, " +
	"or ask me to compare two metros like 'Compare Seattle and Austin'."

// GreetingMessage is the reply to a bare greeting.
const GreetingMessage = "Hello! I'm here to help you explore US metros using rental data.\n\n" +
	"Tell me your rent budget, ask for the cheapest metros, or ask me to compare cities!"

// HelpExamples are the canonical example prompts shown in the fallback help
// message.
var HelpExamples = []string{
	"I have a $2,500 monthly rent budget and want an apartment in California.",
	"Show me some of the cheapest metros in the US.",
	"Compare Seattle, WA and Austin, TX.",
	"What are some up-and-coming rental markets over the last 3 years?",
	"Find metros under $1,800 per month in TX.",
}

// FormatHelp renders the canned help message used for unrecognized or
// off-topic messages.
func FormatHelp() string {
	var sb strings.Builder
	sb.WriteString("I'm here to help with apartment hunting, rent levels, and relocation decisions based on rental data.\n")
	sb.WriteString("\nHere are some example questions to try:\n")
	for _, ex := range HelpExamples {
		sb.WriteString("- " + ex + "\n")
	}
	sb.WriteString("\nIf you ask about a rent budget, a city or state, or compare metros, I'll give you data-driven recommendations.")
	return sb.String()
}

// FormatStateNotFound renders the message for a valid US state code that has
// no rows in the dataset, listing the states that do.
func FormatStateNotFound(state string, available []string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "I couldn't find any rental data for the state '%s' in this dataset.\n", state)
	if len(available) == 0 {
		sb.WriteString("\nIt looks like there are no state-level entries in the current dataset.")
		return sb.String()
	}
	sb.WriteString("\nHere are some states I do have data for:\n")
	for _, s := range available {
		sb.WriteString("- " + s + "\n")
	}
	sb.WriteString("\nYou can ask about one of these states (e.g. '$2500 in CA'), " +
		"or leave out the state entirely to see results across the whole country.")
	return sb.String()
}

// FormatComparison renders a two-metro comparison. nameA and nameB are the
// names as the user typed them, used in not-found messages.
func FormatComparison(c Comparison, nameA, nameB string) string {
	if c.A == nil && c.B == nil {
		return fmt.Sprintf("I couldn't find either '%s' or '%s' in the dataset. "+
			"Try using full metro names like 'Seattle, WA'.", nameA, nameB)
	}
	if c.A == nil || c.B == nil {
		missing := nameA
		if c.A != nil {
			missing = nameB
		}
		return fmt.Sprintf("I found one metro but not '%s'. "+
			"Try using the format 'City, ST' (e.g. 'Austin, TX').", missing)
	}

	var sb strings.Builder
	sb.WriteString("Here's a comparison based on current rents:\n\n")
	sb.WriteString("- " + compareLine(c.A) + "\n")
	sb.WriteString("- " + compareLine(c.B) + "\n\n")

	diff := floatOrZero(c.B.CurrentRent) - floatOrZero(c.A.CurrentRent)
	if diff == 0 {
		sb.WriteString("Both metros have similar rent levels in this dataset.")
		return sb.String()
	}
	more := "more"
	if diff < 0 {
		more = "less"
	}
	fmt.Fprintf(&sb, "%s is about %s %s expensive per month.",
		c.B.Name, FormatUSD(math.Abs(diff)), more)
	return sb.String()
}

func compareLine(m *Metro) string {
	var parts []string
	if m.CurrentRent != nil {
		parts = append(parts, fmt.Sprintf("~%s avg monthly rent", FormatUSD(*m.CurrentRent)))
	}
	if m.PctChange3y != nil {
		parts = append(parts, FormatPct(*m.PctChange3y)+" over 3 years")
	}
	if m.PctChange5y != nil {
		parts = append(parts, FormatPct(*m.PctChange5y)+" over 5 years")
	}
	stats := "no data"
	if len(parts) > 0 {
		stats = strings.Join(parts, "; ")
	}
	return fmt.Sprintf("%s (%s) — %s", m.Name, m.State, stats)
}

// FormatGrowthList renders a growth query result.
func FormatGrowthList(metros []*Metro, horizon Horizon, direction Direction, state string) string {
	if len(metros) == 0 {
		return "I couldn't find metros matching that growth pattern in the dataset."
	}

	desc := "up-and-coming"
	if direction == DirectionDown {
		desc = "declining"
	}
	horizonDesc := "3 years"
	if horizon == Horizon5y {
		horizonDesc = "5 years"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Here are some %s metros over the last %s:\n", desc, horizonDesc)
	for _, m := range metros {
		pct := growthPct(m, horizon)
		if m.CurrentRent != nil {
			fmt.Fprintf(&sb, "\n- %s (%s) — ~%s now, %s change",
				m.Name, m.State, FormatUSD(*m.CurrentRent), FormatPct(*pct))
		} else {
			fmt.Fprintf(&sb, "\n- %s (%s) — %s change", m.Name, m.State, FormatPct(*pct))
		}
	}
	appendStateNote(&sb, state)
	return sb.String()
}

// FormatCheapestList renders a cheapest-metros result.
func FormatCheapestList(metros []*Metro, state string) string {
	return formatRentList(metros, state,
		"Here are some of the cheapest metros by current average rent:\n")
}

// FormatMostExpensiveList renders a most-expensive-metros result.
func FormatMostExpensiveList(metros []*Metro, state string) string {
	return formatRentList(metros, state,
		"Here are some of the most expensive metros by current average rent:\n")
}

func formatRentList(metros []*Metro, state, heading string) string {
	if len(metros) == 0 {
		return "I couldn't find any metros in the dataset for that request."
	}
	var sb strings.Builder
	sb.WriteString(heading)
	for _, m := range metros {
		fmt.Fprintf(&sb, "\n- %s (%s) — ~%s per month", m.Name, m.State, FormatUSD(floatOrZero(m.CurrentRent)))
	}
	appendStateNote(&sb, state)
	return sb.String()
}

// FormatNoBudgetList renders the fallback shown when no budget could be
// parsed from a budget-style message: the cheaper metros plus a prompt.
func FormatNoBudgetList(metros []*Metro) string {
	if len(metros) == 0 {
		return "I couldn't find any metros in the dataset. " +
			"Try asking about the cheapest metros or providing a rent budget."
	}
	var sb strings.Builder
	sb.WriteString("I didn't see a clear budget, so here are some of the cheaper metros by current rent:\n")
	for _, m := range metros {
		fmt.Fprintf(&sb, "\n- %s (%s) — ~%s per month", m.Name, m.State, FormatUSD(floatOrZero(m.CurrentRent)))
	}
	sb.WriteString("\n\nTell me your rent budget (e.g. '$2500 in CA') and I'll filter results further.")
	return sb.String()
}

// FormatBudgetList renders a budget filter result, including each metro's
// trend label.
func FormatBudgetList(metros []*Metro, budget float64, state string) string {
	if len(metros) == 0 {
		return fmt.Sprintf("I couldn't find metros with average rent under about %s. "+
			"Try increasing your budget or omitting the state filter.", FormatUSD(budget))
	}

	var sb strings.Builder
	if state != "" {
		fmt.Fprintf(&sb, "Here are metros in %s with average monthly rent roughly under your budget of ~%s:\n",
			state, FormatUSD(budget))
	} else {
		fmt.Fprintf(&sb, "Here are metros with average monthly rent roughly under your budget of ~%s:\n",
			FormatUSD(budget))
	}
	for _, m := range metros {
		fmt.Fprintf(&sb, "\n- %s (%s) — ~%s per month, trend: %s",
			m.Name, m.State, FormatUSD(floatOrZero(m.CurrentRent)), m.Trend)
	}
	sb.WriteString("\n\nYou can also ask about trends or compare specific metros.")
	return sb.String()
}

func appendStateNote(sb *strings.Builder, state string) {
	if state != "" {
		fmt.Fprintf(sb, "\n\n(Filtered to %s.)", state)
	}
}

// FormatUSD renders a dollar amount with thousands separators and no
// decimal places, e.g. 2512.4 → "$2,512".
func FormatUSD(v float64) string {
	negative := v < 0
	n := int64(math.Round(math.Abs(v)))

	s := fmt.Sprintf("%d", n)
	if len(s) > 3 {
		var parts []string
		for len(s) > 3 {
			parts = append([]string{s[len(s)-3:]}, parts...)
			s = s[:len(s)-3]
		}
		s = strings.Join(append([]string{s}, parts...), ",")
	}
	if negative {
		return "-$" + s
	}
	return "$" + s
}

// FormatPct renders a percentage with one decimal place and an explicit
// sign, e.g. 12.34 → "+12.3%".
func FormatPct(v float64) string {
	return fmt.Sprintf("%+.1f%%", v)
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
