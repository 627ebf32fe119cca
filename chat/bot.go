// Package chat routes free-text messages through the intent parser, query
// engine, and response composer.
package chat

import (
	"context"
	"strings"

	"github.com/mrmovin/relochat"
)

// DefaultLimit is the number of rows shown in list answers.
const DefaultLimit = 10

// Ensure Bot implements relochat.Responder at compile time.
var _ relochat.Responder = (*Bot)(nil)

// Bot answers a single message at a time. Each message is handled
// independently; no dialogue state is kept between calls.
type Bot struct {
	// Loader provides the dataset. Required.
	Loader relochat.DatasetLoader

	// Polisher optionally rewrites templated answers. Any polishing
	// failure falls back to the templated text verbatim.
	Polisher relochat.Polisher

	// Limit caps list answers. Zero means DefaultLimit.
	Limit int
}

// Respond routes a message to the first matching intent and renders the
// answer. It returns an error only when the dataset itself is unavailable;
// every parse failure resolves to a fallback answer instead.
func (b *Bot) Respond(ctx context.Context, message string) (string, error) {
	intent := relochat.ParseMessage(message)

	var draft string
	switch intent.Kind {
	case relochat.IntentWelcome:
		draft = relochat.IntroMessage
	case relochat.IntentGreeting:
		draft = relochat.GreetingMessage
	case relochat.IntentOffTopic:
		draft = relochat.FormatHelp()
	default:
		ds, err := b.Loader.Load(ctx)
		if err != nil {
			return "", err
		}
		draft = b.answer(ds, intent)
	}

	return b.polish(ctx, message, draft), nil
}

// answer executes the data query for an already parsed intent.
func (b *Bot) answer(ds *relochat.Dataset, intent relochat.Intent) string {
	// A recognized state code that has no rows short-circuits every query.
	if intent.State != "" && len(ds.States) > 0 && !ds.HasState(intent.State) {
		return relochat.FormatStateNotFound(intent.State, ds.AvailableStates())
	}

	switch intent.Kind {
	case relochat.IntentCompare:
		c := ds.CompareMetros(intent.CompareA, intent.CompareB)
		return relochat.FormatComparison(c, intent.CompareA, intent.CompareB)

	case relochat.IntentGrowth:
		metros := ds.RentGrowth(relochat.GrowthQuery{
			Limit:     b.limit(),
			Horizon:   intent.Horizon,
			Direction: intent.Direction,
			State:     intent.State,
		})
		return relochat.FormatGrowthList(metros, intent.Horizon, intent.Direction, intent.State)

	case relochat.IntentCheapest:
		metros := ds.Cheapest(relochat.RankQuery{Limit: b.limit(), State: intent.State})
		return relochat.FormatCheapestList(metros, intent.State)

	case relochat.IntentMostExpensive:
		metros := ds.MostExpensive(relochat.RankQuery{Limit: b.limit(), State: intent.State})
		return relochat.FormatMostExpensiveList(metros, intent.State)

	default:
		return b.answerBudget(ds, intent)
	}
}

func (b *Bot) answerBudget(ds *relochat.Dataset, intent relochat.Intent) string {
	if intent.Budget == nil {
		metros := ds.Cheapest(relochat.RankQuery{Limit: b.limit(), State: intent.State})
		return relochat.FormatNoBudgetList(metros)
	}

	metros, err := ds.FilterByBudget(relochat.BudgetFilter{
		Budget: *intent.Budget,
		State:  intent.State,
	})
	if err != nil {
		// Implausible numerals (e.g. a bare "0") degrade to the no-budget
		// fallback rather than an error the user can't act on.
		fallback := ds.Cheapest(relochat.RankQuery{Limit: b.limit(), State: intent.State})
		return relochat.FormatNoBudgetList(fallback)
	}

	if n := b.limit(); len(metros) > n {
		metros = metros[:n]
	}
	return relochat.FormatBudgetList(metros, *intent.Budget, intent.State)
}

// polish applies the optional response polisher. Failures and empty
// rewrites fall back to the draft.
func (b *Bot) polish(ctx context.Context, message, draft string) string {
	if b.Polisher == nil {
		return draft
	}
	polished, err := b.Polisher.Polish(ctx, message, draft)
	if err != nil || strings.TrimSpace(polished) == "" {
		return draft
	}
	return polished
}

func (b *Bot) limit() int {
	if b.Limit > 0 {
		return b.Limit
	}
	return DefaultLimit
}
