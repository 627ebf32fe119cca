package relochat

import (
	"regexp"
	"strconv"
	"strings"
)

// IntentKind tags the structured request inferred from a free-text message.
type IntentKind string

// IntentKind values, in resolution order.
const (
	IntentWelcome       IntentKind = "welcome"
	IntentGreeting      IntentKind = "greeting"
	IntentOffTopic      IntentKind = "off_topic"
	IntentCompare       IntentKind = "compare"
	IntentGrowth        IntentKind = "growth"
	IntentCheapest      IntentKind = "cheapest"
	IntentMostExpensive IntentKind = "most_expensive"
	IntentBudget        IntentKind = "budget"
)

// Intent is the structured request extracted from a user message.
type Intent struct {
	Kind IntentKind

	// Monthly budget in dollars. Nil when no numeral was found. Only set
	// for IntentBudget.
	Budget *float64

	// Two-letter state code, empty when none was recognized. Set for all
	// data intents.
	State string

	// Comparison pair. Only set for IntentCompare.
	CompareA string
	CompareB string

	// Growth parameters. Only set for IntentGrowth.
	Horizon   Horizon
	Direction Direction
}

// intentRule pairs a name with a matcher. Rules are evaluated in order and
// the first match wins; the budget rule at the end always matches.
type intentRule struct {
	name  string
	match func(text string) (Intent, bool)
}

var intentRules = []intentRule{
	{"welcome", matchWelcome},
	{"greeting", matchGreeting},
	{"off-topic", matchOffTopic},
	{"compare", matchCompare},
	{"growth", matchGrowth},
	{"cheapest", matchCheapest},
	{"most-expensive", matchMostExpensive},
	{"budget", matchBudget},
}

// ParseMessage extracts a structured intent from a free-text message by
// evaluating a fixed, ordered list of heuristic rules. It never fails:
// malformed input resolves to the default budget intent with no budget set.
// A recognized state code is attached to every data intent.
func ParseMessage(text string) Intent {
	text = strings.TrimSpace(text)

	var intent Intent
	for _, rule := range intentRules {
		if in, ok := rule.match(text); ok {
			intent = in
			break
		}
	}

	switch intent.Kind {
	case IntentCompare, IntentGrowth, IntentCheapest, IntentMostExpensive, IntentBudget:
		intent.State = ParseState(text)
	}
	return intent
}

func matchWelcome(text string) (Intent, bool) {
	if text == "" {
		return Intent{Kind: IntentWelcome}, true
	}
	return Intent{}, false
}

func matchGreeting(text string) (Intent, bool) {
	if IsGreeting(text) {
		return Intent{Kind: IntentGreeting}, true
	}
	return Intent{}, false
}

func matchOffTopic(text string) (Intent, bool) {
	if !IsRelocationRelated(text) {
		return Intent{Kind: IntentOffTopic}, true
	}
	return Intent{}, false
}

func matchCompare(text string) (Intent, bool) {
	a, b, ok := ParseComparePair(text)
	if !ok {
		return Intent{}, false
	}
	return Intent{Kind: IntentCompare, CompareA: a, CompareB: b}, true
}

func matchGrowth(text string) (Intent, bool) {
	horizon, direction, ok := ParseGrowthIntent(text)
	if !ok {
		return Intent{}, false
	}
	return Intent{Kind: IntentGrowth, Horizon: horizon, Direction: direction}, true
}

func matchCheapest(text string) (Intent, bool) {
	if IsCheapestRequest(text) {
		return Intent{Kind: IntentCheapest}, true
	}
	return Intent{}, false
}

func matchMostExpensive(text string) (Intent, bool) {
	if IsMostExpensiveRequest(text) {
		return Intent{Kind: IntentMostExpensive}, true
	}
	return Intent{}, false
}

func matchBudget(text string) (Intent, bool) {
	return Intent{Kind: IntentBudget, Budget: ParseBudget(text)}, true
}

// Plausible monthly rent range used to pick among multiple numerals.
const (
	minPlausibleBudget = 300
	maxPlausibleBudget = 20000
)

var numberRe = regexp.MustCompile(`\d+\.?\d*`)

// ParseBudget extracts a numeric monthly budget from text. Thousands
// separators and currency symbols are stripped first. The first numeral in
// the plausible monthly-rent range wins; if none fall in range, the first
// numeral found is returned. Nil when the text contains no numerals.
func ParseBudget(text string) *float64 {
	cleaned := strings.ReplaceAll(text, ",", "")
	cleaned = strings.ReplaceAll(cleaned, "$", " ")

	nums := numberRe.FindAllString(cleaned, -1)
	if len(nums) == 0 {
		return nil
	}
	for _, n := range nums {
		v, err := strconv.ParseFloat(n, 64)
		if err != nil {
			continue
		}
		if v >= minPlausibleBudget && v <= maxPlausibleBudget {
			return &v
		}
	}
	v, err := strconv.ParseFloat(nums[0], 64)
	if err != nil {
		return nil
	}
	return &v
}

var (
	inStateRe    = regexp.MustCompile(`(?i)\bin\s+([A-Za-z]{2})\b`)
	stateTokenRe = regexp.MustCompile(`\b[A-Za-z]{2}\b`)
)

// ParseState pulls a two-letter US state code from text.
//
// Two tiers, checked in order:
//  1. An explicit "in XX" pattern, case-insensitive ("in CA", "in tx").
//  2. A bare two-letter token that is uppercase in the original text,
//     e.g. the "ME" in "Portland, ME".
//
// Tier order matters for precision: requiring uppercase in tier 2 keeps
// lowercase common words like the "me" in "show me" from being read as
// Maine. Both tiers validate against the fixed 50-state code set. Empty
// string when no confirmed match.
func ParseState(text string) string {
	if m := inStateRe.FindStringSubmatch(text); m != nil {
		code := strings.ToUpper(m[1])
		if usStates[code] {
			return code
		}
	}

	for _, token := range stateTokenRe.FindAllString(text, -1) {
		if token != strings.ToUpper(token) {
			continue
		}
		if usStates[token] {
			return token
		}
	}
	return ""
}

var (
	andSplitRe       = regexp.MustCompile(`(?i)\band\b`)
	comparePrefixRe  = regexp.MustCompile(`(?i)^compare\b`)
	compareTrimChars = ",. \t"
)

// ParseComparePair parses "compare X and Y" style requests. It triggers
// only when the word "compare" appears, splits on the word "and", and takes
// the last two segments as the pair (a leading "compare" token is stripped
// from the first). No match when either side trims to empty.
func ParseComparePair(text string) (a, b string, ok bool) {
	if !strings.Contains(strings.ToLower(text), "compare") {
		return "", "", false
	}
	parts := andSplitRe.Split(text, -1)
	if len(parts) < 2 {
		return "", "", false
	}
	a = strings.TrimSpace(parts[len(parts)-2])
	a = comparePrefixRe.ReplaceAllString(a, "")
	a = strings.Trim(a, compareTrimChars)
	b = strings.Trim(parts[len(parts)-1], compareTrimChars)
	if a == "" || b == "" {
		return "", "", false
	}
	return a, b, true
}

var (
	growthUpKeywords   = []string{"up-and-coming", "up and coming", "rising", "growing"}
	growthDownKeywords = []string{"declining", "falling", "going down", "cooling"}
	horizon5yPhrases   = []string{"5 year", "five year", "5-year"}
)

// ParseGrowthIntent detects questions about rising or declining rental
// markets. Direction comes from keyword lists; the horizon defaults to 3
// years unless an explicit five-year phrase appears. No match when no
// direction keyword is present.
func ParseGrowthIntent(text string) (Horizon, Direction, bool) {
	t := strings.ToLower(text)

	var direction Direction
	switch {
	case containsAny(t, growthUpKeywords):
		direction = DirectionUp
	case containsAny(t, growthDownKeywords):
		direction = DirectionDown
	default:
		return "", "", false
	}

	horizon := Horizon3y
	if containsAny(t, horizon5yPhrases) {
		horizon = Horizon5y
	}
	return horizon, direction, true
}

var cheapestKeywords = []string{
	"cheapest",
	"low cost",
	"least expensive",
	"most affordable",
	"affordable metros",
}

// IsCheapestRequest reports whether the message asks for the cheapest metros.
func IsCheapestRequest(text string) bool {
	return containsAny(strings.ToLower(text), cheapestKeywords)
}

var mostExpensiveKeywords = []string{
	"most expensive",
	"high cost",
	"priciest",
	"top expensive",
}

// IsMostExpensiveRequest reports whether the message asks for the most
// expensive metros.
func IsMostExpensiveRequest(text string) bool {
	return containsAny(strings.ToLower(text), mostExpensiveKeywords)
}

var greetings = []string{
	"hi",
	"hello",
	"hey",
	"yo",
	"hi there",
	"good morning",
	"good evening",
}

// IsGreeting reports whether the message is a bare greeting: an exact match
// against a small phrase list, or a greeting-word prefix.
func IsGreeting(text string) bool {
	t := strings.ToLower(strings.TrimSpace(text))
	for _, g := range greetings {
		if t == g {
			return true
		}
	}
	return strings.HasPrefix(t, "hi ") ||
		strings.HasPrefix(t, "hello ") ||
		strings.HasPrefix(t, "hey ")
}

var relocationKeywords = []string{
	"rent",
	"rental",
	"apartment",
	"flat",
	"housing",
	"move",
	"moving",
	"relocate",
	"relocation",
	"city",
	"metro",
	"neighborhood",
	"budget",
	"cheapest",
	"affordable",
	"expensive",
	"compare",
	"cost of living",
	"up-and-coming",
	"up and coming",
	"declining",
}

// IsRelocationRelated reports whether the message is about rent, housing,
// or relocation at all. Messages that are not route to the canned help text
// instead of any query.
func IsRelocationRelated(text string) bool {
	return containsAny(strings.ToLower(text), relocationKeywords)
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

// usStates is the fixed set of 50 two-letter US state codes used to validate
// parsed state tokens.
var usStates = map[string]bool{
	"AL": true, "AK": true, "AZ": true, "AR": true, "CA": true,
	"CO": true, "CT": true, "DE": true, "FL": true, "GA": true,
	"HI": true, "ID": true, "IL": true, "IN": true, "IA": true,
	"KS": true, "KY": true, "LA": true, "ME": true, "MD": true,
	"MA": true, "MI": true, "MN": true, "MS": true, "MO": true,
	"MT": true, "NE": true, "NV": true, "NH": true, "NJ": true,
	"NM": true, "NY": true, "NC": true, "ND": true, "OH": true,
	"OK": true, "OR": true, "PA": true, "RI": true, "SC": true,
	"SD": true, "TN": true, "TX": true, "UT": true, "VT": true,
	"VA": true, "WA": true, "WV": true, "WI": true, "WY": true,
}
