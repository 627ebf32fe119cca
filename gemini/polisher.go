// Package gemini provides the optional response polisher backed by the
// Google Gemini API.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/mrmovin/relochat"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// DefaultModel is the model used for polishing.
const DefaultModel = "gemini-2.5-flash"

// requestsPerSecond bounds calls to the Gemini API per process.
const requestsPerSecond = 1.0

// Ensure Polisher implements relochat.Polisher at compile time.
var _ relochat.Polisher = (*Polisher)(nil)

// Polisher rewrites templated answers in a more conversational voice using
// Gemini. Callers treat every error as non-fatal and keep the draft.
type Polisher struct {
	client  *genai.Client
	model   string
	limiter *rate.Limiter
}

// NewPolisher creates a new Polisher. model may be empty to use DefaultModel.
func NewPolisher(client *genai.Client, model string) *Polisher {
	if model == "" {
		model = DefaultModel
	}
	return &Polisher{
		client:  client,
		model:   model,
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
	}
}

// Polish rewrites the draft answer to the user's message.
func (p *Polisher) Polish(ctx context.Context, message, draft string) (string, error) {
	if draft == "" {
		return "", relochat.Errorf(relochat.EINVALID, "draft required")
	}

	if err := p.limiter.Wait(ctx); err != nil {
		return "", err
	}

	result, err := p.client.Models.GenerateContent(ctx, p.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: BuildUserPrompt(message, draft)}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", relochat.Errorf(relochat.EINTERNAL, "gemini returned nil result")
	}

	return strings.TrimSpace(result.Text()), nil
}

// BuildConfig returns the GenerateContentConfig for polish calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a friendly apartment relocation assistant. Rewrite the draft answer " +
					"in a warmer, conversational voice. Keep every fact, number, metro name, and " +
					"list item exactly as given. Do not invent data. Keep it about the same length.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the prompt containing the user's message and the
// templated draft.
func BuildUserPrompt(message, draft string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<user_message>%s</user_message>\n\n", message)
	fmt.Fprintf(&sb, "<draft_answer>\n%s\n</draft_answer>\n\n", draft)
	sb.WriteString("Rewrite the draft answer for the user.")
	return sb.String()
}
