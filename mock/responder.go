package mock

import (
	"context"

	"github.com/mrmovin/relochat"
)

var _ relochat.Responder = (*Responder)(nil)

// Responder is a mock implementation of relochat.Responder.
type Responder struct {
	RespondFn func(ctx context.Context, message string) (string, error)
}

func (r *Responder) Respond(ctx context.Context, message string) (string, error) {
	return r.RespondFn(ctx, message)
}
