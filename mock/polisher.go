package mock

import (
	"context"

	"github.com/mrmovin/relochat"
)

var _ relochat.Polisher = (*Polisher)(nil)

// Polisher is a mock implementation of relochat.Polisher.
type Polisher struct {
	PolishFn func(ctx context.Context, message, draft string) (string, error)
}

func (p *Polisher) Polish(ctx context.Context, message, draft string) (string, error) {
	return p.PolishFn(ctx, message, draft)
}
