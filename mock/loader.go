// Package mock provides function-field mock implementations of relochat
// interfaces for testing.
package mock

import (
	"context"

	"github.com/mrmovin/relochat"
)

var _ relochat.DatasetLoader = (*DatasetLoader)(nil)

// DatasetLoader is a mock implementation of relochat.DatasetLoader.
type DatasetLoader struct {
	LoadFn func(ctx context.Context) (*relochat.Dataset, error)
}

func (l *DatasetLoader) Load(ctx context.Context) (*relochat.Dataset, error) {
	return l.LoadFn(ctx)
}
