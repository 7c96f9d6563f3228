package orchestrator

import (
	"context"
	"fmt"

	"github.com/goliatone/go-certform/pkg/model"
)

// Transformer mutates or checks a FormModel after it is built and before it
// is rendered.
type Transformer interface {
	Transform(ctx context.Context, form *model.FormModel) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, form *model.FormModel) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, form *model.FormModel) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, form)
}

// Chain runs transformers in order, stopping at the first error.
func Chain(transformers ...Transformer) Transformer {
	return TransformerFunc(func(ctx context.Context, form *model.FormModel) error {
		for i, t := range transformers {
			if t == nil {
				continue
			}
			if err := t.Transform(ctx, form); err != nil {
				return fmt.Errorf("transformer %d: %w", i, err)
			}
		}
		return nil
	})
}
