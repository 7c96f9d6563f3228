package model

import (
	"github.com/goliatone/go-certform/internal/model"
	pkgopenapi "github.com/goliatone/go-certform/pkg/openapi"
)

// Builder converts OpenAPI operations into form models.
type Builder interface {
	Build(op pkgopenapi.Operation) (FormModel, error)
}

// BuilderOption configures the builder behaviour.
type BuilderOption func(*model.Options)

// WithLabeler overrides the label used when a schema has no title.
func WithLabeler(labeler func(string) string) BuilderOption {
	return func(opts *model.Options) {
		opts.Labeler = labeler
	}
}

// NewBuilder returns a Builder backed by the internal implementation.
func NewBuilder(options ...BuilderOption) Builder {
	var cfg model.Options
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	return model.New(cfg)
}
