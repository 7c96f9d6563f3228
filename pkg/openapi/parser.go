package openapi

import "context"

// Parser normalises OpenAPI documents into operation wrappers.
type Parser interface {
	Operations(ctx context.Context, doc Document) (map[string]Operation, error)
}

// ParserOptions exposes parser toggles.
type ParserOptions struct {
	// ResolveReferences validates the document so $ref pointers are resolved
	// before conversion.
	ResolveReferences bool
}

// ParserOption mutates ParserOptions during construction.
type ParserOption func(*ParserOptions)

// WithReferenceResolution toggles eager reference resolution.
func WithReferenceResolution(enabled bool) ParserOption {
	return func(opts *ParserOptions) {
		opts.ResolveReferences = enabled
	}
}

// NewParserOptions applies ParserOption functions.
func NewParserOptions(options ...ParserOption) ParserOptions {
	cfg := ParserOptions{ResolveReferences: true}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
