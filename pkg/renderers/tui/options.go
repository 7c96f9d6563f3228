package tui

import "io"

// OutputFormat controls how collected values are serialized by Render.
type OutputFormat string

const (
	OutputFormatJSON   OutputFormat = "json"
	OutputFormatYAML   OutputFormat = "yaml"
	OutputFormatPretty OutputFormat = "pretty"
)

// ParseOutputFormat resolves a format name, defaulting to JSON when empty.
func ParseOutputFormat(name string) (OutputFormat, bool) {
	switch OutputFormat(name) {
	case "", OutputFormatJSON:
		return OutputFormatJSON, true
	case OutputFormatYAML, OutputFormatPretty:
		return OutputFormat(name), true
	default:
		return "", false
	}
}

// Option configures the TUI renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the prompt driver used by the renderer.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithOutputFormat selects the output serialization format.
func WithOutputFormat(format OutputFormat) Option {
	return func(r *Renderer) {
		if format != "" {
			r.outputFormat = format
		}
	}
}

// WithInfoWriter sets where the default survey driver prints messages.
func WithInfoWriter(w io.Writer) Option {
	return func(r *Renderer) {
		r.infoOut = w
	}
}

// WithMaxAttempts caps how often a single field is re-prompted after a
// rejected answer. Zero means no limit.
func WithMaxAttempts(n int) Option {
	return func(r *Renderer) {
		if n >= 0 {
			r.maxAttempts = n
		}
	}
}
