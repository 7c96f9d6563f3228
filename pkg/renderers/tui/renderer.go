package tui

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-certform/pkg/model"
	"github.com/goliatone/go-certform/pkg/render"
)

// noneOption is the select entry that clears a choice field.
const noneOption = "(none)"

// Renderer implements render.Renderer for terminal sessions: it prompts for
// every field and serializes the answers.
type Renderer struct {
	driver       PromptDriver
	outputFormat OutputFormat
	infoOut      io.Writer
	maxAttempts  int
	validate     func(field, value string) error
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{outputFormat: OutputFormatJSON}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.driver == nil {
		r.driver = newSurveyDriver(r.infoOut)
	}
	if _, ok := ParseOutputFormat(string(r.outputFormat)); !ok {
		return nil, fmt.Errorf("tui: unsupported output format %q", r.outputFormat)
	}
	return r, nil
}

// WithValidator rejects answers before Render stores them.
func WithValidator(fn func(field, value string) error) Option {
	return func(r *Renderer) {
		r.validate = fn
	}
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	switch r.outputFormat {
	case OutputFormatYAML:
		return "application/yaml"
	case OutputFormatPretty:
		return "text/plain; charset=utf-8"
	default:
		return "application/json"
	}
}

// Render prompts for every field, seeded with options.Values, and returns
// the answers in the configured format.
func (r *Renderer) Render(ctx context.Context, form model.FormModel, options render.RenderOptions) ([]byte, error) {
	state := NewState(options.Values, r.validate)
	if err := r.Fill(ctx, form, state); err != nil {
		return nil, err
	}
	return r.serialize(form, state.Values())
}

// Fill prompts for every field in form order and hands each answer to
// editor. Rejected answers are reported through the driver and asked again.
func (r *Renderer) Fill(ctx context.Context, form model.FormModel, editor Editor) error {
	if ctx == nil {
		return errors.New("tui: context is required")
	}
	if r.driver == nil {
		return errors.New("tui: prompt driver is nil")
	}
	if editor == nil {
		return errors.New("tui: editor is nil")
	}

	for _, field := range form.Fields {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := r.promptField(ctx, field, editor); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) promptField(ctx context.Context, field model.Field, editor Editor) error {
	for attempt := 1; ; attempt++ {
		value, err := r.ask(ctx, field, editor.Value(field.Name))
		if err != nil {
			return err
		}
		setErr := editor.Set(field.Name, value)
		if setErr == nil {
			return nil
		}
		if err := r.driver.Info(ctx, fmt.Sprintf("Invalid %s: %v", displayLabel(field), setErr)); err != nil {
			return err
		}
		if r.maxAttempts > 0 && attempt >= r.maxAttempts {
			return fmt.Errorf("%w: %s", ErrTooManyAttempts, field.Name)
		}
	}
}

func (r *Renderer) ask(ctx context.Context, field model.Field, current string) (string, error) {
	if !field.IsChoice() {
		return r.driver.Input(ctx, InputConfig{
			Message: displayLabel(field),
			Default: current,
			Help:    displayHelp(field),
		})
	}

	options := append([]string{noneOption}, field.Enum...)
	defaultIdx := 0
	if idx := indexOf(options, current); idx > 0 {
		defaultIdx = idx
	}
	idx, err := r.driver.Select(ctx, SelectConfig{
		Message:      displayLabel(field),
		Options:      options,
		DefaultIndex: defaultIdx,
		Help:         displayHelp(field),
	})
	if err != nil {
		return "", err
	}
	if idx <= 0 || idx >= len(options) {
		return "", nil
	}
	return options[idx], nil
}

func (r *Renderer) serialize(form model.FormModel, values map[string]string) ([]byte, error) {
	switch r.outputFormat {
	case OutputFormatYAML:
		return yamlBytes(form, values)
	case OutputFormatPretty:
		return prettyBytes(form, values)
	default:
		return json.Marshal(values)
	}
}

// yamlBytes writes values as a mapping in form order.
func yamlBytes(form model.FormModel, values map[string]string) ([]byte, error) {
	mapping := &yaml.Node{Kind: yaml.MappingNode}
	for _, field := range form.Fields {
		mapping.Content = append(mapping.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: field.Name},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: values[field.Name]},
		)
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(mapping); err != nil {
		return nil, fmt.Errorf("tui: encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("tui: encode yaml: %w", err)
	}
	return buf.Bytes(), nil
}

func prettyBytes(form model.FormModel, values map[string]string) ([]byte, error) {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	for _, field := range form.Fields {
		value := values[field.Name]
		if strings.TrimSpace(value) == "" {
			value = "-"
		}
		fmt.Fprintf(w, "%s:\t%s\n", displayLabel(field), value)
	}
	if err := w.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func displayLabel(field model.Field) string {
	if field.Label != "" {
		return field.Label
	}
	return field.Name
}

func displayHelp(field model.Field) string {
	if hint := field.UIHints["helpText"]; hint != "" {
		return hint
	}
	if field.Description != "" {
		return field.Description
	}
	return field.Placeholder
}
