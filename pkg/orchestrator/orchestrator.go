package orchestrator

import (
	"context"
	"errors"
	"fmt"

	internalLoader "github.com/goliatone/go-certform/internal/openapi/loader"
	internalParser "github.com/goliatone/go-certform/internal/openapi/parser"
	"github.com/goliatone/go-certform/pkg/model"
	pkgopenapi "github.com/goliatone/go-certform/pkg/openapi"
	"github.com/goliatone/go-certform/pkg/render"
	"github.com/goliatone/go-certform/pkg/renderers/vanilla"
)

const defaultRendererName = "vanilla"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom OpenAPI loader.
func WithLoader(loader pkgopenapi.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithParser injects a custom OpenAPI parser.
func WithParser(parser pkgopenapi.Parser) Option {
	return func(o *Orchestrator) {
		o.parser = parser
	}
}

// WithModelBuilder injects a custom form model builder.
func WithModelBuilder(builder model.Builder) Option {
	return func(o *Orchestrator) {
		o.builder = builder
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithSchemaTransformer registers a Transformer that runs against every built
// form model.
func WithSchemaTransformer(t Transformer) Option {
	return func(o *Orchestrator) {
		o.transformer = t
	}
}

// Orchestrator coordinates the pipeline from OpenAPI document to rendered
// output. Missing stages default to the built-in implementations.
type Orchestrator struct {
	loader          pkgopenapi.Loader
	parser          pkgopenapi.Parser
	builder         model.Builder
	registry        *render.Registry
	defaultRenderer string
	transformer     Transformer
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs required to render a form from an OpenAPI
// operation.
type Request struct {
	// Source identifies where the OpenAPI document lives. Optional when Document
	// is supplied.
	Source pkgopenapi.Source

	// Document allows callers to bypass the loader.
	Document *pkgopenapi.Document

	// OperationID selects which OpenAPI operation becomes the form.
	OperationID string

	// Renderer names the renderer to use; empty selects the default.
	Renderer string

	// RenderOptions carries prefilled values, rejected-value messages and
	// form attributes.
	RenderOptions render.RenderOptions
}

// FormModel runs the loader → parser → builder → transformer stages and
// returns the resulting model.
func (o *Orchestrator) FormModel(ctx context.Context, req Request) (model.FormModel, error) {
	if ctx == nil {
		return model.FormModel{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return model.FormModel{}, err
	}
	if err := o.initialiseErr; err != nil {
		return model.FormModel{}, err
	}
	if req.OperationID == "" {
		return model.FormModel{}, errors.New("orchestrator: operation id is required")
	}

	doc, err := o.resolveDocument(ctx, req)
	if err != nil {
		return model.FormModel{}, err
	}

	operations, err := o.parser.Operations(ctx, doc)
	if err != nil {
		return model.FormModel{}, fmt.Errorf("orchestrator: parse operations: %w", err)
	}

	op, ok := operations[req.OperationID]
	if !ok {
		return model.FormModel{}, fmt.Errorf("orchestrator: operation %q not found", req.OperationID)
	}

	form, err := o.builder.Build(op)
	if err != nil {
		return model.FormModel{}, fmt.Errorf("orchestrator: build form model: %w", err)
	}

	if o.transformer != nil {
		if err := o.transformer.Transform(ctx, &form); err != nil {
			return model.FormModel{}, fmt.Errorf("orchestrator: transform form: %w", err)
		}
	}
	return form, nil
}

// Generate builds the form model and renders it with the requested renderer.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	form, err := o.FormModel(ctx, req)
	if err != nil {
		return nil, err
	}
	return o.Render(ctx, form, req.Renderer, req.RenderOptions)
}

// Render renders an already built form model. Callers that cache the model
// use this to skip the parse stages on every request.
func (o *Orchestrator) Render(ctx context.Context, form model.FormModel, rendererName string, options render.RenderOptions) ([]byte, error) {
	if err := o.initialiseErr; err != nil {
		return nil, err
	}
	renderer, err := o.rendererFor(rendererName)
	if err != nil {
		return nil, err
	}

	output, err := renderer.Render(ctx, form, options)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, nil
}

func (o *Orchestrator) resolveDocument(ctx context.Context, req Request) (pkgopenapi.Document, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	if req.Source == nil {
		return pkgopenapi.Document{}, errors.New("orchestrator: source or document is required")
	}
	doc, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return pkgopenapi.Document{}, fmt.Errorf("orchestrator: load document: %w", err)
	}
	return doc, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.loader == nil {
		o.loader = internalLoader.New(pkgopenapi.NewLoaderOptions())
	}
	if o.parser == nil {
		o.parser = internalParser.New(pkgopenapi.NewParserOptions())
	}
	if o.builder == nil {
		o.builder = model.NewBuilder()
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		renderer, err := vanilla.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		} else {
			o.registry.MustRegister(renderer)
		}
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
}
