package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/goliatone/go-certform/pkg/model"
	"github.com/goliatone/go-certform/pkg/render"
	rendertemplate "github.com/goliatone/go-certform/pkg/render/template"
	"github.com/goliatone/go-certform/pkg/render/template/gotemplate"
	"github.com/goliatone/go-certform/pkg/renderers/vanilla/components"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	components       *components.Registry
	assetsPrefix     string
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithComponentRegistry replaces the default component registry.
func WithComponentRegistry(registry *components.Registry) Option {
	return func(cfg *config) {
		if registry != nil {
			cfg.components = registry
		}
	}
}

// WithAssetsPrefix sets the URL prefix component assets are served under.
func WithAssetsPrefix(prefix string) Option {
	return func(cfg *config) {
		cfg.assetsPrefix = strings.TrimRight(prefix, "/")
	}
}

// Renderer emits an HTML form fragment with one control per field.
type Renderer struct {
	templates    rendertemplate.TemplateRenderer
	components   *components.Registry
	assetsPrefix string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS:   TemplatesFS(),
		assetsPrefix: "/assets",
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}
	if cfg.components == nil {
		cfg.components = components.NewDefaultRegistry()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{
		templates:    renderer,
		components:   cfg.components,
		assetsPrefix: cfg.assetsPrefix,
	}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render writes the form fragment. Controls are prefilled from
// options.Values and rejected values listed in options.Errors are flagged.
func (r *Renderer) Render(ctx context.Context, form model.FormModel, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fieldRenderer := newComponentRenderer(r.templates, r.components)
	fields := make([]string, 0, len(form.Fields))
	for _, field := range form.Fields {
		markup, err := fieldRenderer.render(field, options)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: %w", err)
		}
		fields = append(fields, markup)
	}

	stylesheets, scripts := fieldRenderer.assets()
	stylesheets = append(stylesheets, r.assetsPrefix+"/"+StylesheetName)
	scripts = append(scripts, components.Script{Src: r.assetsPrefix + "/" + RuntimeScriptName, Defer: true})

	method := strings.ToUpper(strings.TrimSpace(options.Method))
	if method == "" {
		method = form.Method
	}
	action := strings.TrimSpace(options.Action)
	if action == "" {
		action = form.Endpoint
	}

	result, err := r.templates.RenderTemplate("templates/form.tmpl", map[string]any{
		"form":        form,
		"fields":      fields,
		"method":      method,
		"action":      action,
		"attributes":  sortedAttributes(options.Attributes),
		"stylesheets": stylesheets,
		"scripts":     scripts,
		"classes": map[string]string{
			"form": string(ClassForm),
			"grid": string(ClassGrid),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}

type attribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func sortedAttributes(attrs map[string]string) []attribute {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]attribute, 0, len(attrs))
	for name, value := range attrs {
		if name = strings.TrimSpace(name); name != "" {
			out = append(out, attribute{Name: name, Value: value})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
