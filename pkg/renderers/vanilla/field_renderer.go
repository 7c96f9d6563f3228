package vanilla

import (
	"bytes"
	"fmt"
	"html"
	"slices"
	"strings"

	"github.com/goliatone/go-certform/pkg/model"
	"github.com/goliatone/go-certform/pkg/render"
	"github.com/goliatone/go-certform/pkg/render/template"
	"github.com/goliatone/go-certform/pkg/renderers/vanilla/components"
)

type componentRenderer struct {
	templates template.TemplateRenderer
	registry  *components.Registry

	usedComponents map[string]struct{}
}

func newComponentRenderer(templates template.TemplateRenderer, registry *components.Registry) *componentRenderer {
	if registry == nil {
		registry = components.NewDefaultRegistry()
	}
	return &componentRenderer{
		templates:      templates,
		registry:       registry,
		usedComponents: make(map[string]struct{}),
	}
}

func (r *componentRenderer) render(field model.Field, options render.RenderOptions) (string, error) {
	componentName := resolveComponentName(field)
	descriptor, ok := r.registry.Descriptor(componentName)
	if !ok {
		return "", fmt.Errorf("component %q not registered for field %q", componentName, field.Name)
	}

	errs := options.Errors[field.Name]
	data := components.ComponentData{
		Template: r.templates,
		Value:    options.Value(field.Name),
		Errors:   errs,
	}

	var control bytes.Buffer
	if err := descriptor.Renderer(&control, field, data); err != nil {
		return "", fmt.Errorf("render component %q for field %q: %w", componentName, field.Name, err)
	}

	r.usedComponents[componentName] = struct{}{}

	return buildFieldMarkup(field, componentName, control.String(), errs), nil
}

func (r *componentRenderer) assets() (stylesheets []string, scripts []components.Script) {
	if len(r.usedComponents) == 0 {
		return nil, nil
	}
	names := make([]string, 0, len(r.usedComponents))
	for name := range r.usedComponents {
		names = append(names, name)
	}
	slices.Sort(names)
	return r.registry.Assets(names)
}

// buildFieldMarkup wraps a control with its label, help text and the error
// slot the page script fills when a value is rejected.
func buildFieldMarkup(field model.Field, componentName, control string, errs []string) string {
	var builder strings.Builder
	builder.Grow(len(control) + 256)

	classes := []string{string(ClassField)}
	if span := spanClass(field); span != "" {
		classes = append(classes, span)
	}
	if extra := sanitizeClassList(field.UIHints["cssClass"]); extra != "" {
		classes = append(classes, extra)
	}

	builder.WriteString(`<div class="`)
	builder.WriteString(html.EscapeString(strings.Join(classes, " ")))
	builder.WriteString(`" data-component="`)
	builder.WriteString(html.EscapeString(componentName))
	builder.WriteString(`" data-field="`)
	builder.WriteString(html.EscapeString(field.Name))
	builder.WriteString("\">\n")

	if shouldRenderLabel(field) {
		builder.WriteString(`    <label for="`)
		builder.WriteString(html.EscapeString(componentControlID(field.Name)))
		builder.WriteString(`" class="`)
		builder.WriteString(string(ClassLabel))
		builder.WriteString(`">`)
		builder.WriteString(html.EscapeString(field.Label))
		if field.Required {
			builder.WriteString(` *`)
		}
		builder.WriteString("</label>\n")
	}

	for _, line := range strings.Split(control, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		builder.WriteString("    ")
		builder.WriteString(line)
		builder.WriteByte('\n')
	}

	if hint := strings.TrimSpace(field.UIHints["helpText"]); hint != "" {
		builder.WriteString(`    <small class="`)
		builder.WriteString(string(ClassHelp))
		builder.WriteString(`">`)
		builder.WriteString(html.EscapeString(hint))
		builder.WriteString("</small>\n")
	}

	builder.WriteString(`    <p id="`)
	builder.WriteString(html.EscapeString(componentErrorID(field.Name)))
	builder.WriteString(`" class="`)
	builder.WriteString(string(ClassErrors))
	builder.WriteString(`" role="alert">`)
	builder.WriteString(html.EscapeString(strings.Join(errs, " ")))
	builder.WriteString("</p>\n")

	builder.WriteString("</div>\n")
	return builder.String()
}

func shouldRenderLabel(field model.Field) bool {
	if strings.TrimSpace(field.Label) == "" {
		return false
	}
	return strings.TrimSpace(field.UIHints["hideLabel"]) != "true"
}
