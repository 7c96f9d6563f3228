package components

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/goliatone/go-certform/pkg/model"
)

const templatePrefix = "templates/components/"

// NewDefaultRegistry constructs a registry with the built-in input and select
// components.
func NewDefaultRegistry() *Registry {
	registry := New()

	registry.MustRegister(NameInput, Descriptor{
		Renderer: templateComponentRenderer(templatePrefix + "input.tmpl"),
	})
	registry.MustRegister(NameSelect, Descriptor{
		Renderer: templateComponentRenderer(templatePrefix + "select.tmpl"),
	})

	return registry
}

func templateComponentRenderer(templateName string) Renderer {
	return func(buf *bytes.Buffer, field model.Field, data ComponentData) error {
		if data.Template == nil {
			return fmt.Errorf("components: template renderer not configured for %q", templateName)
		}

		payload := map[string]any{
			"field":     field,
			"value":     data.Value,
			"invalid":   len(data.Errors) > 0,
			"inputType": inputType(field),
			"options":   options(field, data.Value),
		}
		rendered, err := data.Template.RenderTemplate(templateName, payload)
		if err != nil {
			return fmt.Errorf("components: render template %q: %w", templateName, err)
		}
		buf.WriteString(rendered)
		return nil
	}
}

func inputType(field model.Field) string {
	if hint := strings.TrimSpace(field.UIHints["inputType"]); hint != "" {
		return hint
	}
	return "text"
}

type option struct {
	Value    string `json:"value"`
	Selected bool   `json:"selected"`
}

// options lists the enum values of a choice field, marking the current one.
func options(field model.Field, current string) []option {
	if !field.IsChoice() {
		return nil
	}
	out := make([]option, 0, len(field.Enum))
	for _, value := range field.Enum {
		out = append(out, option{Value: value, Selected: value == current})
	}
	return out
}
