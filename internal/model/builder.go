package model

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	pkgopenapi "github.com/goliatone/go-certform/pkg/openapi"
)

// Options configures the behaviour of the Builder.
type Options struct {
	Labeler func(string) string
}

// Builder converts OpenAPI operations into form models.
type Builder struct {
	opts Options
}

// New creates a Builder with the supplied options.
func New(options Options) *Builder {
	if options.Labeler == nil {
		options.Labeler = DefaultLabeler
	}
	return &Builder{opts: options}
}

// Build transforms the request body of op into a flat FormModel. Fields are
// ordered by their x-formgen-order extension, then by name.
func (b *Builder) Build(op pkgopenapi.Operation) (FormModel, error) {
	if op.ID == "" {
		return FormModel{}, errors.New("model: operation id is required")
	}
	body := op.RequestBody
	if body.Type != "" && body.Type != "object" {
		return FormModel{}, fmt.Errorf("model: operation %q: request body must be an object, got %q", op.ID, body.Type)
	}

	form := FormModel{
		OperationID: op.ID,
		Endpoint:    op.Path,
		Method:      strings.ToUpper(op.Method),
		Summary:     op.Summary,
		Description: op.Description,
	}

	formExt := metadataFromExtensions(op.Extensions)
	form.Metadata = mergeMetadata(form.Metadata, formExt)
	form.Metadata = mergeMetadata(form.Metadata, metadataFromExtensions(body.Extensions))
	form.UIHints = filterUIHints(form.Metadata)

	required := make(map[string]struct{}, len(body.Required))
	for _, name := range body.Required {
		required[name] = struct{}{}
	}

	fields := make([]Field, 0, len(body.Properties))
	for name, schema := range body.Properties {
		if len(schema.Properties) > 0 || schema.Type == "object" || schema.Type == "array" {
			return FormModel{}, fmt.Errorf("model: operation %q: field %q: nested schemas are not supported", op.ID, name)
		}
		_, isRequired := required[name]
		field, err := b.fieldFromPrimitive(name, schema, isRequired)
		if err != nil {
			return FormModel{}, fmt.Errorf("model: operation %q: %w", op.ID, err)
		}
		fields = append(fields, field)
	}
	sort.SliceStable(fields, func(i, j int) bool {
		if fields[i].Order != fields[j].Order {
			return fields[i].Order < fields[j].Order
		}
		return fields[i].Name < fields[j].Name
	})
	form.Fields = fields

	return form, nil
}

func (b *Builder) fieldFromPrimitive(name string, schema pkgopenapi.Schema, required bool) (Field, error) {
	field := Field{
		Name:        name,
		Type:        mapType(schema.Type),
		Format:      schema.Format,
		Label:       schema.Title,
		Description: schema.Description,
		Required:    required,
		Default:     schema.Default,
	}
	if field.Label == "" {
		field.Label = b.opts.Labeler(name)
	}
	for _, value := range schema.Enum {
		str, ok := value.(string)
		if !ok {
			return Field{}, fmt.Errorf("field %q: enum values must be strings, got %T", name, value)
		}
		field.Enum = append(field.Enum, str)
	}

	metadata := metadataFromExtensions(schema.Extensions)
	if raw, ok := metadata[extensionOrder]; ok {
		order, err := strconv.Atoi(raw)
		if err != nil {
			return Field{}, fmt.Errorf("field %q: invalid order %q: %w", name, raw, err)
		}
		field.Order = order
		delete(metadata, extensionOrder)
	}
	if placeholder, ok := metadata[extensionPlaceholder]; ok {
		field.Placeholder = placeholder
		delete(metadata, extensionPlaceholder)
	}
	field.UIHints = filterUIHints(metadata)
	applyFormatHints(&field)
	if len(metadata) > 0 {
		field.Metadata = metadata
	}
	return field, nil
}

func mapType(schemaType string) FieldType {
	switch schemaType {
	case "integer":
		return FieldTypeInteger
	case "number":
		return FieldTypeNumber
	case "boolean":
		return FieldTypeBoolean
	default:
		return FieldTypeString
	}
}

// applyFormatHints derives the HTML input type unless a hint already set one.
func applyFormatHints(field *Field) {
	if field.UIHints != nil && field.UIHints["inputType"] != "" {
		return
	}
	var inputType string
	switch {
	case field.Format == "date":
		inputType = "date"
	case field.Format == "email":
		inputType = "email"
	case field.Format == "tel":
		inputType = "tel"
	case field.Type == FieldTypeInteger || field.Type == FieldTypeNumber:
		inputType = "number"
	}
	if inputType == "" {
		return
	}
	if field.UIHints == nil {
		field.UIHints = make(map[string]string, 1)
	}
	field.UIHints["inputType"] = inputType
}

func mergeMetadata(target map[string]string, updates map[string]string) map[string]string {
	if len(updates) == 0 {
		return target
	}
	if target == nil {
		target = make(map[string]string, len(updates))
	}
	for key, value := range updates {
		target[key] = value
	}
	return target
}
