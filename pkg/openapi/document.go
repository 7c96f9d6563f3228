package openapi

import (
	"errors"
	"fmt"
)

// Source identifies where an OpenAPI document came from.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
)

// Document wraps the raw OpenAPI payload and its origin.
type Document struct {
	source Source
	raw    []byte
}

// NewDocument constructs a Document wrapper while validating the inputs.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("openapi: source is required")
	}
	if len(raw) == 0 {
		return Document{}, errors.New("openapi: raw document is empty")
	}

	clone := append([]byte(nil), raw...)
	return Document{source: src, raw: clone}, nil
}

// MustNewDocument panics if the document cannot be created. Useful for tests.
func MustNewDocument(src Source, raw []byte) Document {
	doc, err := NewDocument(src, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

// Source returns the origin metadata for the document.
func (d Document) Source() Source {
	return d.source
}

// Raw returns a copy of the OpenAPI payload.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// Location returns the string identifier for the origin.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}

// Operation is the subset of an OpenAPI operation needed to build a form.
type Operation struct {
	ID          string
	Method      string
	Path        string
	Summary     string
	Description string
	RequestBody Schema
	Extensions  map[string]any
}

// NewOperation validates core fields.
func NewOperation(id, method, path string, request Schema) (Operation, error) {
	if id == "" {
		return Operation{}, errors.New("openapi: operation id is required")
	}
	if method == "" {
		return Operation{}, fmt.Errorf("openapi: operation %q missing method", id)
	}
	if path == "" {
		return Operation{}, fmt.Errorf("openapi: operation %q missing path", id)
	}

	return Operation{
		ID:          id,
		Method:      method,
		Path:        path,
		RequestBody: request,
	}, nil
}

// MustNewOperation panics when construction fails.
func MustNewOperation(id, method, path string, request Schema) Operation {
	op, err := NewOperation(id, method, path, request)
	if err != nil {
		panic(err)
	}
	return op
}

// Schema represents a request body and its properties.
type Schema struct {
	Ref         string
	Type        string
	Format      string
	Title       string
	Required    []string
	Properties  map[string]Schema
	Enum        []any
	Description string
	Default     any
	Extensions  map[string]any
}

// Clone creates a deep copy of the schema tree.
func (s Schema) Clone() Schema {
	cloned := s
	if len(s.Required) > 0 {
		cloned.Required = append([]string(nil), s.Required...)
	}
	if len(s.Enum) > 0 {
		cloned.Enum = append([]any(nil), s.Enum...)
	}
	if len(s.Properties) > 0 {
		cloned.Properties = make(map[string]Schema, len(s.Properties))
		for k, v := range s.Properties {
			cloned.Properties[k] = v.Clone()
		}
	}
	if len(s.Extensions) > 0 {
		cloned.Extensions = make(map[string]any, len(s.Extensions))
		for k, v := range s.Extensions {
			cloned.Extensions[k] = v
		}
	}
	return cloned
}

// Validate performs basic sanity checks before building form models.
func (s Schema) Validate() error {
	if s.Type == "" && s.Ref == "" {
		return errors.New("openapi: schema requires either type or ref")
	}
	return nil
}
