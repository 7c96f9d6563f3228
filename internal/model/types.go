package model

// FieldType is the simplified enum for form-friendly field kinds.
type FieldType string

const (
	FieldTypeString  FieldType = "string"
	FieldTypeInteger FieldType = "integer"
	FieldTypeNumber  FieldType = "number"
	FieldTypeBoolean FieldType = "boolean"
)

// Field models a single control in a generated form.
type Field struct {
	Name        string            `json:"name"`
	Type        FieldType         `json:"type"`
	Format      string            `json:"format,omitempty"`
	Required    bool              `json:"required"`
	Label       string            `json:"label,omitempty"`
	Placeholder string            `json:"placeholder,omitempty"`
	Description string            `json:"description,omitempty"`
	Default     any               `json:"default,omitempty"`
	Enum        []string          `json:"enum,omitempty"`
	Order       int               `json:"order"`
	UIHints     map[string]string `json:"uiHints,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// IsChoice reports whether the field is restricted to its Enum values.
func (f Field) IsChoice() bool {
	return len(f.Enum) > 0
}

// FormModel is the top-level representation renderers consume.
type FormModel struct {
	OperationID string            `json:"operationId"`
	Endpoint    string            `json:"endpoint"`
	Method      string            `json:"method"`
	Summary     string            `json:"summary,omitempty"`
	Description string            `json:"description,omitempty"`
	Fields      []Field           `json:"fields"`
	UIHints     map[string]string `json:"uiHints,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// Field looks up a field by name.
func (m FormModel) Field(name string) (Field, bool) {
	for _, field := range m.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}
