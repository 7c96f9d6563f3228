package render

// RenderOptions carry per-request data renderers use without mutating the
// form model.
type RenderOptions struct {
	// Method overrides the HTTP method declared by the form model.
	Method string
	// Action overrides the form endpoint.
	Action string
	// Values pre-populates controls keyed by field name.
	Values map[string]string
	// Errors surfaces rejected values keyed by field name.
	Errors map[string][]string
	// Attributes are copied onto the root form element.
	Attributes map[string]string
}

// Value returns the prefilled value for name.
func (o RenderOptions) Value(name string) string {
	if o.Values == nil {
		return ""
	}
	return o.Values[name]
}
