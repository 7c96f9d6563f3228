package vanilla

// ChromeClass is a typed identifier for semantic chrome CSS classes.
type ChromeClass string

const (
	ClassForm   ChromeClass = "certform-form"
	ClassGrid   ChromeClass = "certform-grid"
	ClassField  ChromeClass = "certform-field"
	ClassLabel  ChromeClass = "certform-label"
	ClassHelp   ChromeClass = "certform-help"
	ClassErrors ChromeClass = "certform-errors"
)
