package certform

import (
	"io/fs"

	"github.com/goliatone/go-certform/pkg/preview"
	vanilla "github.com/goliatone/go-certform/pkg/renderers/vanilla"
)

// EmbeddedTemplates exposes the built-in form templates so callers can reuse
// or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}

// CertificateTemplates exposes the certificate preview templates.
func CertificateTemplates() fs.FS {
	return preview.TemplatesFS()
}
