package preview

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

const (
	htmlTemplate = "templates/certificate.html.tmpl"
	textTemplate = "templates/certificate.txt.tmpl"
)

// TemplatesFS exposes the embedded certificate templates.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
