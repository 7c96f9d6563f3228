package server

import (
	"embed"
	"fmt"

	"github.com/goliatone/go-certform/pkg/page"
	"github.com/goliatone/go-certform/pkg/preview"
	rendertemplate "github.com/goliatone/go-certform/pkg/render/template"
	"github.com/goliatone/go-certform/pkg/render/template/gotemplate"
)

//go:embed templates/*.tmpl
var pageTemplates embed.FS

const (
	pageTemplate  = "templates/page.html.tmpl"
	pageTitle     = "BARANGAY CERTIFICATION SYSTEM"
	pageSubtitle  = "Official Document Management Portal"
	copyrightYear = 2025
)

type actionButton struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

type sessionURLs struct {
	Fields  string `json:"fields"`
	Preview string `json:"preview"`
	Form    string `json:"form"`
	Actions string `json:"actions"`
}

func urlsFor(sessionID string) sessionURLs {
	base := "/sessions/" + sessionID
	return sessionURLs{
		Fields:  base + "/fields",
		Preview: base + "/preview",
		Form:    base + "/form",
		Actions: base + "/actions",
	}
}

type pageView struct {
	Title    string           `json:"title"`
	Subtitle string           `json:"subtitle"`
	Session  string           `json:"session"`
	URLs     sessionURLs      `json:"urls"`
	Actions  []actionButton   `json:"actions"`
	Form     string           `json:"form"`
	Preview  string           `json:"preview"`
	Year     int              `json:"year"`
	Locality preview.Locality `json:"locality"`
}

func newPageEngine() (rendertemplate.TemplateRenderer, error) {
	engine, err := gotemplate.New(
		gotemplate.WithFS(pageTemplates),
		gotemplate.WithSetName("page"),
	)
	if err != nil {
		return nil, fmt.Errorf("server: configure page templates: %w", err)
	}
	return engine, nil
}

func actionButtons() []actionButton {
	actions := page.Actions()
	buttons := make([]actionButton, 0, len(actions))
	for _, action := range actions {
		buttons = append(buttons, actionButton{Name: string(action), Label: action.Label()})
	}
	return buttons
}
