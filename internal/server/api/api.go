// Package api exposes the certification page state as a JSON API described
// with huma.
package api

import (
	"log/slog"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"

	"github.com/goliatone/go-certform/pkg/certification"
	"github.com/goliatone/go-certform/pkg/model"
	"github.com/goliatone/go-certform/pkg/page"
	"github.com/goliatone/go-certform/pkg/preview"
)

const (
	title   = "Barangay Certification API"
	version = "1.0.0"
)

// Sessions resolves a page controller by session id.
type Sessions interface {
	Lookup(id string) (*page.Controller, bool)
}

// Certificates derives the printable view of a record.
type Certificates interface {
	Certificate(rec certification.Record) (preview.Certificate, error)
}

// Dependencies are the collaborators the operations need.
type Dependencies struct {
	Sessions     Sessions
	Certificates Certificates
	Form         model.FormModel
	Log          *slog.Logger
}

// New registers every operation on router and returns the huma API.
func New(router chi.Router, deps Dependencies) huma.API {
	if deps.Log == nil {
		deps.Log = slog.Default()
	}
	config := huma.DefaultConfig(title, version)
	humaAPI := humachi.New(router, config)

	middlewares := huma.Middlewares{NewLogger(deps.Log).Middleware()}
	NewHandler(deps, middlewares).SetupRoutes(humaAPI)
	return humaAPI
}
