// Package certform builds the Barangay Certification form from its embedded
// OpenAPI description and exposes the pipeline stages used by the server and
// the CLI.
package certform

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"slices"

	"github.com/goliatone/go-certform/pkg/certification"
	"github.com/goliatone/go-certform/pkg/model"
	pkgopenapi "github.com/goliatone/go-certform/pkg/openapi"
	"github.com/goliatone/go-certform/pkg/orchestrator"
	"github.com/goliatone/go-certform/pkg/render"
)

const (
	// SchemaPath locates the certification document inside SchemaFS.
	SchemaPath = "schema/certification.yaml"
	// OperationID names the operation whose request body becomes the form.
	OperationID = "updateCertification"
)

//go:embed schema/certification.yaml
var schemaFS embed.FS

// RenderOptions describes per-request prefill values and rejected-value
// messages.
type RenderOptions = render.RenderOptions

// SchemaFS exposes the embedded OpenAPI document.
func SchemaFS() fs.FS {
	return schemaFS
}

// DefaultSource points at the embedded certification document.
func DefaultSource() pkgopenapi.Source {
	return pkgopenapi.SourceFromFS(SchemaPath)
}

// NewOrchestrator returns an orchestrator that reads the embedded schema and
// checks every built form against the certification record. Options are
// applied after the defaults.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	defaults := []orchestrator.Option{
		orchestrator.WithLoader(NewLoader(pkgopenapi.WithFileSystem(schemaFS))),
		orchestrator.WithSchemaTransformer(orchestrator.TransformerFunc(VerifyFields)),
	}
	return orchestrator.New(append(defaults, options...)...)
}

// FormModel builds the certification form model from the embedded schema.
func FormModel(ctx context.Context, options ...orchestrator.Option) (model.FormModel, error) {
	return NewOrchestrator(options...).FormModel(ctx, orchestrator.Request{
		Source:      DefaultSource(),
		OperationID: OperationID,
	})
}

// VerifyFields fails when the form's fields or choices drift from the
// certification record.
func VerifyFields(_ context.Context, form *model.FormModel) error {
	want := certification.Fields()
	if len(form.Fields) != len(want) {
		return fmt.Errorf("certform: form has %d fields, record has %d", len(form.Fields), len(want))
	}
	for i, field := range form.Fields {
		if field.Name != string(want[i]) {
			return fmt.Errorf("certform: field %d is %q, want %q", i, field.Name, want[i])
		}
		if options := certification.Options(want[i]); !slices.Equal(field.Enum, options) {
			return fmt.Errorf("certform: field %q offers %v, want %v", field.Name, field.Enum, options)
		}
	}
	return nil
}
