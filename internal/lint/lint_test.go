package lint_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	certform "github.com/goliatone/go-certform"
	"github.com/goliatone/go-certform/internal/lint"
	pkgopenapi "github.com/goliatone/go-certform/pkg/openapi"
	"github.com/goliatone/go-certform/pkg/testsupport"
)

const badDocument = `openapi: 3.0.3
info:
  title: Lint
  version: 1.0.0
paths:
  /things:
    post:
      operationId: createThing
      x-formgen-layout: grid
      requestBody:
        content:
          application/json:
            schema:
              type: object
              properties:
                name:
                  type: string
                  x-formgen-order: 1
                  x-formgen-placeholder: Name
                  x-formgen-tooltip: hello
                note:
                  type: string
                  x-formgen:
                    widget: textarea
                    colour: blue
      responses:
        '200':
          description: ok
`

func TestDocumentReportsUnknownKeys(t *testing.T) {
	doc := testsupport.InlineDocument(t, badDocument)

	violations, err := lint.Document(context.Background(), certform.NewParser(), doc)
	if err != nil {
		t.Fatalf("lint: %v", err)
	}

	var got []string
	for _, v := range violations {
		got = append(got, v.Location+": "+strings.SplitN(v.Message, " (", 2)[0])
	}
	want := []string{
		`operation > createThing: unsupported extension key "layout"`,
		`operation > createThing > requestBody > properties.name: unsupported extension key "tooltip"`,
		`operation > createThing > requestBody > properties.note > colour: unsupported extension key "colour"`,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("violations mismatch (-want +got):\n%s", diff)
	}
}

func TestEmbeddedSchemaIsClean(t *testing.T) {
	loader := certform.NewLoader(pkgopenapi.WithFileSystem(certform.SchemaFS()))
	doc, err := loader.Load(context.Background(), certform.DefaultSource())
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	violations, err := lint.Document(context.Background(), certform.NewParser(), doc)
	if err != nil {
		t.Fatalf("lint: %v", err)
	}
	if len(violations) != 0 {
		t.Fatalf("expected no violations, got %v", violations)
	}
}
