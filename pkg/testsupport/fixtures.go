package testsupport

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"

	pkgopenapi "github.com/goliatone/go-certform/pkg/openapi"
)

// InlineDocument wraps raw YAML/JSON in a Document for table tests.
func InlineDocument(t *testing.T, raw string) pkgopenapi.Document {
	t.Helper()

	doc, err := pkgopenapi.NewDocument(pkgopenapi.SourceFromFile("inline.yaml"), []byte(raw))
	if err != nil {
		t.Fatalf("inline document: %v", err)
	}
	return doc
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
