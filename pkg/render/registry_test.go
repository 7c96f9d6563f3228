package render_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-certform/pkg/model"
	"github.com/goliatone/go-certform/pkg/render"
)

type stubRenderer struct{ name string }

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return "text/plain" }
func (s stubRenderer) Render(context.Context, model.FormModel, render.RenderOptions) ([]byte, error) {
	return []byte(s.name), nil
}

func TestRegistryRegisterAndList(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(stubRenderer{name: "vanilla"})
	registry.MustRegister(stubRenderer{name: "tui"})

	if err := registry.Register(stubRenderer{name: "tui"}); err == nil {
		t.Fatalf("expected duplicate registration to fail")
	}
	if err := registry.Register(stubRenderer{}); err == nil {
		t.Fatalf("expected empty name to fail")
	}
	if diff := cmp.Diff([]string{"tui", "vanilla"}, registry.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
	if !registry.Has("vanilla") || registry.Has("pdf") {
		t.Fatalf("unexpected Has results")
	}
	if _, err := registry.Get("pdf"); err == nil {
		t.Fatalf("expected missing renderer error")
	}
}

func TestRenderOptionsValue(t *testing.T) {
	var empty render.RenderOptions
	if empty.Value("surname") != "" {
		t.Fatalf("expected empty value")
	}
	opts := render.RenderOptions{Values: map[string]string{"surname": "CRUZ"}}
	if opts.Value("surname") != "CRUZ" {
		t.Fatalf("expected prefilled value")
	}
}
