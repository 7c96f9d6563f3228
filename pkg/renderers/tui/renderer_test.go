package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-certform/pkg/model"
	"github.com/goliatone/go-certform/pkg/render"
)

type stubDriver struct {
	inputs       []string
	selectIdx    []int
	infoMessages []string
	inputPos     int
	selectPos    int
	selectCfgs   []SelectConfig
	inputCfgs    []InputConfig
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.inputCfgs = append(s.inputCfgs, cfg)
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	s.selectCfgs = append(s.selectCfgs, cfg)
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func testForm() model.FormModel {
	return model.FormModel{
		Fields: []model.Field{
			{Name: "surname", Type: model.FieldTypeString, Label: "Surname"},
			{Name: "prefix", Type: model.FieldTypeString, Label: "Prefix", Enum: []string{"MS.", "MR.", "MRS."}},
			{Name: "age", Type: model.FieldTypeInteger, Label: "Age"},
		},
	}
}

func TestRenderCollectsAnswers(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"CRUZ", "30"},
		selectIdx: []int{2},
	}
	r, err := New(WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := r.Render(context.Background(), testForm(), render.RenderOptions{
		Values: map[string]string{"prefix": "MS."},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != `{"age":"30","prefix":"MR.","surname":"CRUZ"}` {
		t.Fatalf("unexpected output %s", out)
	}

	want := SelectConfig{Message: "Prefix", Options: []string{noneOption, "MS.", "MR.", "MRS."}, DefaultIndex: 1}
	if diff := cmp.Diff(want, driver.selectCfgs[0]); diff != "" {
		t.Fatalf("select config mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderRepromptsRejectedValues(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"CRUZ", "thirty", "30"},
		selectIdx: []int{0},
	}
	validate := func(field, value string) error {
		if field == "age" && strings.Trim(value, "0123456789") != "" {
			return errors.New("must be a whole number")
		}
		return nil
	}
	r, err := New(WithPromptDriver(driver), WithValidator(validate), WithOutputFormat(OutputFormatYAML))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := r.Render(context.Background(), testForm(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(driver.infoMessages) != 1 || !strings.Contains(driver.infoMessages[0], "Invalid Age") {
		t.Fatalf("expected one rejection message, got %v", driver.infoMessages)
	}
	want := "surname: CRUZ\nprefix: \"\"\nage: \"30\"\n"
	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Fatalf("yaml mismatch (-want +got):\n%s", diff)
	}
}

func TestFillStopsAfterMaxAttempts(t *testing.T) {
	driver := &stubDriver{inputs: []string{"x", "y"}}
	r, err := New(WithPromptDriver(driver), WithMaxAttempts(2))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	state := NewState(nil, func(string, string) error { return errors.New("nope") })

	form := model.FormModel{Fields: []model.Field{{Name: "surname"}}}
	err = r.Fill(context.Background(), form, state)
	if !errors.Is(err, ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

func TestRenderPrettyOutput(t *testing.T) {
	driver := &stubDriver{inputs: []string{"CRUZ", ""}, selectIdx: []int{3}}
	r, err := New(WithPromptDriver(driver), WithOutputFormat(OutputFormatPretty))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	out, err := r.Render(context.Background(), testForm(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := "Surname:  CRUZ\nPrefix:   MRS.\nAge:      -\n"
	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Fatalf("pretty mismatch (-want +got):\n%s", diff)
	}
	if r.ContentType() != "text/plain; charset=utf-8" {
		t.Fatalf("unexpected content type %q", r.ContentType())
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(WithPromptDriver(&stubDriver{}), WithOutputFormat("xml")); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func TestFillHonoursCancelledContext(t *testing.T) {
	r, err := New(WithPromptDriver(&stubDriver{}))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := r.Fill(ctx, testForm(), NewState(nil, nil)); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
