package page_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-certform/pkg/certification"
	"github.com/goliatone/go-certform/pkg/page"
)

func TestNewControllerStartsWithSample(t *testing.T) {
	c := page.NewController()
	if diff := cmp.Diff(certification.Sample(), c.Record()); diff != "" {
		t.Fatalf("initial record mismatch (-want +got):\n%s", diff)
	}
}

func TestDispatchNotifications(t *testing.T) {
	cases := []struct {
		action page.Action
		want   page.Notification
	}{
		{page.ActionNew, page.Notification{Action: page.ActionNew, Level: page.LevelSuccess, Message: "New record form cleared", Directive: page.DirectiveReloadForm}},
		{page.ActionSave, page.Notification{Action: page.ActionSave, Level: page.LevelSuccess, Message: "Record saved successfully"}},
		{page.ActionFind, page.Notification{Action: page.ActionFind, Level: page.LevelInfo, Message: "Search functionality - Coming soon"}},
		{page.ActionRefresh, page.Notification{Action: page.ActionRefresh, Level: page.LevelInfo, Message: "Data refreshed"}},
		{page.ActionPreview, page.Notification{Action: page.ActionPreview, Level: page.LevelInfo, Message: "Opening print preview...", Directive: page.DirectivePrint}},
		{page.ActionPDF, page.Notification{Action: page.ActionPDF, Level: page.LevelSuccess, Message: "Generating PDF..."}},
		{page.ActionClose, page.Notification{Action: page.ActionClose, Level: page.LevelInfo, Message: "Form closed"}},
	}
	for _, tc := range cases {
		t.Run(string(tc.action), func(t *testing.T) {
			got, err := page.NewController().Dispatch(context.Background(), tc.action)
			if err != nil {
				t.Fatalf("dispatch: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("notification mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNewRecordClearsEveryField(t *testing.T) {
	c := page.NewController()
	if _, err := c.Apply(certification.Patch{Field: certification.FieldSurname, Value: "CRUZ"}); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if _, err := c.Dispatch(context.Background(), page.ActionNew); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if !c.Record().IsEmpty() {
		t.Fatalf("expected empty record, got %+v", c.Record())
	}
}

func TestStubActionsLeaveRecordUntouched(t *testing.T) {
	c := page.NewController()
	for _, action := range []page.Action{page.ActionSave, page.ActionFind, page.ActionRefresh, page.ActionPreview, page.ActionPDF, page.ActionClose} {
		if _, err := c.Dispatch(context.Background(), action); err != nil {
			t.Fatalf("dispatch %s: %v", action, err)
		}
	}
	if diff := cmp.Diff(certification.Sample(), c.Record()); diff != "" {
		t.Fatalf("record changed (-want +got):\n%s", diff)
	}
}

func TestApplyRejectsInvalidValue(t *testing.T) {
	c := page.NewController()
	before := c.Record()

	_, err := c.Apply(certification.Patch{Field: certification.FieldPurpose, Value: "VACATION"})
	if !errors.Is(err, certification.ErrInvalidOption) {
		t.Fatalf("expected ErrInvalidOption, got %v", err)
	}
	if diff := cmp.Diff(before, c.Record()); diff != "" {
		t.Fatalf("record changed after rejected patch (-want +got):\n%s", diff)
	}
}

func TestApplyAllKeepsPatchesBeforeFailure(t *testing.T) {
	c := page.NewController(page.WithRecord(certification.Empty()))
	_, err := c.ApplyAll(
		certification.Patch{Field: certification.FieldFirstname, Value: "ANA"},
		certification.Patch{Field: certification.FieldAge, Value: "x"},
		certification.Patch{Field: certification.FieldSurname, Value: "REYES"},
	)
	if err == nil {
		t.Fatalf("expected error")
	}
	rec := c.Record()
	if rec.Firstname != "ANA" || rec.Surname != "" {
		t.Fatalf("unexpected record %+v", rec)
	}
}

type failingRepo struct{ page.NopRepository }

func (failingRepo) Save(context.Context, certification.Record) error {
	return errors.New("disk full")
}

func TestDispatchReportsPortFailure(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))

	c := page.NewController(page.WithRepository(failingRepo{}), page.WithLogger(logger))
	note, err := c.Dispatch(context.Background(), page.ActionSave)
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("expected port error, got %v", err)
	}
	if note.Level != page.LevelError || note.Message != "Save failed" {
		t.Fatalf("unexpected notification %+v", note)
	}
	if !strings.Contains(logs.String(), "page action failed") {
		t.Fatalf("expected failure to be logged, got %s", logs.String())
	}
}

type recordingPorts struct {
	printed  []string
	exported []string
}

func (r *recordingPorts) Print(_ context.Context, rec certification.Record) error {
	r.printed = append(r.printed, rec.Surname)
	return nil
}

func (r *recordingPorts) ExportPDF(_ context.Context, rec certification.Record) error {
	r.exported = append(r.exported, rec.Surname)
	return nil
}

func TestDispatchHandsRecordToPorts(t *testing.T) {
	ports := &recordingPorts{}
	c := page.NewController(page.WithPrinter(ports), page.WithExporter(ports))
	if _, err := c.Apply(certification.Patch{Field: certification.FieldSurname, Value: "CRUZ"}); err != nil {
		t.Fatalf("apply: %v", err)
	}

	if _, err := c.Dispatch(context.Background(), page.ActionPreview); err != nil {
		t.Fatalf("preview: %v", err)
	}
	if _, err := c.Dispatch(context.Background(), page.ActionPDF); err != nil {
		t.Fatalf("pdf: %v", err)
	}
	if diff := cmp.Diff([]string{"CRUZ"}, ports.printed); diff != "" {
		t.Fatalf("printed mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"CRUZ"}, ports.exported); diff != "" {
		t.Fatalf("exported mismatch (-want +got):\n%s", diff)
	}
}

func TestDispatchUnknownAction(t *testing.T) {
	_, err := page.NewController().Dispatch(context.Background(), page.Action("print"))
	if !errors.Is(err, page.ErrUnknownAction) {
		t.Fatalf("expected ErrUnknownAction, got %v", err)
	}
}

func TestParseAction(t *testing.T) {
	for _, action := range page.Actions() {
		got, err := page.ParseAction(string(action))
		if err != nil || got != action {
			t.Fatalf("ParseAction(%q) = %q, %v", action, got, err)
		}
	}
	if _, err := page.ParseAction("delete"); !errors.Is(err, page.ErrUnknownAction) {
		t.Fatalf("expected ErrUnknownAction, got %v", err)
	}
}

func TestControllerConcurrentAccess(t *testing.T) {
	c := page.NewController()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = c.Apply(certification.Patch{Field: certification.FieldStreet, Value: "Rizal St."})
		}()
		go func() {
			defer wg.Done()
			_ = c.Record()
		}()
	}
	wg.Wait()
	if c.Record().Street != "Rizal St." {
		t.Fatalf("expected last write to be visible")
	}
}

func TestControllerEditsByName(t *testing.T) {
	c := page.NewController()

	if got := c.Value("surname"); got != "MANZANO" {
		t.Fatalf("Value(surname) = %q", got)
	}
	if err := c.Set("surname", "CRUZ"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := c.Value("surname"); got != "CRUZ" {
		t.Fatalf("Value after Set = %q", got)
	}
	if err := c.Set("registeredVoter", "Maybe"); !errors.Is(err, certification.ErrInvalidOption) {
		t.Fatalf("expected ErrInvalidOption, got %v", err)
	}
	if got := c.Value("nickname"); got != "" {
		t.Fatalf("unknown field should read empty, got %q", got)
	}
}
