package page

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/goliatone/go-certform/pkg/certification"
)

// Option configures a Controller.
type Option func(*Controller)

// WithRecord sets the initial record. The default is certification.Sample.
func WithRecord(rec certification.Record) Option {
	return func(c *Controller) {
		c.record = rec
	}
}

// WithRepository replaces the acknowledging repository.
func WithRepository(repo Repository) Option {
	return func(c *Controller) {
		if repo != nil {
			c.repo = repo
		}
	}
}

// WithExporter replaces the acknowledging PDF exporter.
func WithExporter(exporter Exporter) Option {
	return func(c *Controller) {
		if exporter != nil {
			c.exporter = exporter
		}
	}
}

// WithPrinter replaces the acknowledging printer.
func WithPrinter(printer Printer) Option {
	return func(c *Controller) {
		if printer != nil {
			c.printer = printer
		}
	}
}

// WithLogger sets the logger used for dispatched actions.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.log = logger
		}
	}
}

// Controller holds the record of one page. All methods are safe for
// concurrent use; reads observe the latest write.
type Controller struct {
	mu     sync.RWMutex
	record certification.Record

	repo     Repository
	exporter Exporter
	printer  Printer
	log      *slog.Logger
}

// NewController returns a controller seeded with the sample record.
func NewController(options ...Option) *Controller {
	c := &Controller{
		record:   certification.Sample(),
		repo:     NopRepository{},
		exporter: NopExporter{},
		printer:  NopPrinter{},
		log:      slog.Default(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Record returns the current record.
func (c *Controller) Record() certification.Record {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.record
}

// Apply replaces one field. A rejected value leaves the record unchanged and
// returns a *certification.FieldError.
func (c *Controller) Apply(p certification.Patch) (certification.Record, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next, err := certification.Apply(c.record, p)
	if err != nil {
		return c.record, err
	}
	c.record = next
	return next, nil
}

// Value returns the text of a field by name. Unknown names read as empty.
func (c *Controller) Value(field string) string {
	return c.Record().Value(certification.Field(field))
}

// Set applies a single-field patch by name. Together with Value it lets
// name-based editors such as the terminal form drive the controller.
func (c *Controller) Set(field, value string) error {
	_, err := c.Apply(certification.Patch{Field: certification.Field(field), Value: value})
	return err
}

// ApplyAll applies patches in order, keeping those before the first rejected
// one.
func (c *Controller) ApplyAll(patches ...certification.Patch) (certification.Record, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, p := range patches {
		next, err := certification.Apply(c.record, p)
		if err != nil {
			return c.record, err
		}
		c.record = next
	}
	return c.record, nil
}

// Dispatch runs a toolbar action and returns the notification to show. A
// failing port yields an error-level notification and the port error.
func (c *Controller) Dispatch(ctx context.Context, action Action) (Notification, error) {
	rec := c.Record()
	c.log.DebugContext(ctx, "dispatch page action", slog.String("action", string(action)))

	var (
		note Notification
		err  error
	)
	switch action {
	case ActionNew:
		c.mu.Lock()
		c.record = certification.Empty()
		c.mu.Unlock()
		note = Notification{Level: LevelSuccess, Message: "New record form cleared", Directive: DirectiveReloadForm}
	case ActionSave:
		err = c.repo.Save(ctx, rec)
		note = Notification{Level: LevelSuccess, Message: "Record saved successfully"}
	case ActionFind:
		err = c.repo.Find(ctx, rec)
		note = Notification{Level: LevelInfo, Message: "Search functionality - Coming soon"}
	case ActionRefresh:
		err = c.repo.Refresh(ctx)
		note = Notification{Level: LevelInfo, Message: "Data refreshed"}
	case ActionPreview:
		err = c.printer.Print(ctx, rec)
		note = Notification{Level: LevelInfo, Message: "Opening print preview...", Directive: DirectivePrint}
	case ActionPDF:
		err = c.exporter.ExportPDF(ctx, rec)
		note = Notification{Level: LevelSuccess, Message: "Generating PDF..."}
	case ActionClose:
		note = Notification{Level: LevelInfo, Message: "Form closed"}
	default:
		return Notification{}, fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
	note.Action = action

	if err != nil {
		c.log.ErrorContext(ctx, "page action failed", slog.String("action", string(action)), slog.Any("error", err))
		return Notification{Action: action, Level: LevelError, Message: fmt.Sprintf("%s failed", action.Label())}, fmt.Errorf("page: %s: %w", action, err)
	}
	return note, nil
}
