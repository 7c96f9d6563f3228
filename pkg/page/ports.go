package page

import (
	"context"

	"github.com/goliatone/go-certform/pkg/certification"
)

// Repository stores and retrieves records.
type Repository interface {
	Save(ctx context.Context, rec certification.Record) error
	Find(ctx context.Context, rec certification.Record) error
	Refresh(ctx context.Context) error
}

// Exporter produces a document file from a record.
type Exporter interface {
	ExportPDF(ctx context.Context, rec certification.Record) error
}

// Printer prepares a record for printing.
type Printer interface {
	Print(ctx context.Context, rec certification.Record) error
}

// NopRepository acknowledges every call without storing anything.
type NopRepository struct{}

func (NopRepository) Save(context.Context, certification.Record) error { return nil }
func (NopRepository) Find(context.Context, certification.Record) error { return nil }
func (NopRepository) Refresh(context.Context) error                     { return nil }

// NopExporter acknowledges export requests.
type NopExporter struct{}

func (NopExporter) ExportPDF(context.Context, certification.Record) error { return nil }

// NopPrinter acknowledges print requests; printing happens client side.
type NopPrinter struct{}

func (NopPrinter) Print(context.Context, certification.Record) error { return nil }
