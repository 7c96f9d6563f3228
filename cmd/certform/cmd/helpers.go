package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/goliatone/go-certform/pkg/certification"
	"github.com/goliatone/go-certform/pkg/page"
	"github.com/goliatone/go-certform/pkg/preview"
)

// loadRecord reads a YAML record, or returns the sample record when path is
// empty.
func loadRecord(path string, empty bool) (certification.Record, error) {
	switch {
	case path != "":
		return certification.LoadYAML(path)
	case empty:
		return certification.Empty(), nil
	default:
		return certification.Sample(), nil
	}
}

func newPreviewRenderer() (*preview.Renderer, error) {
	options := []preview.Option{
		preview.WithLocality(preview.Locality{Barangay: cfg.Locality.Barangay, City: cfg.Locality.City}),
	}
	if cfg.Preview.QR {
		options = append(options, preview.WithQRCode(cfg.Preview.QRSize))
	}
	return preview.NewRenderer(options...)
}

func printNotification(w io.Writer, note page.Notification) {
	paint := color.New(color.FgCyan)
	switch note.Level {
	case page.LevelSuccess:
		paint = color.New(color.FgGreen)
	case page.LevelError:
		paint = color.New(color.FgRed)
	}
	_, _ = paint.Fprintf(w, "[%s] %s\n", note.Action.Label(), note.Message)
}

func writeOutput(w io.Writer, data []byte) error {
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		_, err := io.WriteString(w, "\n")
		return err
	}
	return nil
}
