package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	previewRecord string
	previewFormat string
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render the certificate for a record",
	Example: `  certform preview
  certform preview --record juan.yaml --format html --qr > juan.html`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		rec, err := loadRecord(previewRecord, false)
		if err != nil {
			return err
		}
		renderer, err := newPreviewRenderer()
		if err != nil {
			return err
		}

		var out []byte
		switch previewFormat {
		case "text", "":
			out, err = renderer.Text(cmd.Context(), rec)
		case "html":
			out, err = renderer.HTML(cmd.Context(), rec)
		default:
			return fmt.Errorf("unsupported format %q (want text or html)", previewFormat)
		}
		if err != nil {
			return err
		}
		return writeOutput(cmd.OutOrStdout(), out)
	},
}

func init() {
	previewCmd.Flags().StringVar(&previewRecord, "record", "", "YAML record to render (defaults to the sample record)")
	previewCmd.Flags().StringVar(&previewFormat, "format", "text", "output format: text or html")
	previewCmd.Flags().Bool("qr", false, "include a verification QR code (html only)")
}
