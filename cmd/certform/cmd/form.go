package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	certform "github.com/goliatone/go-certform"
	"github.com/goliatone/go-certform/pkg/orchestrator"
)

var (
	formFormat string
	formRecord string
	formAction string
)

var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Print the certification form model or its HTML fragment",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		switch formFormat {
		case "json", "":
			form, err := certform.FormModel(ctx)
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(form, "", "  ")
			if err != nil {
				return fmt.Errorf("encode form model: %w", err)
			}
			return writeOutput(cmd.OutOrStdout(), out)
		case "html":
			rec, err := loadRecord(formRecord, false)
			if err != nil {
				return err
			}
			out, err := certform.NewOrchestrator().Generate(ctx, orchestrator.Request{
				Source:      certform.DefaultSource(),
				OperationID: certform.OperationID,
				RenderOptions: certform.RenderOptions{
					Action: formAction,
					Values: rec.Values(),
				},
			})
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), out)
		default:
			return fmt.Errorf("unsupported format %q (want json or html)", formFormat)
		}
	},
}

func init() {
	formCmd.Flags().StringVar(&formFormat, "format", "json", "output format: json or html")
	formCmd.Flags().StringVar(&formRecord, "record", "", "YAML record used to prefill the html form")
	formCmd.Flags().StringVar(&formAction, "action", "", "form action URL for the html form")
}
