package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	certform "github.com/goliatone/go-certform"
	"github.com/goliatone/go-certform/pkg/certification"
	"github.com/goliatone/go-certform/pkg/page"
	"github.com/goliatone/go-certform/pkg/renderers/tui"
)

var (
	fillRecord  string
	fillEmpty   bool
	fillOut     string
	fillActions []string
)

var fillCmd = &cobra.Command{
	Use:   "fill",
	Short: "Fill the certification form in the terminal",
	Long: `Prompts for every field, starting from the sample record (or --record),
then prints the certificate. Rejected values are asked again.

--then runs toolbar actions on the filled record, for example --then save,pdf.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		actions := make([]page.Action, 0, len(fillActions))
		for _, name := range fillActions {
			action, err := page.ParseAction(strings.TrimSpace(name))
			if err != nil {
				return err
			}
			actions = append(actions, action)
		}

		start, err := loadRecord(fillRecord, fillEmpty)
		if err != nil {
			return err
		}
		ctrl := page.NewController(page.WithRecord(start), page.WithLogger(log))

		form, err := certform.FormModel(ctx)
		if err != nil {
			return err
		}
		prompts, err := tui.New(tui.WithInfoWriter(cmd.ErrOrStderr()))
		if err != nil {
			return err
		}
		if err := prompts.Fill(ctx, form, ctrl); err != nil {
			return err
		}

		rec := ctrl.Record()
		if fillOut != "" {
			f, err := os.Create(fillOut)
			if err != nil {
				return fmt.Errorf("create %s: %w", fillOut, err)
			}
			if err := certification.EncodeYAML(f, rec); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
		}

		renderer, err := newPreviewRenderer()
		if err != nil {
			return err
		}
		text, err := renderer.Text(ctx, rec)
		if err != nil {
			return err
		}
		if err := writeOutput(cmd.OutOrStdout(), text); err != nil {
			return err
		}

		for _, action := range actions {
			note, err := ctrl.Dispatch(ctx, action)
			printNotification(cmd.ErrOrStderr(), note)
			if err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	fillCmd.Flags().StringVar(&fillRecord, "record", "", "YAML record to start from")
	fillCmd.Flags().BoolVar(&fillEmpty, "empty", false, "start from an empty record instead of the sample")
	fillCmd.Flags().StringVarP(&fillOut, "out", "o", "", "write the filled record as YAML to this file")
	fillCmd.Flags().StringSliceVar(&fillActions, "then", nil, "actions to run after filling (new, save, find, refresh, preview, pdf, close)")
}
