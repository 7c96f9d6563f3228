package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	certform "github.com/goliatone/go-certform"
	"github.com/goliatone/go-certform/internal/lint"
	pkgopenapi "github.com/goliatone/go-certform/pkg/openapi"
)

var lintCmd = &cobra.Command{
	Use:   "lint [paths...]",
	Short: "Check OpenAPI documents for unsupported x-formgen extensions",
	Long: `Lints the given OpenAPI documents, or the embedded certification schema
when no path is given. Exits non-zero when a violation is found.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		parser := certform.NewParser(pkgopenapi.WithReferenceResolution(false))

		var docs []pkgopenapi.Document
		if len(args) == 0 {
			doc, err := embeddedDocument(ctx)
			if err != nil {
				return err
			}
			docs = append(docs, doc)
		}
		for _, path := range args {
			raw, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("lint %s: %w", path, err)
			}
			doc, err := pkgopenapi.NewDocument(pkgopenapi.SourceFromFile(path), raw)
			if err != nil {
				return fmt.Errorf("lint %s: %w", path, err)
			}
			docs = append(docs, doc)
		}

		var count int
		for _, doc := range docs {
			violations, err := lint.Document(ctx, parser, doc)
			if err != nil {
				return fmt.Errorf("lint %s: %w", doc.Location(), err)
			}
			for _, v := range violations {
				fmt.Fprintln(cmd.ErrOrStderr(), color.YellowString(v.String()))
			}
			count += len(violations)
		}
		if count > 0 {
			return fmt.Errorf("%d unsupported extension(s)", count)
		}
		fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("ok"))
		return nil
	},
}

func embeddedDocument(ctx context.Context) (pkgopenapi.Document, error) {
	loader := certform.NewLoader(pkgopenapi.WithFileSystem(certform.SchemaFS()))
	return loader.Load(ctx, certform.DefaultSource())
}
