package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tbourn/holistiq/internal/config"
	"github.com/tbourn/holistiq/internal/export"
	"github.com/tbourn/holistiq/internal/repo"
)

func newExportCmd(a *app) *cobra.Command {
	var format, out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export tracked records",
		Long: `Export BMI, workout and meditation records from the configured store.

FORMATS:

  json   every record, indented
  yaml   every record
  pdf    the newest 20 records per category

OPTIONS:

  --format, -f   json, yaml or pdf (default json)
  --out, -o      output path; "-" writes to stdout. Defaults to
                 health_report_YYYYMMDD_HHMMSS.<ext> in the working directory.

EXAMPLES:

  holistiq export -f pdf
  holistiq export -f yaml -o records.yaml
  STORE_DRIVER=sqlite DB_PATH=./holistiq.db holistiq export -o -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()

			doc, err := exportRecords(ctx, a.cfg.Store, format)
			if err != nil {
				return err
			}
			if out == "-" {
				_, err := cmd.OutOrStdout().Write(doc.Body)
				return err
			}
			if out == "" {
				out = doc.Name
			}
			if err := os.WriteFile(out, doc.Body, 0o600); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("✓ Exported to %s", out))
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "json, yaml or pdf")
	cmd.Flags().StringVarP(&out, "out", "o", "", `output file ("-" for stdout)`)
	return cmd
}

func exportRecords(ctx context.Context, cfg config.StoreConfig, format string) (*export.Document, error) {
	store := repo.Open(ctx, cfg)
	defer func() { _ = store.Close(ctx) }()
	if !store.Available() {
		return nil, fmt.Errorf("export: %w", repo.ErrStoreUnavailable)
	}
	doc, err := export.New(store).Render(ctx, format)
	if err != nil {
		return nil, fmt.Errorf("export failed: %w", err)
	}
	return doc, nil
}
