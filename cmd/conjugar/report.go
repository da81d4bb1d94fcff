package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lbarroso/conjugar/internal/cli"
	"github.com/lbarroso/conjugar/internal/pdf"
	"github.com/lbarroso/conjugar/internal/scheduler"
	"github.com/lbarroso/conjugar/internal/stats"
	"github.com/lbarroso/conjugar/internal/wronglog"
)

func newReportCommand() *cobra.Command {
	var pdfPath string

	command := &cobra.Command{
		Use:   "report",
		Short: "Build a markdown progress report, optionally rendered as PDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			store, err := openStore(cfg)
			if err != nil {
				return fmt.Errorf("openStore() > %w", err)
			}
			defer func() {
				_ = store.Close()
			}()

			entries := scheduler.NewLedger(store).Entries()
			now := time.Now()
			report := cli.BuildProgressReport(
				stats.Summarize(entries, now),
				stats.ByTense(entries),
				wronglog.NewLog(store).List(),
				now,
			)

			if pdfPath == "" {
				fmt.Fprint(cmd.OutOrStdout(), report)
				return nil
			}

			written, err := pdf.WriteMarkdownAsPDF([]byte(report), pdfPath)
			if err != nil {
				return fmt.Errorf("pdf.WriteMarkdownAsPDF() > %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", written)
			return nil
		},
	}

	command.Flags().StringVar(&pdfPath, "pdf", "", "Write the report as a PDF to this path")
	return command
}
