package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lbarroso/conjugar/internal/scheduler"
)

func newExportCommand() *cobra.Command {
	var output string

	command := &cobra.Command{
		Use:   "export",
		Short: "Export the spaced repetition ledger as JSON",
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

			contents, err := scheduler.NewLedger(store).Export()
			if err != nil {
				return fmt.Errorf("ledger.Export() > %w", err)
			}
			return writeOrPrint(contents, output)
		},
	}

	command.Flags().StringVar(&output, "output", "", "Write JSON to this file instead of stdout")
	return command
}
