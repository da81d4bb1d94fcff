package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lbarroso/conjugar/internal/scheduler"
	"github.com/lbarroso/conjugar/internal/wronglog"
)

func newResetCommand() *cobra.Command {
	var force bool

	command := &cobra.Command{
		Use:   "reset",
		Short: "Delete all practice progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				fmt.Fprint(cmd.OutOrStdout(), "This deletes all practice progress. Continue? (y/N): ")
				input, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && !errors.Is(err, io.EOF) {
					return fmt.Errorf("error reading confirmation input: %w", err)
				}
				if !strings.EqualFold(strings.TrimSpace(input), "y") {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}

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

			scheduler.NewLedger(store).Clear()
			wronglog.NewLog(store).Clear()
			fmt.Fprintln(cmd.OutOrStdout(), "Practice progress cleared.")
			return nil
		},
	}

	command.Flags().BoolVar(&force, "force", false, "Skip the confirmation prompt")
	return command
}
