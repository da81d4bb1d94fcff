package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/lbarroso/conjugar/internal/cli"
	"github.com/lbarroso/conjugar/internal/config"
	"github.com/lbarroso/conjugar/internal/wronglog"
)

func newWrongCommand() *cobra.Command {
	wrongCommand := &cobra.Command{
		Use:   "wrong",
		Short: "Review the conjugations you answered incorrectly",
	}

	wrongCommand.AddCommand(newWrongListCommand())
	wrongCommand.AddCommand(newWrongExportCommand())
	wrongCommand.AddCommand(newWrongClearCommand())

	return wrongCommand
}

func newWrongListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recorded wrong answers, oldest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			return runWrongList(cfg, cmd.OutOrStdout())
		},
	}
}

func runWrongList(cfg *config.Config, w io.Writer) error {
	store, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("openStore() > %w", err)
	}
	defer func() {
		_ = store.Close()
	}()

	records := wronglog.NewLog(store).List()
	if len(records) == 0 {
		fmt.Fprintln(w, "No wrong answers recorded.")
		return nil
	}
	for _, record := range records {
		fmt.Fprintf(w, "%s  %s (%s, %s): answered %q, correct %q\n",
			record.Timestamp.Format("2006-01-02 15:04"),
			record.Verb,
			cli.PronounName(record.Pronoun),
			cli.TenseName(record.Tense),
			record.UserAnswer,
			record.CorrectAnswer)
	}
	return nil
}

func newWrongExportCommand() *cobra.Command {
	var output string

	command := &cobra.Command{
		Use:   "export",
		Short: "Export the wrong answer log as JSON",
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

			contents, err := wronglog.NewLog(store).Export()
			if err != nil {
				return fmt.Errorf("wrongLog.Export() > %w", err)
			}
			return writeOrPrint(contents, output)
		},
	}

	command.Flags().StringVar(&output, "output", "", "Write JSON to this file instead of stdout")
	return command
}

func newWrongClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded wrong answers",
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

			wronglog.NewLog(store).Clear()
			fmt.Fprintln(cmd.OutOrStdout(), "Wrong answer log cleared.")
			return nil
		},
	}
}
