package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	configFile string
	debugMode  bool
)

func setupLogger(debugMode bool) {
	level := slog.LevelInfo
	if debugMode {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

func newRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:           "conjugar",
		Short:         "Practice Portuguese verb conjugations in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger(debugMode)
		},
	}

	flags := rootCommand.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "Path to the configuration file")
	flags.BoolVar(&debugMode, "debug", false, "Enable debug logging")

	rootCommand.AddCommand(newQuizCommand())
	rootCommand.AddCommand(newStatsCommand())
	rootCommand.AddCommand(newWrongCommand())
	rootCommand.AddCommand(newExportCommand())
	rootCommand.AddCommand(newReportCommand())
	rootCommand.AddCommand(newDatasetCommand())
	rootCommand.AddCommand(newResetCommand())

	return rootCommand
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
