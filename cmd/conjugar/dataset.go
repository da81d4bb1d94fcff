package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lbarroso/conjugar/internal/verbs"
)

func newDatasetCommand() *cobra.Command {
	datasetCommand := &cobra.Command{
		Use:   "dataset",
		Short: "Manage the local verb dataset",
	}

	datasetCommand.AddCommand(newDatasetFetchCommand())
	datasetCommand.AddCommand(newDatasetListCommand())

	return datasetCommand
}

func newDatasetFetchCommand() *cobra.Command {
	var url string

	command := &cobra.Command{
		Use:   "fetch",
		Short: "Download the verb dataset to the configured path",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			fetchURL := cfg.Dataset.URL
			if url != "" {
				fetchURL = url
			}
			if fetchURL == "" {
				return fmt.Errorf("no dataset URL configured; set dataset.url, CONJUGAR_DATASET_URL or pass --url")
			}

			fetcher := verbs.NewFetcher()
			defer func() {
				_ = fetcher.Close()
			}()

			if err := fetcher.Fetch(cmd.Context(), fetchURL, cfg.Dataset.Path); err != nil {
				return fmt.Errorf("fetcher.Fetch() > %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Dataset saved to %s\n", cfg.Dataset.Path)
			return nil
		},
	}

	command.Flags().StringVar(&url, "url", "", "Dataset URL, overriding the configured one")
	return command
}

func newDatasetListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the verbs in the local dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			repository, err := verbs.NewRepository(cfg.Dataset.Path)
			if err != nil {
				return fmt.Errorf("verbs.NewRepository() > %w", err)
			}

			for _, verb := range repository.List() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%s) [%s]\n", verb.Infinitive, verb.Translation, verb.Regularity)
			}
			return nil
		},
	}
}
