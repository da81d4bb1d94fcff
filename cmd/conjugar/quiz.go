package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/lbarroso/conjugar/internal/cli"
	"github.com/lbarroso/conjugar/internal/quiz"
	"github.com/lbarroso/conjugar/internal/scheduler"
	"github.com/lbarroso/conjugar/internal/verbs"
	"github.com/lbarroso/conjugar/internal/wronglog"
)

type Regularity string

func (r *Regularity) Set(val string) error {
	for _, regularity := range allRegularities {
		if val == string(regularity) {
			*r = regularity
			return nil
		}
	}
	return fmt.Errorf("invalid regularity: %s", val)
}

func (r Regularity) String() string {
	return string(r)
}

func (r *Regularity) Type() string {
	return "Regularity"
}

var (
	_               pflag.Value = (*Regularity)(nil)
	allRegularities             = []Regularity{verbs.RegularityAll, verbs.RegularityRegular, verbs.RegularityIrregular}
)

func newQuizCommand() *cobra.Command {
	var (
		pronouns           []string
		tenses             []string
		regularity         Regularity
		ratio              float64
		noSpacedRepetition bool
		reviewIntervalDays int
	)

	command := &cobra.Command{
		Use:   "quiz",
		Short: "Start an interactive conjugation practice session",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			settings := cfg.Quiz.Settings()
			patch := quiz.Patch{}
			if cmd.Flags().Changed("pronouns") {
				selection, err := selectionPatch(settings.Pronouns, pronouns)
				if err != nil {
					return fmt.Errorf("--pronouns: %w", err)
				}
				patch.Pronouns = selection
			}
			if cmd.Flags().Changed("tenses") {
				selection, err := selectionPatch(settings.Tenses, tenses)
				if err != nil {
					return fmt.Errorf("--tenses: %w", err)
				}
				patch.Tenses = selection
			}
			if cmd.Flags().Changed("regularity") {
				value := string(regularity)
				patch.Regularity = &value
			}
			if cmd.Flags().Changed("ratio") {
				if ratio < 0 || ratio > 1 {
					return fmt.Errorf("--ratio must be between 0 and 1")
				}
				patch.RegularIrregularRatio = &ratio
			}
			if noSpacedRepetition || cmd.Flags().Changed("review-interval-days") {
				if reviewIntervalDays < 1 {
					return fmt.Errorf("--review-interval-days must be at least 1")
				}
				spacedRepetition := settings.SpacedRepetition
				if noSpacedRepetition {
					spacedRepetition.Enabled = false
				}
				if cmd.Flags().Changed("review-interval-days") {
					spacedRepetition.ReviewIntervalDays = reviewIntervalDays
				}
				patch.SpacedRepetition = &spacedRepetition
			}
			settings = settings.Merge(patch)

			repository, err := verbs.NewRepository(cfg.Dataset.Path)
			if err != nil {
				return fmt.Errorf("verbs.NewRepository() > %w", err)
			}

			store, err := openStore(cfg)
			if err != nil {
				return fmt.Errorf("openStore() > %w", err)
			}
			defer func() {
				_ = store.Close()
			}()

			ledger := scheduler.NewLedger(store)
			wrongLog := wronglog.NewLog(store)
			generator := quiz.NewGenerator(repository.List(), settings, ledger, rand.New(rand.NewSource(time.Now().UnixNano())))
			engine := quiz.NewEngine(generator, ledger, wrongLog, settings)
			session := cli.NewQuizSession(engine)

			fmt.Println("Conjugation practice session started!")
			fmt.Println("Type the conjugated form. Type 'quit' to exit.")
			fmt.Println()
			return session.Run(cmd.Context(), session)
		},
	}

	flags := command.Flags()
	flags.StringSliceVar(&pronouns, "pronouns", nil, "Practice only these pronouns (eu, tu, voce, nos, voces)")
	flags.StringSliceVar(&tenses, "tenses", nil, "Practice only these tenses (e.g. presentIndicative, imperative)")
	flags.Var(&regularity, "regularity", fmt.Sprintf("Restrict verbs to a regularity. Possible values are %v", allRegularities))
	flags.Float64Var(&ratio, "ratio", quiz.DefaultRegularRatio, "Probability of drawing a regular verb when practicing all verbs")
	flags.BoolVar(&noSpacedRepetition, "no-spaced-repetition", false, "Disable spaced repetition scheduling")
	flags.IntVar(&reviewIntervalDays, "review-interval-days", 1, "Days before a missed conjugation is asked again")

	return command
}
