package config

import (
	"fmt"
	"path/filepath"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/lbarroso/conjugar/internal/quiz"
)

type Config struct {
	Dataset DatasetConfig `mapstructure:"dataset"`
	Storage StorageConfig `mapstructure:"storage"`
	Quiz    QuizConfig    `mapstructure:"quiz"`
}

type DatasetConfig struct {
	Path string `mapstructure:"path" validate:"required"`
	URL  string `mapstructure:"url" validate:"omitempty,url"`
}

type StorageConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

type QuizConfig struct {
	Pronouns              []string               `mapstructure:"pronouns" validate:"min=1,dive,oneof=eu tu voce nos voces"`
	Tenses                []string               `mapstructure:"tenses" validate:"min=1,dive,oneof=presentIndicative preteriteIndicative imperfectIndicative futureIndicative conditionalIndicative presentSubjunctive imperfectSubjunctive futureSubjunctive imperative"`
	Regularity            string                 `mapstructure:"regularity" validate:"regularity"`
	RegularIrregularRatio float64                `mapstructure:"regular_irregular_ratio" validate:"gte=0,lte=1"`
	SpacedRepetition      SpacedRepetitionConfig `mapstructure:"spaced_repetition"`
}

type SpacedRepetitionConfig struct {
	Enabled            bool `mapstructure:"enabled"`
	ReviewIntervalDays int  `mapstructure:"review_interval_days" validate:"min=1"`
}

// Settings converts the quiz section into the runtime settings the engine
// consumes. Pronouns and tenses listed in the config are enabled, every other
// known value is disabled.
func (c QuizConfig) Settings() quiz.Settings {
	settings := quiz.DefaultSettings()
	settings.Pronouns = enableOnly(settings.Pronouns, c.Pronouns)
	settings.Tenses = enableOnly(settings.Tenses, c.Tenses)
	settings.Regularity = c.Regularity
	settings.RegularIrregularRatio = c.RegularIrregularRatio
	settings.SpacedRepetition = quiz.SpacedRepetitionSettings{
		Enabled:            c.SpacedRepetition.Enabled,
		ReviewIntervalDays: c.SpacedRepetition.ReviewIntervalDays,
	}
	return settings
}

func enableOnly(known map[string]bool, enabled []string) map[string]bool {
	result := make(map[string]bool, len(known))
	for key := range known {
		result[key] = false
	}
	for _, key := range enabled {
		result[key] = true
	}
	return result
}

type Loader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewLoader(configFile string) (*Loader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/conjugar")
	}

	return &Loader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *Loader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("dataset.path", filepath.Join("data", "verbs.json"))
	v.SetDefault("storage.path", filepath.Join("data", "progress.db"))
	v.SetDefault("quiz.pronouns", []string{"eu", "tu", "voce", "nos", "voces"})
	v.SetDefault("quiz.tenses", []string{"presentIndicative"})
	v.SetDefault("quiz.regularity", "all")
	v.SetDefault("quiz.regular_irregular_ratio", quiz.DefaultRegularRatio)
	v.SetDefault("quiz.spaced_repetition.enabled", true)
	v.SetDefault("quiz.spaced_repetition.review_interval_days", 1)

	// The dataset source is an environment concern, not a per-project file
	// setting.
	if err := v.BindEnv("dataset.url", "CONJUGAR_DATASET_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind CONJUGAR_DATASET_URL environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
