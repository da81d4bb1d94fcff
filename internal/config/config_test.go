package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lbarroso/conjugar/internal/quiz"
)

func load(t *testing.T, configFile string) (*Config, error) {
	t.Helper()
	loader, err := NewLoader(configFile)
	require.NoError(t, err)
	return loader.Load()
}

func TestLoader_Load(t *testing.T) {
	defaultConfig := &Config{
		Dataset: DatasetConfig{Path: filepath.Join("data", "verbs.json")},
		Storage: StorageConfig{Path: filepath.Join("data", "progress.db")},
		Quiz: QuizConfig{
			Pronouns:              []string{"eu", "tu", "voce", "nos", "voces"},
			Tenses:                []string{"presentIndicative"},
			Regularity:            "all",
			RegularIrregularRatio: 0.7,
			SpacedRepetition: SpacedRepetitionConfig{
				Enabled:            true,
				ReviewIntervalDays: 1,
			},
		},
	}

	tests := []struct {
		name              string
		configContent     string
		wantErr           bool
		want              *Config
		wantErrorContains []string
	}{
		{
			name: "valid config file with custom values",
			configContent: `dataset:
  path: custom/verbs.json
storage:
  path: custom/progress.db
quiz:
  pronouns: [eu, tu]
  tenses: [presentIndicative, imperative]
  regularity: irregular
  regular_irregular_ratio: 0.5
  spaced_repetition:
    enabled: false
    review_interval_days: 7
`,
			want: &Config{
				Dataset: DatasetConfig{Path: "custom/verbs.json"},
				Storage: StorageConfig{Path: "custom/progress.db"},
				Quiz: QuizConfig{
					Pronouns:              []string{"eu", "tu"},
					Tenses:                []string{"presentIndicative", "imperative"},
					Regularity:            "irregular",
					RegularIrregularRatio: 0.5,
					SpacedRepetition: SpacedRepetitionConfig{
						Enabled:            false,
						ReviewIntervalDays: 7,
					},
				},
			},
		},
		{
			name:          "missing config file uses defaults",
			configContent: "",
			want:          defaultConfig,
		},
		{
			name: "partial config with missing fields uses defaults",
			configContent: `storage:
  path: custom/progress.db
`,
			want: &Config{
				Dataset: defaultConfig.Dataset,
				Storage: StorageConfig{Path: "custom/progress.db"},
				Quiz:    defaultConfig.Quiz,
			},
		},
		{
			name: "invalid YAML format",
			configContent: `quiz:
  invalid yaml format here [[[
`,
			wantErr: true,
			wantErrorContains: []string{
				"configuration file found but could not be read",
				"Please check the file format and permissions",
			},
		},
		{
			name: "unknown regularity value",
			configContent: `quiz:
  regularity: sometimes
`,
			wantErr: true,
			wantErrorContains: []string{
				"invalid configuration",
				"must be one of all, regular or irregular",
			},
		},
		{
			name: "unknown pronoun",
			configContent: `quiz:
  pronouns: [eu, vosotros]
`,
			wantErr:           true,
			wantErrorContains: []string{"invalid configuration"},
		},
		{
			name: "ratio out of range",
			configContent: `quiz:
  regular_irregular_ratio: 1.5
`,
			wantErr:           true,
			wantErrorContains: []string{"invalid configuration"},
		},
		{
			name: "review interval below one day",
			configContent: `quiz:
  spaced_repetition:
    review_interval_days: 0
`,
			wantErr:           true,
			wantErrorContains: []string{"invalid configuration"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()

			var configPath string
			if tt.configContent != "" {
				configPath = filepath.Join(tempDir, "config.yaml")
				err := os.WriteFile(configPath, []byte(tt.configContent), 0644)
				require.NoError(t, err)
			}

			originalDir, err := os.Getwd()
			require.NoError(t, err)
			defer func() {
				err := os.Chdir(originalDir)
				require.NoError(t, err)
			}()
			err = os.Chdir(tempDir)
			require.NoError(t, err)

			got, err := load(t, configPath)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				for _, wantMsg := range tt.wantErrorContains {
					assert.Contains(t, err.Error(), wantMsg)
				}
				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoader_Load_DatasetURLFromEnvironment(t *testing.T) {
	tempDir := t.TempDir()
	originalDir, err := os.Getwd()
	require.NoError(t, err)
	defer func() {
		require.NoError(t, os.Chdir(originalDir))
	}()
	require.NoError(t, os.Chdir(tempDir))

	t.Setenv("CONJUGAR_DATASET_URL", "https://example.com/verbs.json")

	got, err := load(t, "")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/verbs.json", got.Dataset.URL)
}

func TestQuizConfig_Settings(t *testing.T) {
	cfg := QuizConfig{
		Pronouns:              []string{"eu", "voces"},
		Tenses:                []string{"imperative"},
		Regularity:            "regular",
		RegularIrregularRatio: 0.4,
		SpacedRepetition: SpacedRepetitionConfig{
			Enabled:            true,
			ReviewIntervalDays: 3,
		},
	}

	settings := cfg.Settings()

	assert.Equal(t, []string{"eu", "voces"}, settings.EnabledPronouns())
	assert.Equal(t, []string{"imperative"}, settings.EnabledTenses())
	assert.Equal(t, "regular", settings.Regularity)
	assert.InDelta(t, 0.4, settings.RegularIrregularRatio, 0.001)
	assert.Equal(t, quiz.SpacedRepetitionSettings{Enabled: true, ReviewIntervalDays: 3}, settings.SpacedRepetition)
}
