// Package testutil provides shared test helpers for creating config files and
// dataset fixtures.
package testutil

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lbarroso/conjugar/internal/verbs"
)

// SetupTestConfig creates a config file pointing at a dataset and progress
// database under tmpDir, plus the data directory itself. Returns the path to
// the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	dataDir := filepath.Join(tmpDir, "data")
	require.NoError(t, os.MkdirAll(dataDir, 0755))

	configContent := fmt.Sprintf(`dataset:
  path: %s
storage:
  path: %s
`,
		filepath.Join(dataDir, "verbs.json"),
		filepath.Join(dataDir, "progress.db"),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))

	WriteDataset(t, filepath.Join(dataDir, "verbs.json"), DatasetFixture())
	return cfgPath
}

// WriteDataset writes a verb dataset as JSON to path.
func WriteDataset(t *testing.T, path string, dataset []verbs.Verb) {
	t.Helper()

	contents, err := json.MarshalIndent(dataset, "", "  ")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, contents, 0644))
}

// DatasetFixture returns a small dataset with one regular and one irregular
// verb, conjugated in the present indicative.
func DatasetFixture() []verbs.Verb {
	return []verbs.Verb{
		{
			Verb:        "falar",
			Infinitive:  "falar",
			Translation: "to speak",
			Regularity:  verbs.RegularityRegular,
			Conjugations: map[string]map[string]string{
				"presentIndicative": {
					"eu": "falo", "tu": "falas", "voce": "fala", "nos": "falamos", "voces": "falam",
				},
			},
		},
		{
			Verb:                "ser",
			Infinitive:          "ser",
			Translation:         "to be",
			Regularity:          verbs.RegularityIrregular,
			IrregularCategories: []string{"highly-irregular"},
			Conjugations: map[string]map[string]string{
				"presentIndicative": {
					"eu": "sou", "tu": "és", "voce": "é", "nos": "somos", "voces": "são",
				},
			},
		},
	}
}
