package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lbarroso/conjugar/internal/scheduler"
	"github.com/lbarroso/conjugar/internal/testutil"
)

func TestNewExportCommand_RunE(t *testing.T) {
	tmpDir := t.TempDir()
	setConfigFile(t, testutil.SetupTestConfig(t, tmpDir))

	cfg, err := loadConfig()
	require.NoError(t, err)
	store, err := openStore(cfg)
	require.NoError(t, err)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	scheduler.NewLedger(store).RecordAnswer(scheduler.Key{Verb: "falar", Pronoun: "tu", Tense: "presentIndicative"}, true, 1, now)
	require.NoError(t, store.Close())

	outputPath := filepath.Join(tmpDir, "ledger.json")
	cmd := newExportCommand()
	cmd.SetArgs([]string{"--output", outputPath})
	require.NoError(t, cmd.Execute())

	content, err := os.ReadFile(outputPath)
	require.NoError(t, err)

	var entries []scheduler.Entry
	require.NoError(t, json.Unmarshal(content, &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "falar", entries[0].Key.Verb)
	assert.Equal(t, 1, entries[0].CorrectCount)
}

func TestNewExportCommand_RunE_EmptyLedger(t *testing.T) {
	tmpDir := t.TempDir()
	setConfigFile(t, testutil.SetupTestConfig(t, tmpDir))

	outputPath := filepath.Join(tmpDir, "ledger.json")
	cmd := newExportCommand()
	cmd.SetArgs([]string{"--output", outputPath})
	require.NoError(t, cmd.Execute())

	content, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(content))
}
