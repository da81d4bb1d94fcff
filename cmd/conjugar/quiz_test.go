package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lbarroso/conjugar/internal/testutil"
)

func TestNewQuizCommand_RunE_InvalidConfig(t *testing.T) {
	cfgPath := setupBrokenConfigFile(t)
	setConfigFile(t, cfgPath)

	cmd := newQuizCommand()
	cmd.SetArgs([]string{})
	err := cmd.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "configuration")
}

func TestNewQuizCommand_RunE_InvalidFlags(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := testutil.SetupTestConfig(t, tmpDir)
	setConfigFile(t, cfgPath)

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			name:    "unknown pronoun",
			args:    []string{"--pronouns", "vosotros"},
			wantErr: "--pronouns",
		},
		{
			name:    "unknown tense",
			args:    []string{"--tenses", "pluperfect"},
			wantErr: "--tenses",
		},
		{
			name:    "unknown regularity",
			args:    []string{"--regularity", "sometimes"},
			wantErr: "--regularity",
		},
		{
			name:    "ratio out of range",
			args:    []string{"--ratio", "1.5"},
			wantErr: "--ratio",
		},
		{
			name:    "review interval below one day",
			args:    []string{"--review-interval-days", "0"},
			wantErr: "--review-interval-days",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newQuizCommand()
			cmd.SetArgs(tt.args)
			err := cmd.Execute()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewQuizCommand_RunE_MissingDataset(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := setupConfigWithoutDataset(t, tmpDir)
	setConfigFile(t, cfgPath)

	cmd := newQuizCommand()
	cmd.SetArgs([]string{})
	err := cmd.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "verbs.NewRepository()")
}

func TestNewQuizCommand_RunE_SessionEndsOnEOF(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := testutil.SetupTestConfig(t, tmpDir)
	setConfigFile(t, cfgPath)

	cmd := newQuizCommand()
	cmd.SetArgs([]string{})
	// Stdin is closed in the test environment, so the session ends after the
	// first prompt.
	err := cmd.Execute()
	assert.NoError(t, err)
}
