package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lbarroso/conjugar/internal/testutil"
)

func TestNewDatasetListCommand_RunE(t *testing.T) {
	tmpDir := t.TempDir()
	setConfigFile(t, testutil.SetupTestConfig(t, tmpDir))

	var buf bytes.Buffer
	cmd := newDatasetListCommand()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	output := buf.String()
	assert.Contains(t, output, "falar (to speak) [regular]")
	assert.Contains(t, output, "ser (to be) [irregular]")
}

func TestNewDatasetFetchCommand_RunE_NoURL(t *testing.T) {
	tmpDir := t.TempDir()
	setConfigFile(t, testutil.SetupTestConfig(t, tmpDir))

	cmd := newDatasetFetchCommand()
	cmd.SetArgs([]string{})
	err := cmd.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no dataset URL configured")
}

func TestNewDatasetFetchCommand_RunE(t *testing.T) {
	tmpDir := t.TempDir()
	setConfigFile(t, testutil.SetupTestConfig(t, tmpDir))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"verb":"comer","infinitive":"comer","translation":"to eat","regularity":"regular","conjugations":{"presentIndicative":{"eu":"como"}}}]`))
	}))
	defer server.Close()

	var buf bytes.Buffer
	cmd := newDatasetFetchCommand()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--url", server.URL})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), "Dataset saved to")

	datasetPath := filepath.Join(tmpDir, "data", "verbs.json")
	content, err := os.ReadFile(datasetPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "comer")
}
