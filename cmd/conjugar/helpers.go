package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lbarroso/conjugar/internal/config"
	"github.com/lbarroso/conjugar/internal/storage"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

// openStore opens the progress database, creating its directory on first use.
func openStore(cfg *config.Config) (*storage.SQLiteStore, error) {
	if dir := filepath.Dir(cfg.Storage.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
		}
	}
	return storage.OpenSQLite(cfg.Storage.Path)
}

// selectionPatch converts a flag value listing enabled keys into a patch that
// disables everything else. Values outside the known set are rejected.
func selectionPatch(known map[string]bool, selected []string) (map[string]bool, error) {
	patch := make(map[string]bool, len(known))
	for key := range known {
		patch[key] = false
	}
	for _, key := range selected {
		if _, ok := known[key]; !ok {
			return nil, fmt.Errorf("unknown value %q", key)
		}
		patch[key] = true
	}
	return patch, nil
}

// writeOrPrint writes contents to outputPath, or to stdout when the path is
// empty.
func writeOrPrint(contents, outputPath string) error {
	if outputPath == "" {
		fmt.Println(contents)
		return nil
	}
	if err := os.WriteFile(outputPath, []byte(contents), 0o644); err != nil {
		return fmt.Errorf("os.WriteFile(%s) > %w", outputPath, err)
	}
	fmt.Printf("Written to %s\n", outputPath)
	return nil
}
