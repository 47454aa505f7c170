package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// SaveToFile writes the configuration to a specific file path.
func SaveToFile(cfg *Config, path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil { //nolint:gosec // Restrictive permissions.
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

func ensureDir(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return nil
}
