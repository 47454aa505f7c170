package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/guilhermegouw/phonebook/internal/book"
)

const configFileName = "phonebook.json"

// Load finds and loads configuration from standard locations.
// It merges global config with project config (project takes precedence).
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = ""
	}
	return LoadFrom(GlobalConfigPath(), cwd)
}

// LoadFrom loads the global config at globalPath, then merges the first
// project config found walking up from workDir. Missing files are skipped.
func LoadFrom(globalPath, workDir string) (*Config, error) {
	cfg := NewConfig()
	if err := loadFile(globalPath, cfg); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	if workDir != "" {
		if projectPath := findProjectConfig(workDir); projectPath != "" && projectPath != globalPath {
			projectCfg := NewConfig()
			if err := loadFile(projectPath, projectCfg); err != nil {
				return nil, fmt.Errorf("loading project config: %w", err)
			}
			mergeConfig(cfg, projectCfg)
		}
	}

	applyDefaults(cfg)
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	//nolint:gosec // G304: Path is from trusted config locations, not user input.
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, cfg)
}

func findProjectConfig(start string) string {
	dir := start
	for {
		path := filepath.Join(dir, configFileName)
		if _, err := os.Stat(path); err == nil {
			return path
		}

		hiddenPath := filepath.Join(dir, "."+configFileName)
		if _, err := os.Stat(hiddenPath); err == nil {
			return hiddenPath
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

func mergeConfig(dst, src *Config) {
	if src.Options == nil {
		return
	}
	if dst.Options == nil {
		dst.Options = &Options{}
	}
	if src.Options.BirthdayWindow > 0 {
		dst.Options.BirthdayWindow = src.Options.BirthdayWindow
	}
	if src.Options.WindowMode != "" {
		dst.Options.WindowMode = src.Options.WindowMode
	}
	if src.Options.DataDir != "" {
		dst.Options.DataDir = src.Options.DataDir
	}
	if src.Options.Debug {
		dst.Options.Debug = true
	}
	if src.Options.Plain {
		dst.Options.Plain = true
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Options == nil {
		cfg.Options = &Options{}
	}
	if cfg.Options.DataDir == "" {
		cfg.Options.DataDir = filepath.Join(xdg.DataHome, appName)
	}
	if cfg.Options.BirthdayWindow <= 0 {
		cfg.Options.BirthdayWindow = book.DefaultWindowDays
	}
	if cfg.Options.WindowMode == "" {
		cfg.Options.WindowMode = string(book.WindowCalendar)
	}
}

func validate(cfg *Config) error {
	if _, err := parseMode(cfg.Options.WindowMode); err != nil {
		return fmt.Errorf("invalid window_mode: %w", err)
	}
	return nil
}

// GlobalConfigPath returns the path to the global configuration file.
func GlobalConfigPath() string {
	return filepath.Join(xdg.ConfigHome, appName, configFileName)
}

// DataDir returns the data directory path from configuration.
func (c *Config) DataDir() string {
	if c.Options != nil && c.Options.DataDir != "" {
		return c.Options.DataDir
	}
	return filepath.Join(xdg.DataHome, appName)
}

// DebugLogPath returns where the debug log is written.
func (c *Config) DebugLogPath() string {
	return filepath.Join(c.DataDir(), "debug.log")
}
