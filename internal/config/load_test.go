package config

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/guilhermegouw/phonebook/internal/book"
)

func TestLoadFrom(t *testing.T) {
	t.Run("no files gives defaults", func(t *testing.T) {
		dir := t.TempDir()
		cfg, err := LoadFrom(filepath.Join(dir, "missing.json"), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Window() != book.DefaultWindowDays {
			t.Errorf("Expected default window, got %d", cfg.Window())
		}
		if cfg.Mode() != book.WindowCalendar {
			t.Errorf("Expected calendar mode, got %s", cfg.Mode())
		}
		if cfg.Options.DataDir == "" {
			t.Error("Expected data directory default")
		}
	})

	t.Run("project overrides global", func(t *testing.T) {
		root := t.TempDir()
		global := filepath.Join(root, "global", configFileName)
		writeFile(t, global, `{"options":{"birthday_window":3,"window_mode":"tuple","data_directory":"/g"}}`)

		project := filepath.Join(root, "work")
		writeFile(t, filepath.Join(project, configFileName), `{"options":{"birthday_window":30,"plain":true}}`)

		cfg, err := LoadFrom(global, filepath.Join(project, "sub", "dir"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := &Options{
			BirthdayWindow: 30,
			WindowMode:     "tuple",
			DataDir:        "/g",
			Plain:          true,
		}
		if diff := cmp.Diff(want, cfg.Options); diff != "" {
			t.Errorf("options mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("hidden project file", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "."+configFileName), `{"options":{"debug":true}}`)

		cfg, err := LoadFrom(filepath.Join(root, "none.json"), root)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !cfg.Options.Debug {
			t.Error("Expected debug from hidden project config")
		}
	})

	t.Run("malformed global config", func(t *testing.T) {
		root := t.TempDir()
		global := filepath.Join(root, configFileName)
		writeFile(t, global, `{"options":`)

		if _, err := LoadFrom(global, ""); err == nil {
			t.Error("Expected error for malformed config")
		}
	})

	t.Run("invalid window mode", func(t *testing.T) {
		root := t.TempDir()
		global := filepath.Join(root, configFileName)
		writeFile(t, global, `{"options":{"window_mode":"lunar"}}`)

		if _, err := LoadFrom(global, ""); err == nil {
			t.Error("Expected error for invalid window mode")
		}
	})
}

func TestSaveToFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg", configFileName)
	cfg := NewConfig()
	cfg.Options.BirthdayWindow = 21
	cfg.Options.WindowMode = "tuple"

	if err := SaveToFile(cfg, path); err != nil {
		t.Fatalf("SaveToFile: %v", err)
	}

	loaded, err := LoadFrom(path, "")
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if loaded.Window() != 21 || loaded.Mode() != book.WindowTuple {
		t.Errorf("unexpected loaded config: %+v", loaded.Options)
	}
}
