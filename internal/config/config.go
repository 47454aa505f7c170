// Package config provides configuration management for the phonebook CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/guilhermegouw/phonebook/internal/book"
)

const appName = "phonebook"

// ErrUnknownKey is returned for option keys the config does not define.
var ErrUnknownKey = errors.New("unknown config key")

// Config is the top-level configuration structure.
type Config struct {
	Options *Options `json:"options,omitempty"`
}

// Options holds optional configuration settings.
//
//nolint:govet // Field order is intentional for JSON readability.
type Options struct {
	BirthdayWindow int    `json:"birthday_window,omitempty"`
	WindowMode     string `json:"window_mode,omitempty"`
	DataDir        string `json:"data_directory,omitempty"`
	Debug          bool   `json:"debug,omitempty"`
	Plain          bool   `json:"plain,omitempty"`
}

// optionKeys lists the settable keys under "options".
var optionKeys = map[string]func(string) (any, error){
	"birthday_window": parseWindow,
	"window_mode":     parseMode,
	"data_directory":  func(s string) (any, error) { return s, nil },
	"debug":           parseBool,
	"plain":           parseBool,
}

// NewConfig creates a new Config with initialized options.
func NewConfig() *Config {
	return &Config{
		Options: &Options{},
	}
}

// Default returns the settings written to the config file on first run.
func Default() *Config {
	return &Config{
		Options: &Options{
			BirthdayWindow: book.DefaultWindowDays,
			WindowMode:     string(book.WindowCalendar),
		},
	}
}

// Window returns the configured birthday look-ahead in days.
func (c *Config) Window() int {
	if c.Options == nil || c.Options.BirthdayWindow <= 0 {
		return book.DefaultWindowDays
	}
	return c.Options.BirthdayWindow
}

// Mode returns the configured birthday window mode.
func (c *Config) Mode() book.WindowMode {
	if c.Options == nil {
		return book.WindowCalendar
	}
	mode, err := book.ParseWindowMode(c.Options.WindowMode)
	if err != nil {
		return book.WindowCalendar
	}
	return mode
}

// Keys returns the settable option keys in a stable order.
func Keys() []string {
	return []string{"birthday_window", "window_mode", "data_directory", "debug", "plain"}
}

// NormalizeKey accepts "window_mode" or "options.window_mode" and returns the
// full JSON path of a known option.
func NormalizeKey(key string) (string, error) {
	short := strings.TrimPrefix(key, "options.")
	if _, ok := optionKeys[short]; !ok {
		return "", fmt.Errorf("%q: %w", key, ErrUnknownKey)
	}
	return "options." + short, nil
}

// ParseValue converts the textual value of key into the JSON type stored for it.
func ParseValue(key, raw string) (any, error) {
	path, err := NormalizeKey(key)
	if err != nil {
		return nil, err
	}
	return optionKeys[strings.TrimPrefix(path, "options.")](raw)
}

// SetFileField updates a single field in the config file at path. Only the
// specified field is modified; the rest of the file is kept as written.
func SetFileField(path, key string, value any) error {
	//nolint:gosec // G304: path is a config location, not user input.
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			data = []byte("{}")
		} else {
			return fmt.Errorf("reading config file: %w", err)
		}
	}

	newData, err := sjson.Set(string(data), key, value)
	if err != nil {
		return fmt.Errorf("setting config field %q: %w", key, err)
	}

	if err := ensureDir(path); err != nil {
		return err
	}
	//nolint:gosec // 0o600 is intentionally restrictive.
	if err := os.WriteFile(path, []byte(newData), 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// GetFileField reads a single field from the config file at path. The second
// result is false when the file or the field does not exist.
func GetFileField(path, key string) (string, bool, error) {
	//nolint:gosec // G304: path is a config location, not user input.
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("reading config file: %w", err)
	}

	res := gjson.GetBytes(data, key)
	if !res.Exists() {
		return "", false, nil
	}
	return res.String(), true, nil
}

func parseWindow(s string) (any, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return nil, fmt.Errorf("birthday_window must be a positive integer, got %q", s)
	}
	return n, nil
}

func parseMode(s string) (any, error) {
	mode, err := book.ParseWindowMode(s)
	if err != nil {
		return nil, err
	}
	return string(mode), nil
}

func parseBool(s string) (any, error) {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return nil, fmt.Errorf("expected true or false, got %q", s)
	}
	return b, nil
}
