package config

import (
	"os"
)

// IsFirstRun reports whether no config file exists at path yet.
func IsFirstRun(path string) bool {
	_, err := os.Stat(path)
	return os.IsNotExist(err)
}
