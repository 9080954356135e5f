package config

import (
	"os"
	"path/filepath"
)

// PikserPath returns the root directory for pikser data.
// It uses $PIKSER_PATH if set, otherwise defaults to ~/.pikser.
func PikserPath() string {
	if v := os.Getenv("PIKSER_PATH"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".pikser")
	}
	return filepath.Join(home, ".pikser")
}

// ConfigPath returns the path to the pikser config file.
func ConfigPath() string {
	return filepath.Join(PikserPath(), "config.yaml")
}

// DotenvPath returns the path to the pikser .env file.
func DotenvPath() string {
	return filepath.Join(PikserPath(), ".env")
}
