// Package where resolves the directories facet reads and writes.
package where

import (
	"os"
	"path/filepath"

	"github.com/lunit-heesungyang/facet/internal/constant"
	"github.com/lunit-heesungyang/facet/internal/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath overrides the configuration directory.
const EnvConfigPath = "FACET_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config returns the configuration directory, honouring FACET_CONFIG_PATH.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return ensureDir(filepath.Join(base, constant.Facet))
}

// ConfigFile returns the path of facet.toml. The file may not exist.
func ConfigFile() string {
	return filepath.Join(Config(), constant.Facet+".toml")
}

// Logs returns the log directory.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Presets returns the directory holding user preset files.
func Presets() string {
	return ensureDir(filepath.Join(Config(), "presets"))
}
