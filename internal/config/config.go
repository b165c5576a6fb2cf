// Package config manages settings through viper: defaults, FACET_*
// environment variables and the facet.toml file.
package config

import (
	"errors"
	"strings"

	"github.com/lunit-heesungyang/facet/internal/constant"
	"github.com/lunit-heesungyang/facet/internal/filesystem"
	"github.com/lunit-heesungyang/facet/internal/key"
	"github.com/lunit-heesungyang/facet/internal/model"
	"github.com/lunit-heesungyang/facet/internal/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer maps config keys to environment variable names.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup loads defaults, binds environment variables and reads the config
// file if there is one.
func Setup() error {
	viper.SetConfigName(constant.Facet)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Facet)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, name := range EnvExposed() {
		viper.MustBindEnv(name)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	return nil
}

// PresetName returns the configured preset, or "" to let the caller pick.
func PresetName() string {
	return viper.GetString(key.ThemePreset)
}

// PresetsDir returns the preset directory, falling back to the default
// location under the config directory.
func PresetsDir() string {
	if dir := viper.GetString(key.PresetsDir); dir != "" {
		return dir
	}
	return where.Presets()
}

// ApplyOverrides returns p with every explicitly configured palette
// scalar applied on top.
func ApplyOverrides(p model.Palette) model.Palette {
	if viper.IsSet(key.ThemeGamma) {
		p.Gamma = viper.GetFloat64(key.ThemeGamma)
	}
	if viper.IsSet(key.ThemeAccentLightness) {
		p.AccentLightness = viper.GetFloat64(key.ThemeAccentLightness)
	}
	if viper.IsSet(key.ThemeAccentChroma) {
		p.AccentChroma = viper.GetFloat64(key.ThemeAccentChroma)
	}
	if viper.IsSet(key.ThemeHueOffset) {
		p.HueOffset = viper.GetFloat64(key.ThemeHueOffset)
	}
	return p
}
