package where

import (
	"path/filepath"
	"testing"

	"github.com/lunit-heesungyang/facet/internal/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaths(t *testing.T) {
	filesystem.SetMemMapFs()
	t.Cleanup(filesystem.SetOsFs)
	t.Setenv(EnvConfigPath, "/cfg/facet")

	assert.Equal(t, "/cfg/facet", Config())
	assert.Equal(t, filepath.Join("/cfg/facet", "logs"), Logs())
	assert.Equal(t, filepath.Join("/cfg/facet", "presets"), Presets())
	assert.Equal(t, filepath.Join("/cfg/facet", "facet.toml"), ConfigFile())

	for _, dir := range []string{Config(), Logs(), Presets()} {
		ok, err := filesystem.API().IsDir(dir)
		require.NoError(t, err)
		assert.True(t, ok, dir)
	}
}
