package filesystem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackendSwitch(t *testing.T) {
	SetOsFs()
	assert.Equal(t, "OsFs", API().Name())

	SetMemMapFs()
	assert.Equal(t, "MemMapFS", API().Name())

	require.NoError(t, API().WriteFile("/tmp/x", []byte("x"), 0644))
	ok, err := API().Exists("/tmp/x")
	require.NoError(t, err)
	assert.True(t, ok)

	SetMemMapFs()
	ok, err = API().Exists("/tmp/x")
	require.NoError(t, err)
	assert.False(t, ok, "a fresh in-memory backend starts empty")
}

func TestWriteFileAtomic(t *testing.T) {
	SetMemMapFs()
	t.Cleanup(SetOsFs)
	require.NoError(t, API().MkdirAll("/presets", 0755))

	require.NoError(t, WriteFileAtomic("/presets/teal.yaml", []byte("first"), 0644))
	require.NoError(t, WriteFileAtomic("/presets/teal.yaml", []byte("second"), 0644))

	data, err := API().ReadFile("/presets/teal.yaml")
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	entries, err := API().ReadDir("/presets")
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temp files are left behind")
	assert.Equal(t, "teal.yaml", entries[0].Name())
}
