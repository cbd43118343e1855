package file

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, ConfigFile), store.Path())
	assert.Empty(t, store.Keys())
}

func TestNewConfigStore_MkdirAllError(t *testing.T) {
	file := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(file, nil, 0600))

	store, err := NewConfigStore(filepath.Join(file, "sub"))

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestNewConfigStore_LoadCorruptedFile(t *testing.T) {
	tmpDir := t.TempDir()
	err := os.WriteFile(filepath.Join(tmpDir, ConfigFile), []byte("this is not valid TOML {{{[["), 0600)
	require.NoError(t, err)

	store, err := NewConfigStore(tmpDir)

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("storage.data_dir", "/srv/data"))
	require.NoError(t, store.Set("log.verbose", true))
	require.NoError(t, store.Set("auth.max_attempts", 3))

	assert.Equal(t, "/srv/data", store.GetString("storage.data_dir"))
	assert.True(t, store.GetBool("log.verbose"))
	assert.Equal(t, 3, store.GetInt("auth.max_attempts"))

	assert.Equal(t, "", store.GetString("auth.max_attempts"))
	assert.Equal(t, 0, store.GetInt("storage.data_dir"))
	assert.False(t, store.GetBool("missing"))

	_, ok := store.Get("missing")
	assert.False(t, ok)
}

func TestConfigStore_PersistsNestedTables(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("auth.max_attempts", 7))
	require.NoError(t, store.Set("auth.refill_seconds", 15))
	require.NoError(t, store.Set("log.verbose", true))

	raw, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(raw), "[auth]")
	assert.Contains(t, string(raw), "max_attempts = 7")
	assert.Contains(t, string(raw), "[log]")

	reloaded, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, 7, reloaded.GetInt("auth.max_attempts"))
	assert.Equal(t, 15, reloaded.GetInt("auth.refill_seconds"))
	assert.True(t, reloaded.GetBool("log.verbose"))
	assert.Equal(t, []string{"auth.max_attempts", "auth.refill_seconds", "log.verbose"}, reloaded.Keys())
}

func TestConfigStore_ReadsHandWrittenFile(t *testing.T) {
	tmpDir := t.TempDir()
	content := "[storage]\ndata_dir = \"/opt/shopdesk\"\n\n[auth]\nmax_attempts = 2\n"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ConfigFile), []byte(content), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "/opt/shopdesk", store.GetString("storage.data_dir"))
	assert.Equal(t, 2, store.GetInt("auth.max_attempts"))
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("log.verbose", false))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_Set_WriteErrorRollsBack(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("log.verbose", true))

	// Replace the file with a directory so the write fails.
	require.NoError(t, os.Remove(store.Path()))
	require.NoError(t, os.Mkdir(store.Path(), 0700))

	err = store.Set("storage.data_dir", "/x")
	assert.Error(t, err)

	_, ok := store.Get("storage.data_dir")
	assert.False(t, ok)
	assert.True(t, store.GetBool("log.verbose"))
}

func TestConfigStore_SetUnmarshallableValue(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	err = store.Set("channel", make(chan int))

	assert.Error(t, err)
	_, ok := store.Get("channel")
	assert.False(t, ok)
}

func TestConfigStore_Concurrency(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			assert.NoError(t, store.Set("auth.max_attempts", n+1))
			_ = store.GetInt("auth.max_attempts")
			_ = store.Keys()
		}(i)
	}
	wg.Wait()

	assert.Positive(t, store.GetInt("auth.max_attempts"))
}

func TestNestMap(t *testing.T) {
	flat := map[string]any{
		"a":     1,
		"a.b":   2,
		"c.d.e": "x",
		"c.f":   true,
	}

	nested := nestMap(flat)

	assert.Equal(t, 1, nested["a"])
	assert.Equal(t, 2, nested["a.b"])
	c, ok := nested["c"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, c["f"])
	d, ok := c["d"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "x", d["e"])

	assert.Equal(t, flat, flattenMap(nested, ""))
}
