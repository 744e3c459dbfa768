package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfigStore(t *testing.T) *ConfigStore {
	t.Helper()

	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, store)
	return store
}

func TestNewConfigStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "config")

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store := newTestConfigStore(t)

	require.NoError(t, store.Set("ui.currency", "BRL"))

	val, ok := store.Get("ui.currency")
	require.True(t, ok)
	assert.Equal(t, "BRL", val)
}

func TestConfigStore_Get_Missing(t *testing.T) {
	store := newTestConfigStore(t)

	_, ok := store.Get("nope")
	assert.False(t, ok)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store := newTestConfigStore(t)

	require.NoError(t, store.Set("ui.currency", "BRL"))
	require.NoError(t, store.Set("search.default_limit", 10))
	require.NoError(t, store.Set("search.max_price", 5000.0))
	require.NoError(t, store.Set("ui.compact", true))

	assert.Equal(t, "BRL", store.GetString("ui.currency"))
	assert.Equal(t, 10, store.GetInt("search.default_limit"))
	assert.InDelta(t, 5000.0, store.GetFloat("search.max_price"), 1e-9)
	assert.True(t, store.GetBool("ui.compact"))
}

func TestConfigStore_TypedGetters_WrongTypeOrMissing(t *testing.T) {
	store := newTestConfigStore(t)

	require.NoError(t, store.Set("ui.currency", "BRL"))

	assert.Equal(t, 0, store.GetInt("ui.currency"))
	assert.Zero(t, store.GetFloat("ui.currency"))
	assert.False(t, store.GetBool("ui.currency"))
	assert.Equal(t, "", store.GetString("missing"))
}

func TestConfigStore_GetFloat_WidensInt(t *testing.T) {
	store := newTestConfigStore(t)

	require.NoError(t, store.Set("search.max_price", 5000))

	assert.InDelta(t, 5000.0, store.GetFloat("search.max_price"), 1e-9)
}

func TestConfigStore_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("search.default_limit", 25))
	require.NoError(t, store.Set("ui.currency", "BRL"))

	reopened, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, 25, reopened.GetInt("search.default_limit"))
	assert.Equal(t, "BRL", reopened.GetString("ui.currency"))
}

func TestConfigStore_LoadFlattensNestedTables(t *testing.T) {
	dir := t.TempDir()
	content := "[search]\nmax_price = 5000.0\n\n[ui]\ncurrency = \"BRL\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.InDelta(t, 5000.0, store.GetFloat("search.max_price"), 1e-9)
	assert.Equal(t, "BRL", store.GetString("ui.currency"))
}

func TestConfigStore_SaveUsesRestrictedPermissions(t *testing.T) {
	store := newTestConfigStore(t)

	require.NoError(t, store.Set("ui.currency", "BRL"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}
