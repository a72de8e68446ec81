package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore(t *testing.T) {
	t.Run("starts empty without a config file", func(t *testing.T) {
		s, err := NewConfigStore(t.TempDir())

		require.NoError(t, err)
		_, ok := s.Get(KeyToken)
		assert.False(t, ok)
		assert.Empty(t, s.GetString(KeyToken))
		assert.Zero(t, s.GetInt(KeyTimeout))
	})

	t.Run("set persists and survives reload", func(t *testing.T) {
		dir := t.TempDir()
		s, err := NewConfigStore(dir)
		require.NoError(t, err)

		require.NoError(t, s.Set(KeyToken, "ghp_abc"))
		require.NoError(t, s.Set(KeyTimeout, 10))

		reloaded, err := NewConfigStore(dir)
		require.NoError(t, err)
		assert.Equal(t, "ghp_abc", reloaded.GetString(KeyToken))
		assert.Equal(t, 10, reloaded.GetInt(KeyTimeout))
	})

	t.Run("nested tables flatten to dot keys", func(t *testing.T) {
		dir := t.TempDir()
		content := "[github]\ntoken = \"ghp_xyz\"\n\n[collect]\ncategories = [\"emails\", \"urls\"]\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))

		s, err := NewConfigStore(dir)

		require.NoError(t, err)
		assert.Equal(t, "ghp_xyz", s.GetString(KeyToken))
		assert.Equal(t, []string{"emails", "urls"}, s.GetStringSlice(KeyCategories))
	})

	t.Run("wrong-typed values fall back to zero values", func(t *testing.T) {
		dir := t.TempDir()
		s, err := NewConfigStore(dir)
		require.NoError(t, err)
		require.NoError(t, s.Set(KeyTimeout, "not-a-number"))

		assert.Zero(t, s.GetInt(KeyTimeout))
		assert.Nil(t, s.GetStringSlice(KeyTimeout))
	})
}
