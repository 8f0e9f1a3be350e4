package elasticx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("should fall back to defaults", func(t *testing.T) {
		cfg, err := LoadConfig("")
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("should read a yaml file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "store.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
addresses:
  - http://es-1:9200
  - http://es-2:9200
username: app
index_prefix: prod-
`), 0o600))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"http://es-1:9200", "http://es-2:9200"}, cfg.Addresses)
		assert.Equal(t, "app", cfg.Username)
		assert.Equal(t, "prod-", cfg.IndexPrefix)
		assert.False(t, cfg.AllowDeleteIndex)
	})

	t.Run("should overlay environment variables", func(t *testing.T) {
		t.Setenv("VESPRY_ADDRESSES", "http://es-a:9200,http://es-b:9200")
		t.Setenv("VESPRY_ALLOW_DELETE_INDEX", "true")

		cfg, err := LoadConfig("")
		require.NoError(t, err)
		assert.Equal(t, []string{"http://es-a:9200", "http://es-b:9200"}, cfg.Addresses)
		assert.True(t, cfg.AllowDeleteIndex)
	})

	t.Run("should let the environment win over the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "store.yaml")
		require.NoError(t, os.WriteFile(path, []byte("username: from-file\n"), 0o600))
		t.Setenv("VESPRY_USERNAME", "from-env")

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "from-env", cfg.Username)
	})

	t.Run("should fail on a missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})
}
