package api_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/machakos/malaria/api"
)

func TestGetConfigPath(t *testing.T) { //nolint:paralleltest // Modifies environment.
	t.Run("xdg", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", dir)

		assert.Equal(t, filepath.Join(dir, "malaria", "config.yaml"), api.GetConfigPath("config.yaml"))
	})

	t.Run("home", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", "")
		t.Setenv("HOME", home)

		assert.Equal(t, filepath.Join(home, ".config", "malaria", "config.yaml"), api.GetConfigPath("config.yaml"))
	})
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("kind: Configuration\n"), 0o600))

	tcs := map[string]struct {
		path    string
		want    string
		wantErr string
	}{
		"regular file": {path: path, want: "kind: Configuration\n"},
		"directory":    {path: dir, wantErr: "path is a directory"},
		"missing":      {path: filepath.Join(dir, "nope.yaml"), wantErr: "stat file"},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := api.ReadFile(tc.path)
			if tc.wantErr != "" {
				require.ErrorContains(t, err, tc.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, string(got))
		})
	}
}

func TestMarshalYAML(t *testing.T) {
	t.Parallel()

	got, err := api.MarshalYAML(map[string]any{"keywords": map[string][]string{"fever": {"homa"}}})
	require.NoError(t, err)
	assert.Equal(t, "keywords:\n  fever:\n    - homa\n", string(got))
}

func TestWriteDefaultFile(t *testing.T) {
	t.Parallel()

	t.Run("creates directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "a", "b", "config.yaml")
		require.NoError(t, api.WriteDefaultFile(path, []byte("new"), false, "configuration"))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new", string(got))
	})

	t.Run("keeps existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("old"), 0o600))
		require.NoError(t, api.WriteDefaultFile(path, []byte("new"), false, "configuration"))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "old", string(got))
	})

	t.Run("force backs up existing file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("old"), 0o600))
		require.NoError(t, api.WriteDefaultFile(path, []byte("new"), true, "configuration"))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new", string(got))

		backups, err := filepath.Glob(filepath.Join(dir, "config.yaml.*.old"))
		require.NoError(t, err)
		require.Len(t, backups, 1)

		got, err = os.ReadFile(backups[0])
		require.NoError(t, err)
		assert.Equal(t, "old", string(got))
	})

	t.Run("directory", func(t *testing.T) {
		t.Parallel()

		err := api.WriteDefaultFile(t.TempDir(), []byte("new"), false, "configuration")
		require.ErrorContains(t, err, "path is a directory")
	})
}
