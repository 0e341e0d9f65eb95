//go:build unit

package entities_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/autocommit/internal/domain/entities"
)

func TestNewSettings(t *testing.T) {
	t.Parallel()

	writeConfig := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "autocommit.yaml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		return path
	}

	t.Run("should load patch list path and author", func(t *testing.T) {
		// given
		path := writeConfig(t, `
patch_list: drops/patch_list.txt
author:
  name: Release Bot
  email: release@example.com
`)

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "drops/patch_list.txt", settings.PatchList)
		require.NotNil(t, settings.Author)
		assert.Equal(t, "Release Bot", settings.Author.Name)
		assert.Equal(t, "release@example.com", settings.Author.Email)
	})

	t.Run("should apply the default patch list path", func(t *testing.T) {
		// given
		path := writeConfig(t, "author:\n  name: Release Bot\n")

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "patch_list.txt", settings.PatchList)
	})

	t.Run("should fail when the author has no name", func(t *testing.T) {
		// given
		path := writeConfig(t, "author:\n  email: release@example.com\n")

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "author.name")
	})

	t.Run("should fail on unreadable file", func(t *testing.T) {
		// when
		_, err := entities.NewSettings(filepath.Join(t.TempDir(), "missing.yaml"))

		// then
		require.Error(t, err)
	})

	t.Run("should fail on malformed YAML", func(t *testing.T) {
		// given
		path := writeConfig(t, "patch_list: [unclosed\n")

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
	})
}

func TestDefaultSettings(t *testing.T) {
	t.Parallel()

	t.Run("should default to patch_list.txt and no author", func(t *testing.T) {
		// when
		settings := entities.DefaultSettings()

		// then
		assert.Equal(t, "patch_list.txt", settings.PatchList)
		assert.Nil(t, settings.Author)
	})
}
