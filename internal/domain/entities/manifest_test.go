//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/verbump/internal/domain/entities"
)

func TestReadManifestVersion(t *testing.T) {
	t.Parallel()

	t.Run("should read the top-level version of a JSON manifest", func(t *testing.T) {
		t.Parallel()

		// given
		data := []byte(`{"name": "app", "version": "1.4.2", "engines": {"node": ">=20"}}`)

		// when
		version, err := entities.ReadManifestVersion("package.json", data)

		// then
		require.NoError(t, err)
		assert.Equal(t, "1.4.2", version)
	})

	t.Run("should fail when the JSON manifest has no version", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := entities.ReadManifestVersion("package.json", []byte(`{"name": "app"}`))

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no version field")
	})

	t.Run("should fail on malformed JSON", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := entities.ReadManifestVersion("package.json", []byte(`{"version": `))

		// then
		require.Error(t, err)
	})

	t.Run("should read a plain version file", func(t *testing.T) {
		t.Parallel()

		// when
		version, err := entities.ReadManifestVersion("VERSION", []byte("2.0.1\n"))

		// then
		require.NoError(t, err)
		assert.Equal(t, "2.0.1", version)
	})

	t.Run("should fail on an empty version file", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := entities.ReadManifestVersion("VERSION", []byte("\n"))

		// then
		require.Error(t, err)
	})
}

func TestWriteManifestVersion(t *testing.T) {
	t.Parallel()

	t.Run("should rewrite only the top-level version of a JSON manifest", func(t *testing.T) {
		t.Parallel()

		// given
		data := []byte("{\n  \"name\": \"app\",\n  \"version\":   \"1.0.0\",\n" +
			"  \"dependencies\": {\n    \"lib\": {\"version\": \"1.0.0\"}\n  }\n}\n")

		// when
		updated, changed, err := entities.WriteManifestVersion("package.json", data, "1.1.0")

		// then
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, "{\n  \"name\": \"app\",\n  \"version\":   \"1.1.0\",\n"+
			"  \"dependencies\": {\n    \"lib\": {\"version\": \"1.0.0\"}\n  }\n}\n", string(updated))
	})

	t.Run("should keep the trailing newline of a plain version file", func(t *testing.T) {
		t.Parallel()

		// when
		updated, changed, err := entities.WriteManifestVersion("VERSION", []byte("1.0.0\n"), "2.0.0")

		// then
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, "2.0.0\n", string(updated))
	})

	t.Run("should report no change when the version is already current", func(t *testing.T) {
		t.Parallel()

		// given
		data := []byte(`{"version": "1.0.0"}`)

		// when
		updated, changed, err := entities.WriteManifestVersion("package.json", data, "1.0.0")

		// then
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, data, updated)
	})
}
