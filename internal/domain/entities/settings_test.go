//go:build unit

package entities_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/jakartamigrate/internal/domain/entities"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jakartamigrate.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

//nolint:tparallel // some subtests use t.Setenv which is incompatible with t.Parallel on parent
func TestNewSettings(t *testing.T) {
	t.Run("should keep defaults for keys absent from the file", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "dry_run: true\n")

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.True(t, settings.DryRun)
		assert.True(t, settings.Backup)
		assert.Equal(t, entities.DefaultJavaxPackages(), settings.JavaxPackages)
		assert.Equal(t, entities.DefaultDependencyRules(), settings.DependencyRules)
	})

	t.Run("should replace a table given in the file", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, `backup: false
eap7_to_eap8_dependencies:
  "org.example:legacy":
    new_artifact: "org.example:modern"
    new_version: "2.0.0"
`)

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.False(t, settings.Backup)
		assert.Equal(t, map[string]entities.Rule{
			"org.example:legacy": {NewArtifact: "org.example:modern", NewVersion: "2.0.0"},
		}, settings.DependencyRules)
		replacement, ok := settings.RuleTable().Replacement("org.example:legacy")
		assert.True(t, ok)
		assert.Equal(t, "org.example:modern", replacement.Key())
	})

	t.Run("should expand environment variable references", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv("JAKARTAMIGRATE_TEST_VERSION", "8.0.1.GA")
		path := writeConfig(t, `eap7_to_eap8_dependencies:
  "org.jboss.bom:jboss-eap-jakartaee8":
    new_version: "${JAKARTAMIGRATE_TEST_VERSION}"
`)

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "8.0.1.GA", settings.DependencyRules["org.jboss.bom:jboss-eap-jakartaee8"].NewVersion)
	})

	t.Run("should reject packages outside the javax namespace", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "javax_to_jakarta_packages:\n  - jakarta.ejb\n")

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "javax_to_jakarta_packages[0]")
	})

	t.Run("should fail on malformed YAML", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "dry_run: [unterminated\n")

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})

	t.Run("should fail when the file cannot be read", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := entities.NewSettings(filepath.Join(t.TempDir(), "missing.yaml"))

		// then
		require.Error(t, err)
	})
}

func TestSettingsSave(t *testing.T) {
	t.Parallel()

	t.Run("should write a file that loads back to the defaults", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), entities.DefaultConfigFileName)

		// when
		err := entities.NewDefaultSettings().Save(path)

		// then
		require.NoError(t, err)
		loaded, loadErr := entities.NewSettings(path)
		require.NoError(t, loadErr)
		assert.Equal(t, entities.NewDefaultSettings(), loaded)
	})
}
