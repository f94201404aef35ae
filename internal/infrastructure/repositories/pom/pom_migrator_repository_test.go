//go:build unit

package pom_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/jakartamigrate/internal/domain/entities"
	"github.com/rios0rios0/jakartamigrate/internal/infrastructure/repositories/pom"
	builders "github.com/rios0rios0/jakartamigrate/test/domain/entitybuilders"
	doubles "github.com/rios0rios0/jakartamigrate/test/infrastructure/repositorydoubles"
)

const descriptorPath = "project/pom.xml"

func legacyDescriptor() []byte {
	return builders.NewPomBuilder().
		WithBOM("org.jboss.bom", "jboss-eap-jakartaee8", "7.4.0.GA").
		WithDependency("org.jboss.spec.javax.ws.rs", "jboss-jaxrs-api_2.1_spec", "2.0.1.Final").
		WithCompiler("1.8", "1.8").
		BuildPom()
}

func TestPomMigratorRepository_Detect(t *testing.T) {
	t.Parallel()

	t.Run("should detect descriptors by exact file name", func(t *testing.T) {
		t.Parallel()

		// given
		migrator := pom.NewPomMigratorRepository(doubles.NewStubFileRepository(descriptorPath, nil))

		// when
		detected := migrator.Detect(descriptorPath)
		other := migrator.Detect("project/parent-pom.xml")

		// then
		assert.Equal(t, "pom", migrator.Name())
		assert.True(t, detected)
		assert.False(t, other)
	})
}

func TestPomMigratorRepository_Migrate(t *testing.T) {
	t.Parallel()

	t.Run("should write the rewritten descriptor after backing up the original", func(t *testing.T) {
		t.Parallel()

		// given
		original := legacyDescriptor()
		files := doubles.NewStubFileRepository(descriptorPath, original)
		migrator := pom.NewPomMigratorRepository(files)

		// when
		result := migrator.Migrate(descriptorPath, entities.DefaultRuleTable(), entities.MigrationOptions{Backup: true})

		// then
		assert.Empty(t, result.Errors)
		assert.True(t, result.Modified)
		assert.Equal(t, len(result.Changes), result.Replacements)
		assert.Equal(t, original, files.Backups[descriptorPath])
		require.Contains(t, files.Writes, descriptorPath)
		assert.Contains(t, string(files.Writes[descriptorPath]), "<release>11</release>")
	})

	t.Run("should compute the same changes in dry-run mode without writing", func(t *testing.T) {
		t.Parallel()

		// given
		realFiles := doubles.NewStubFileRepository(descriptorPath, legacyDescriptor())
		dryFiles := doubles.NewStubFileRepository(descriptorPath, legacyDescriptor())
		rules := entities.DefaultRuleTable()

		// when
		realRun := pom.NewPomMigratorRepository(realFiles).
			Migrate(descriptorPath, rules, entities.MigrationOptions{})
		dryRun := pom.NewPomMigratorRepository(dryFiles).
			Migrate(descriptorPath, rules, entities.MigrationOptions{DryRun: true, Backup: true})

		// then
		assert.Equal(t, realRun.Changes, dryRun.Changes)
		assert.True(t, dryRun.Modified)
		assert.Empty(t, dryFiles.Writes)
		assert.Empty(t, dryFiles.Backups)
	})

	t.Run("should clear the modified flag when the write fails", func(t *testing.T) {
		t.Parallel()

		// given
		files := doubles.NewStubFileRepository(descriptorPath, legacyDescriptor())
		files.WriteErr = errors.New("disk full")
		migrator := pom.NewPomMigratorRepository(files)

		// when
		result := migrator.Migrate(descriptorPath, entities.DefaultRuleTable(), entities.MigrationOptions{})

		// then
		assert.False(t, result.Modified)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "Failed to write file: disk full", result.Errors[0])
	})

	t.Run("should still write when the backup fails", func(t *testing.T) {
		t.Parallel()

		// given
		files := doubles.NewStubFileRepository(descriptorPath, legacyDescriptor())
		files.BackupErr = errors.New("read-only directory")
		migrator := pom.NewPomMigratorRepository(files)

		// when
		result := migrator.Migrate(descriptorPath, entities.DefaultRuleTable(), entities.MigrationOptions{Backup: true})

		// then
		assert.True(t, result.Modified)
		assert.Empty(t, result.Errors)
		assert.Contains(t, files.Writes, descriptorPath)
	})

	t.Run("should report a parse error without writing", func(t *testing.T) {
		t.Parallel()

		// given
		files := doubles.NewStubFileRepository(descriptorPath, []byte("<project>\n  <version>1 & 2</version>\n</project>\n"))
		migrator := pom.NewPomMigratorRepository(files)

		// when
		result := migrator.Migrate(descriptorPath, entities.DefaultRuleTable(), entities.MigrationOptions{})

		// then
		assert.False(t, result.Modified)
		require.Len(t, result.Errors, 1)
		assert.True(t, strings.HasPrefix(result.Errors[0], "XML parse error: line 2: "))
		assert.Empty(t, files.Writes)
	})

	t.Run("should report a read failure", func(t *testing.T) {
		t.Parallel()

		// given
		files := doubles.NewStubFileRepository(descriptorPath, nil)
		files.ReadErr = errors.New("permission denied")
		migrator := pom.NewPomMigratorRepository(files)

		// when
		result := migrator.Migrate(descriptorPath, entities.DefaultRuleTable(), entities.MigrationOptions{})

		// then
		assert.Equal(t, []string{"Failed to read file: permission denied"}, result.Errors)
	})

	t.Run("should not write an unchanged descriptor", func(t *testing.T) {
		t.Parallel()

		// given
		files := doubles.NewStubFileRepository(descriptorPath, builders.NewPomBuilder().BuildPom())
		migrator := pom.NewPomMigratorRepository(files)

		// when
		result := migrator.Migrate(descriptorPath, entities.DefaultRuleTable(), entities.MigrationOptions{Backup: true})

		// then
		assert.False(t, result.Modified)
		assert.Zero(t, result.Replacements)
		assert.Empty(t, files.Writes)
		assert.Empty(t, files.Backups)
	})

	t.Run("should render a unified diff when requested", func(t *testing.T) {
		t.Parallel()

		// given
		files := doubles.NewStubFileRepository(descriptorPath, legacyDescriptor())
		migrator := pom.NewPomMigratorRepository(files)

		// when
		result := migrator.Migrate(descriptorPath, entities.DefaultRuleTable(), entities.MigrationOptions{
			DryRun:   true,
			ShowDiff: true,
		})

		// then
		assert.Contains(t, result.Diff, "--- a/project/pom.xml")
		assert.Contains(t, result.Diff, "+++ b/project/pom.xml")
		assert.Contains(t, result.Diff, "+          <release>11</release>")
	})
}
