//go:build unit

package commands_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/jakartamigrate/internal/domain/commands"
	"github.com/rios0rios0/jakartamigrate/internal/domain/entities"
	infraRepos "github.com/rios0rios0/jakartamigrate/internal/infrastructure/repositories"
	doubles "github.com/rios0rios0/jakartamigrate/test/infrastructure/repositorydoubles"
)

type migrateFixture struct {
	dir       string
	java      *doubles.SpyMigratorRepository
	pom       *doubles.SpyMigratorRepository
	workspace *doubles.StubWorkspaceRepository
	inventory *doubles.SpyInventoryRepository
	command   *commands.MigrateCommand
}

func newMigrateFixture(t *testing.T, files ...string) *migrateFixture {
	t.Helper()

	dir := t.TempDir()
	for _, file := range files {
		path := filepath.Join(dir, filepath.FromSlash(file))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("content"), 0o600))
	}

	fixture := &migrateFixture{
		dir:       dir,
		java:      &doubles.SpyMigratorRepository{MigratorName: "java", Suffix: ".java", Replacements: 1},
		pom:       &doubles.SpyMigratorRepository{MigratorName: "pom", Suffix: "pom.xml", Replacements: 2},
		workspace: &doubles.StubWorkspaceRepository{},
		inventory: &doubles.SpyInventoryRepository{},
	}

	registry := infraRepos.NewMigratorRegistry()
	registry.Register(fixture.java)
	registry.Register(fixture.pom)
	fixture.command = commands.NewMigrateCommand(registry, fixture.workspace, fixture.inventory)
	return fixture
}

func (f *migrateFixture) run(opts commands.MigrateOptions) (*entities.Summary, error) {
	if opts.Directory == "" {
		opts.Directory = f.dir
	}
	return f.command.Execute(context.Background(), entities.NewDefaultSettings(), opts)
}

func TestMigrateCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should skip hidden entries and backup files", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newMigrateFixture(t,
			"pom.xml",
			"src/App.java",
			"src/App.java.bak",
			"src/.Hidden.java",
			".git/hooks/Hook.java",
			".idea/pom.xml",
			"README.md",
		)

		// when
		summary, err := fixture.run(commands.MigrateOptions{})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"App.java"}, fixture.java.MigratedBaseNames())
		assert.Equal(t, []string{"pom.xml"}, fixture.pom.MigratedBaseNames())
		assert.Equal(t, 2, summary.TotalFiles)
		assert.Equal(t, 3, summary.TotalReplacements)
	})

	t.Run("should only run the selected migration type", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newMigrateFixture(t, "pom.xml", "src/App.java")

		// when
		summary, err := fixture.run(commands.MigrateOptions{Type: entities.MigrationPomDependency})

		// then
		require.NoError(t, err)
		assert.Empty(t, fixture.java.MigratedBaseNames())
		assert.Equal(t, []string{"pom.xml"}, fixture.pom.MigratedBaseNames())
		assert.Equal(t, 1, summary.TotalFiles)
	})

	t.Run("should reject an unknown migration type", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newMigrateFixture(t, "pom.xml")

		// when
		_, err := fixture.run(commands.MigrateOptions{Type: "gradle"})

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown migration type "gradle"`)
	})

	t.Run("should isolate failures to the file that caused them", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newMigrateFixture(t, "src/A.java", "src/B.java", "src/C.java")
		fixture.java.PanicOn = "A.java"
		fixture.java.FailOn = "B.java"

		// when
		summary, err := fixture.run(commands.MigrateOptions{})

		// then
		require.NoError(t, err)
		assert.Equal(t, 3, summary.TotalFiles)
		assert.Equal(t, 1, summary.ModifiedFiles)
		assert.Equal(t, 2, summary.FilesWithErrors)
		require.Len(t, summary.Errors, 2)
		assert.Equal(t, []string{"Unexpected error: boom"}, summary.Errors[0].Errors)
		assert.Equal(t, []string{"Failed to read file: denied"}, summary.Errors[1].Errors)
	})

	t.Run("should keep the walk order when running files concurrently", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newMigrateFixture(t, "a/A.java", "b/B.java", "c/C.java", "d/D.java", "pom.xml")

		// when
		summary, err := fixture.run(commands.MigrateOptions{Jobs: 4})

		// then
		require.NoError(t, err)
		paths := make([]string, 0, len(summary.Results))
		for _, result := range summary.Results {
			rel, relErr := filepath.Rel(fixture.dir, result.Path)
			require.NoError(t, relErr)
			paths = append(paths, filepath.ToSlash(rel))
		}
		assert.Equal(t, []string{"a/A.java", "b/B.java", "c/C.java", "d/D.java", "pom.xml"}, paths)
	})

	t.Run("should pass the run options to the migrators", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newMigrateFixture(t, "src/App.java")

		// when
		_, err := fixture.run(commands.MigrateOptions{DryRun: true, Backup: true, ShowDiff: true})

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.MigrationOptions{DryRun: true, Backup: true, ShowDiff: true}, fixture.java.LastOpts)
	})

	t.Run("should fail for a missing directory", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newMigrateFixture(t)

		// when
		_, err := fixture.run(commands.MigrateOptions{Directory: filepath.Join(fixture.dir, "missing")})

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "directory not found")
	})

	t.Run("should fail when the path is a file", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newMigrateFixture(t, "pom.xml")

		// when
		_, err := fixture.run(commands.MigrateOptions{Directory: filepath.Join(fixture.dir, "pom.xml")})

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a directory")
	})

	t.Run("should stop between files when the context is cancelled", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newMigrateFixture(t, "src/A.java", "src/B.java")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// when
		summary, err := fixture.command.Execute(ctx, entities.NewDefaultSettings(), commands.MigrateOptions{
			Directory: fixture.dir,
		})

		// then
		require.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, fixture.java.MigratedBaseNames())
		assert.Zero(t, summary.TotalFiles)
	})
}

func TestMigrateCommandWorkspaceGuard(t *testing.T) {
	t.Parallel()

	t.Run("should refuse a dirty work tree when a clean one is required", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newMigrateFixture(t, "src/App.java")
		fixture.workspace.Result = entities.WorkspaceStatus{Tracked: true, Clean: false, Root: fixture.dir}

		// when
		_, err := fixture.run(commands.MigrateOptions{RequireClean: true})

		// then
		require.ErrorIs(t, err, commands.ErrDirtyWorkspace)
		assert.Empty(t, fixture.java.MigratedBaseNames())
	})

	t.Run("should only warn about a dirty work tree by default", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newMigrateFixture(t, "src/App.java")
		fixture.workspace.Result = entities.WorkspaceStatus{Tracked: true, Clean: false, Root: fixture.dir}

		// when
		_, err := fixture.run(commands.MigrateOptions{})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"App.java"}, fixture.java.MigratedBaseNames())
	})

	t.Run("should not inspect the work tree on a dry run", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newMigrateFixture(t, "src/App.java")
		fixture.workspace.Result = entities.WorkspaceStatus{Tracked: true, Clean: false}

		// when
		_, err := fixture.run(commands.MigrateOptions{DryRun: true, RequireClean: true})

		// then
		require.NoError(t, err)
		assert.Empty(t, fixture.workspace.StatusDirs)
	})

	t.Run("should continue when the work tree cannot be inspected", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newMigrateFixture(t, "src/App.java")
		fixture.workspace.Err = errors.New("corrupt index")

		// when
		_, err := fixture.run(commands.MigrateOptions{RequireClean: true})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"App.java"}, fixture.java.MigratedBaseNames())
	})
}

func TestMigrateCommandInventory(t *testing.T) {
	t.Parallel()

	t.Run("should export the summary when an inventory path is given", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newMigrateFixture(t, "pom.xml")

		// when
		summary, err := fixture.run(commands.MigrateOptions{InventoryPath: "bom.json"})

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, fixture.inventory.ExportCalls)
		assert.Equal(t, "bom.json", fixture.inventory.LastPath)
		assert.Same(t, summary, fixture.inventory.LastSummary)
	})

	t.Run("should not export without an inventory path", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newMigrateFixture(t, "pom.xml")

		// when
		_, err := fixture.run(commands.MigrateOptions{})

		// then
		require.NoError(t, err)
		assert.Zero(t, fixture.inventory.ExportCalls)
	})

	t.Run("should return the summary along with an export failure", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newMigrateFixture(t, "pom.xml")
		fixture.inventory.ExportErr = errors.New("read-only")

		// when
		summary, err := fixture.run(commands.MigrateOptions{InventoryPath: "bom.json"})

		// then
		require.Error(t, err)
		require.NotNil(t, summary)
		assert.Equal(t, 1, summary.TotalFiles)
	})
}

func TestIsHidden(t *testing.T) {
	t.Parallel()

	t.Run("should treat dot-prefixed names as hidden", func(t *testing.T) {
		t.Parallel()

		// then
		assert.True(t, commands.IsHidden(".git"))
		assert.True(t, commands.IsHidden(".Hidden.java"))
		assert.False(t, commands.IsHidden("pom.xml"))
	})
}

func TestResolveDirectory(t *testing.T) {
	t.Parallel()

	t.Run("should default to the current directory", func(t *testing.T) {
		t.Parallel()

		// given
		cwd, err := os.Getwd()
		require.NoError(t, err)

		// when
		root, resolveErr := commands.ResolveDirectory("")

		// then
		require.NoError(t, resolveErr)
		assert.Equal(t, cwd, root)
	})
}
