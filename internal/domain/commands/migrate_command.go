package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	logger "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/rios0rios0/jakartamigrate/internal/domain/entities"
	"github.com/rios0rios0/jakartamigrate/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/jakartamigrate/internal/infrastructure/repositories"
)

const backupSuffix = ".bak"

// ErrDirtyWorkspace is returned when --require-clean is set and the target
// directory has uncommitted changes.
var ErrDirtyWorkspace = errors.New("workspace has uncommitted changes")

// Migrate is the interface for the directory migration command.
type Migrate interface {
	Execute(ctx context.Context, settings *entities.Settings, opts MigrateOptions) (*entities.Summary, error)
}

// MigrateOptions holds runtime options for a directory migration.
type MigrateOptions struct {
	Directory     string
	Type          entities.MigrationType
	DryRun        bool
	Backup        bool
	Verbose       bool
	ShowDiff      bool
	Jobs          int
	InventoryPath string
	RequireClean  bool
}

// fileTask pairs a file with the migrator that classified it.
type fileTask struct {
	path     string
	migrator repositories.MigratorRepository
}

// MigrateCommand walks a directory and migrates every file a registered
// migrator claims.
type MigrateCommand struct {
	registry  *infraRepos.MigratorRegistry
	workspace repositories.WorkspaceRepository
	inventory repositories.InventoryRepository
}

// NewMigrateCommand creates a new MigrateCommand.
func NewMigrateCommand(
	registry *infraRepos.MigratorRegistry,
	workspace repositories.WorkspaceRepository,
	inventory repositories.InventoryRepository,
) *MigrateCommand {
	return &MigrateCommand{
		registry:  registry,
		workspace: workspace,
		inventory: inventory,
	}
}

// Execute migrates the directory and returns the aggregated summary. Per-file
// failures are reported in the summary; only problems with the run as a whole
// are returned as errors.
func (it *MigrateCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts MigrateOptions,
) (*entities.Summary, error) {
	root, err := resolveDirectory(opts.Directory)
	if err != nil {
		return nil, err
	}

	candidates, err := it.selectMigrators(opts.Type)
	if err != nil {
		return nil, err
	}

	if guardErr := it.checkWorkspace(root, opts); guardErr != nil {
		return nil, guardErr
	}

	tasks, err := collectFiles(root, candidates)
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}
	logger.Infof("Found %d file(s) to process in %s", len(tasks), root)

	rules := settings.RuleTable()
	migrationOpts := entities.MigrationOptions{
		DryRun:   opts.DryRun,
		Backup:   opts.Backup,
		Verbose:  opts.Verbose,
		ShowDiff: opts.ShowDiff,
	}

	results, runErr := runTasks(ctx, tasks, rules, migrationOpts, opts.Jobs)
	summary := entities.NewSummary(results)
	if runErr != nil {
		return summary, fmt.Errorf("migration interrupted: %w", runErr)
	}

	if opts.InventoryPath != "" {
		if exportErr := it.inventory.Export(opts.InventoryPath, summary); exportErr != nil {
			return summary, fmt.Errorf("failed to export inventory: %w", exportErr)
		}
		logger.Infof("Wrote dependency inventory to %s", opts.InventoryPath)
	}

	return summary, nil
}

func resolveDirectory(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	root, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("invalid path: %w", err)
	}

	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("directory not found: %s", dir)
		}
		return "", fmt.Errorf("failed to access %s: %w", dir, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("not a directory: %s", dir)
	}
	return root, nil
}

func (it *MigrateCommand) selectMigrators(
	migrationType entities.MigrationType,
) ([]repositories.MigratorRepository, error) {
	selected := lo.Filter(it.registry.All(), func(m repositories.MigratorRepository, _ int) bool {
		return migrationType.Includes(m.Name())
	})
	if len(selected) == 0 {
		return nil, fmt.Errorf(
			"unknown migration type %q (available: %s, all)",
			migrationType, strings.Join(it.registry.Names(), ", "),
		)
	}
	return selected, nil
}

// checkWorkspace warns about uncommitted changes in a git work tree before
// files are overwritten, or refuses to run when RequireClean is set.
func (it *MigrateCommand) checkWorkspace(root string, opts MigrateOptions) error {
	if opts.DryRun || it.workspace == nil {
		return nil
	}

	status, err := it.workspace.Status(root)
	if err != nil {
		logger.Warnf("Could not inspect git status of %s: %v", root, err)
		return nil
	}
	if !status.Tracked || status.Clean {
		return nil
	}

	if opts.RequireClean {
		return fmt.Errorf("%w: %s", ErrDirtyWorkspace, status.Root)
	}
	logger.Warnf("Git work tree %s has uncommitted changes; migrated files will be mixed with them", status.Root)
	return nil
}

// collectFiles walks root in lexical order, skipping hidden entries and
// backup files, and classifies each regular file once.
func collectFiles(root string, candidates []repositories.MigratorRepository) ([]fileTask, error) {
	var tasks []fileTask
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return walkErr
			}
			logger.Warnf("Skipping %s: %v", path, walkErr)
			return nil
		}

		if path != root && isHidden(entry.Name()) {
			if entry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !entry.Type().IsRegular() || strings.HasSuffix(entry.Name(), backupSuffix) {
			return nil
		}

		if migrator := infraRepos.Classify(candidates, path); migrator != nil {
			tasks = append(tasks, fileTask{path: path, migrator: migrator})
		}
		return nil
	})
	return tasks, err
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// runTasks migrates every task. With jobs > 1 files are processed
// concurrently; results are stored by task index either way. Cancellation is
// observed between files, never inside one.
func runTasks(
	ctx context.Context,
	tasks []fileTask,
	rules *entities.RuleTable,
	opts entities.MigrationOptions,
	jobs int,
) ([]entities.MigrationResult, error) {
	results := make([]entities.MigrationResult, len(tasks))
	done := make([]bool, len(tasks))

	if jobs < 1 {
		jobs = 1
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(jobs)
	for i, task := range tasks {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			logger.Debugf("Processing %s (%s)", task.path, task.migrator.Name())
			results[i] = migrateFile(task, rules, opts)
			done[i] = true
			return nil
		})
	}
	err := group.Wait()

	completed := lo.Filter(results, func(_ entities.MigrationResult, i int) bool {
		return done[i]
	})
	return completed, err
}

// migrateFile isolates a single file: a panic inside a migrator becomes an
// error record for that file only.
func migrateFile(
	task fileTask,
	rules *entities.RuleTable,
	opts entities.MigrationOptions,
) (result entities.MigrationResult) {
	defer func() {
		if recovered := recover(); recovered != nil {
			result = entities.NewMigrationResult(task.path, task.migrator.Name())
			result.Fail(fmt.Sprintf("Unexpected error: %v", recovered))
		}
	}()
	return task.migrator.Migrate(task.path, rules, opts)
}
