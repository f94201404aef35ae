package pom

import (
	"errors"
	"fmt"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/jakartamigrate/internal/diff"
	"github.com/rios0rios0/jakartamigrate/internal/domain/entities"
	"github.com/rios0rios0/jakartamigrate/internal/domain/repositories"
	"github.com/rios0rios0/jakartamigrate/internal/infrastructure/repositories/filesystem"
)

const (
	migratorName   = "pom"
	descriptorName = "pom.xml"
)

// PomMigratorRepository implements repositories.MigratorRepository for
// Maven descriptors: it rewrites dependency coordinates, BOM imports,
// properties and the compiler plugin from EAP 7 to EAP 8 conventions.
type PomMigratorRepository struct {
	files repositories.FileRepository
}

// NewPomMigratorRepository creates a new descriptor migrator.
func NewPomMigratorRepository(files repositories.FileRepository) repositories.MigratorRepository {
	return &PomMigratorRepository{files: files}
}

func (it *PomMigratorRepository) Name() string { return migratorName }

// Detect matches descriptors by exact file name.
func (it *PomMigratorRepository) Detect(path string) bool {
	return filepath.Base(path) == descriptorName
}

// Migrate rewrites one descriptor. Parse errors and unexpected failures are
// reported in the result; the file is only written after every phase ran.
func (it *PomMigratorRepository) Migrate(
	path string,
	rules *entities.RuleTable,
	opts entities.MigrationOptions,
) (result entities.MigrationResult) {
	result = entities.NewMigrationResult(path, migratorName)
	defer func() {
		if recovered := recover(); recovered != nil {
			result.Fail(fmt.Sprintf("Unexpected error: %v", recovered))
			logger.Errorf("[pom] Error processing %s: %v", path, recovered)
		}
	}()

	original, err := it.files.ReadFile(path)
	if err != nil {
		result.Fail(fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	rewritten, err := Rewrite(original, rules)
	if err != nil {
		var parseErr *ParseError
		if errors.As(err, &parseErr) {
			result.Fail(fmt.Sprintf("XML parse error: %v", parseErr))
			logger.Errorf("[pom] Failed to parse %s: %v", path, parseErr)
		} else {
			result.Fail(fmt.Sprintf("Unexpected error: %v", err))
			logger.Errorf("[pom] Error processing %s: %v", path, err)
		}
		return result
	}

	result.Changes = rewritten.Changes
	result.Replacements = len(rewritten.Changes)
	result.Modified = rewritten.Modified()
	result.Dependencies = rewritten.Dependencies
	if !result.Modified {
		return result
	}

	if opts.ShowDiff {
		if result.Diff, err = diff.Unified(path, original, rewritten.Content); err != nil {
			logger.Warnf("[pom] Could not render diff for %s: %v", path, err)
		}
	}

	if writeErr := filesystem.Persist(it.files, path, original, rewritten.Content, opts); writeErr != nil {
		result.Fail(fmt.Sprintf("Failed to write file: %v", writeErr))
		logger.Errorf("[pom] %v", writeErr)
		return result
	}

	if opts.DryRun {
		logger.Infof("[pom] [DRY-RUN] Would modify %s: %d changes", path, result.Replacements)
	} else {
		logger.Infof("[pom] Modified %s: %d changes", path, result.Replacements)
	}
	return result
}
