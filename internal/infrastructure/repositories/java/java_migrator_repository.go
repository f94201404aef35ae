package java

import (
	"fmt"
	"path/filepath"
	"unicode/utf8"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/text/encoding/charmap"

	"github.com/rios0rios0/jakartamigrate/internal/diff"
	"github.com/rios0rios0/jakartamigrate/internal/domain/entities"
	"github.com/rios0rios0/jakartamigrate/internal/domain/repositories"
	"github.com/rios0rios0/jakartamigrate/internal/infrastructure/repositories/filesystem"
)

const (
	migratorName  = "java"
	javaExtension = ".java"
)

// JavaMigratorRepository implements repositories.MigratorRepository for
// Java sources, moving javax namespace references to jakarta.
type JavaMigratorRepository struct {
	files repositories.FileRepository
}

// NewJavaMigratorRepository creates a new namespace migrator.
func NewJavaMigratorRepository(files repositories.FileRepository) repositories.MigratorRepository {
	return &JavaMigratorRepository{files: files}
}

func (it *JavaMigratorRepository) Name() string { return migratorName }

func (it *JavaMigratorRepository) Detect(path string) bool {
	return filepath.Ext(path) == javaExtension
}

// Migrate rewrites the javax references of one source file.
func (it *JavaMigratorRepository) Migrate(
	path string,
	rules *entities.RuleTable,
	opts entities.MigrationOptions,
) (result entities.MigrationResult) {
	result = entities.NewMigrationResult(path, migratorName)
	defer func() {
		if recovered := recover(); recovered != nil {
			result.Fail(fmt.Sprintf("Unexpected error: %v", recovered))
			logger.Errorf("[java] Error processing %s: %v", path, recovered)
		}
	}()

	original, err := it.files.ReadFile(path)
	if err != nil {
		result.Fail(fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	content, err := decode(path, original)
	if err != nil {
		result.Fail(fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	updated, changes := rewriteNamespaces(content, rules.Packages())
	if opts.Verbose {
		for _, change := range changes {
			logger.Debugf("[java]   %s: %s -> %s", change.Kind, change.Old, change.New)
		}
	}

	result.Changes = append(result.Changes, changes...)
	result.Replacements = len(changes)
	result.Modified = updated != content
	if !result.Modified {
		return result
	}

	if opts.ShowDiff {
		if result.Diff, err = diff.Unified(path, []byte(content), []byte(updated)); err != nil {
			logger.Warnf("[java] Could not render diff for %s: %v", path, err)
		}
	}

	if writeErr := filesystem.Persist(it.files, path, original, []byte(updated), opts); writeErr != nil {
		result.Fail(fmt.Sprintf("Failed to write file: %v", writeErr))
		logger.Errorf("[java] %v", writeErr)
		return result
	}

	if opts.DryRun {
		logger.Infof("[java] [DRY-RUN] Would modify %s: %d replacements", path, result.Replacements)
	} else {
		logger.Infof("[java] Modified %s: %d replacements", path, result.Replacements)
	}
	return result
}

// decode returns the file as UTF-8 text, falling back to ISO-8859-1 for
// sources saved in a legacy encoding.
func decode(path string, data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("failed to decode %s as latin-1: %w", path, err)
	}
	logger.Warnf("[java] File %s read with latin-1 encoding", path)
	return string(decoded), nil
}
