package filesystem

import (
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/jakartamigrate/internal/domain/entities"
	"github.com/rios0rios0/jakartamigrate/internal/domain/repositories"
)

// Persist stores the rewritten content of a modified file. In dry-run mode
// nothing is written. When backups are enabled the original bytes are
// handed to the backup before the file is overwritten; a failed backup is
// logged and does not stop the write.
func Persist(
	files repositories.FileRepository,
	path string,
	original, updated []byte,
	opts entities.MigrationOptions,
) error {
	if opts.DryRun {
		logger.Debugf("[DRY-RUN] Would write %s", path)
		return nil
	}

	if opts.Backup {
		if err := files.Backup(path, original); err != nil {
			logger.Warnf("Could not create backup for %s: %v", path, err)
		}
	}

	return files.WriteFile(path, updated)
}
