package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/jakartamigrate/internal/domain/entities"
)

// InitConfig is the interface for the default configuration generator.
type InitConfig interface {
	Execute(opts InitConfigOptions) error
}

// InitConfigOptions holds runtime options for init-config.
type InitConfigOptions struct {
	Path  string
	Force bool
}

// InitConfigCommand writes the built-in settings to a YAML file so they can
// be edited.
type InitConfigCommand struct{}

// NewInitConfigCommand creates a new InitConfigCommand.
func NewInitConfigCommand() *InitConfigCommand {
	return &InitConfigCommand{}
}

// Execute writes the default configuration. An existing file is only
// overwritten when Force is set.
func (it *InitConfigCommand) Execute(opts InitConfigOptions) error {
	path := opts.Path
	if path == "" {
		path = entities.DefaultConfigFileName
	}

	if _, err := os.Stat(path); err == nil && !opts.Force {
		return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to access %s: %w", path, err)
	}

	if err := entities.NewDefaultSettings().Save(path); err != nil {
		return err
	}
	logger.Infof("Default configuration written to %s", path)
	return nil
}
