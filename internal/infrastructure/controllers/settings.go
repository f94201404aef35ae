package controllers

import (
	"errors"
	"io/fs"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/jakartamigrate/internal/domain/entities"
)

// loadSettings resolves the configuration for a command: the --config file
// when given, otherwise the first file found in the default locations,
// otherwise the built-in rules.
func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")

	if configPath == "" {
		found, err := entities.FindConfigFile()
		if err != nil {
			logger.Debugf("No config file found, using built-in rules: %v", err)
			return entities.NewDefaultSettings(), nil
		}
		configPath = found
	} else if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		logger.Warnf("Config file %s not found, using built-in rules", configPath)
		return entities.NewDefaultSettings(), nil
	}

	logger.Infof("Using config file: %s", configPath)
	return entities.NewSettings(configPath)
}

// boolFlag returns the flag value when it was set on the command line and
// the fallback otherwise.
func boolFlag(cmd *cobra.Command, name string, fallback bool) bool {
	if !cmd.Flags().Changed(name) {
		return fallback
	}
	value, _ := cmd.Flags().GetBool(name)
	return value
}
