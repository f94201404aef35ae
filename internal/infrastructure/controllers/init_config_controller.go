package controllers

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/jakartamigrate/internal/domain/commands"
	"github.com/rios0rios0/jakartamigrate/internal/domain/entities"
)

// InitConfigController handles the "init-config" subcommand.
type InitConfigController struct {
	command commands.InitConfig
}

// NewInitConfigController creates a new InitConfigController.
func NewInitConfigController(command commands.InitConfig) *InitConfigController {
	return &InitConfigController{command: command}
}

// GetBind returns the Cobra command metadata for the init-config controller.
func (it *InitConfigController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "init-config [file]",
		Short: "Generate a default configuration file",
		Long: fmt.Sprintf(`Write the built-in migration rules to a YAML file (default: %s).

The generated file lists every javax package, dependency rule and managed
dependency so it can be edited and passed back with --config.`, entities.DefaultConfigFileName),
	}
}

// AddFlags adds the init-config flags to the given Cobra command.
func (it *InitConfigController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("force", false, "Overwrite an existing file")
}

// Execute writes the default configuration.
func (it *InitConfigController) Execute(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	path := ""
	if len(args) > 0 {
		path = args[0]
	}

	if err := it.command.Execute(commands.InitConfigOptions{Path: path, Force: force}); err != nil {
		return fmt.Errorf("failed to generate config: %w", err)
	}
	return nil
}
