package controllers

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/jakartamigrate/internal/domain/commands"
	"github.com/rios0rios0/jakartamigrate/internal/domain/entities"
)

// RulesController handles the "rules" subcommand.
type RulesController struct {
	command commands.Rules
}

// NewRulesController creates a new RulesController.
func NewRulesController(command commands.Rules) *RulesController {
	return &RulesController{command: command}
}

// GetBind returns the Cobra command metadata for the rules controller.
func (it *RulesController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "rules",
		Short: "List the effective migration rules",
		Long: `Print the dependency rules, managed dependencies and javax packages
a migration would use, after applying the configuration file.`,
	}
}

// AddFlags adds the rules flags to the given Cobra command.
func (it *RulesController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", commands.RulesFormatTable, "Output format (table, yaml)")
}

// Execute prints the rule table.
func (it *RulesController) Execute(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	format, _ := cmd.Flags().GetString("output")
	return it.command.Execute(cmd.OutOrStdout(), settings, format)
}
