package controllers

import (
	"github.com/rios0rios0/jakartamigrate/internal/domain/entities"
	"go.uber.org/dig"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewMigrateController); err != nil {
		return err
	}
	if err := container.Provide(NewInitConfigController); err != nil {
		return err
	}
	if err := container.Provide(NewRulesController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates the subcommand controllers into a slice for the
// AppInternal. The migrate controller is mounted on the root command.
func NewControllers(
	initConfigController *InitConfigController,
	rulesController *RulesController,
) *[]entities.Controller {
	return &[]entities.Controller{
		initConfigController,
		rulesController,
	}
}
