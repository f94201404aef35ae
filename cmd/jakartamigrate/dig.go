package main

import (
	"github.com/rios0rios0/jakartamigrate/internal"
	"github.com/rios0rios0/jakartamigrate/internal/infrastructure/controllers"
	"go.uber.org/dig"
)

func newContainer() *dig.Container {
	container := dig.New()

	// Register all providers
	if err := internal.RegisterProviders(container); err != nil {
		panic(err)
	}

	return container
}

func injectAppContext(container *dig.Container) *internal.AppInternal {
	var appInternal *internal.AppInternal
	if err := container.Invoke(func(ai *internal.AppInternal) {
		appInternal = ai
	}); err != nil {
		panic(err)
	}

	return appInternal
}

func injectMigrateController(container *dig.Container) *controllers.MigrateController {
	var migrateController *controllers.MigrateController
	if err := container.Invoke(func(mc *controllers.MigrateController) {
		migrateController = mc
	}); err != nil {
		panic(err)
	}

	return migrateController
}
