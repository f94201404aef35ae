package repositories

import (
	domainRepos "github.com/rios0rios0/jakartamigrate/internal/domain/repositories"
	fsRepo "github.com/rios0rios0/jakartamigrate/internal/infrastructure/repositories/filesystem"
	gitRepo "github.com/rios0rios0/jakartamigrate/internal/infrastructure/repositories/git"
	invRepo "github.com/rios0rios0/jakartamigrate/internal/infrastructure/repositories/inventory"
	javaRepo "github.com/rios0rios0/jakartamigrate/internal/infrastructure/repositories/java"
	pomRepo "github.com/rios0rios0/jakartamigrate/internal/infrastructure/repositories/pom"
	"go.uber.org/dig"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(fsRepo.NewFileRepository); err != nil {
		return err
	}
	if err := container.Provide(gitRepo.NewWorkspaceRepository); err != nil {
		return err
	}
	if err := container.Provide(invRepo.NewCycloneDXInventoryRepository); err != nil {
		return err
	}

	// Register migrator registry; Java sources are classified before descriptors
	if err := container.Provide(func(files domainRepos.FileRepository) *MigratorRegistry {
		reg := NewMigratorRegistry()
		reg.Register(javaRepo.NewJavaMigratorRepository(files))
		reg.Register(pomRepo.NewPomMigratorRepository(files))
		return reg
	}); err != nil {
		return err
	}

	return nil
}
