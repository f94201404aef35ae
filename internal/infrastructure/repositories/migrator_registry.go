package repositories

import (
	domainRepos "github.com/rios0rios0/jakartamigrate/internal/domain/repositories"
)

// MigratorRegistry manages all registered migrator implementations, in
// registration order.
type MigratorRegistry struct {
	migrators []domainRepos.MigratorRepository
	byName    map[string]domainRepos.MigratorRepository
}

// NewMigratorRegistry creates an empty migrator registry.
func NewMigratorRegistry() *MigratorRegistry {
	return &MigratorRegistry{
		byName: make(map[string]domainRepos.MigratorRepository),
	}
}

// Register adds a migrator under its name. A later registration with the
// same name replaces the earlier one in place.
func (r *MigratorRegistry) Register(m domainRepos.MigratorRepository) {
	if _, exists := r.byName[m.Name()]; exists {
		for i, registered := range r.migrators {
			if registered.Name() == m.Name() {
				r.migrators[i] = m
			}
		}
	} else {
		r.migrators = append(r.migrators, m)
	}
	r.byName[m.Name()] = m
}

// Get returns the migrator with the given name, or nil if not registered.
func (r *MigratorRegistry) Get(name string) domainRepos.MigratorRepository {
	return r.byName[name]
}

// All returns every registered migrator in registration order.
func (r *MigratorRegistry) All() []domainRepos.MigratorRepository {
	result := make([]domainRepos.MigratorRepository, len(r.migrators))
	copy(result, r.migrators)
	return result
}

// Names returns the registered migrator names in registration order.
func (r *MigratorRegistry) Names() []string {
	names := make([]string, 0, len(r.migrators))
	for _, m := range r.migrators {
		names = append(names, m.Name())
	}
	return names
}

// Classify returns the first migrator among candidates that handles path,
// or nil when none does.
func Classify(
	candidates []domainRepos.MigratorRepository,
	path string,
) domainRepos.MigratorRepository {
	for _, m := range candidates {
		if m.Detect(path) {
			return m
		}
	}
	return nil
}
