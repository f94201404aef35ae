//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/jakartamigrate/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// MigrationResultBuilder helps create per-file results with a fluent interface.
type MigrationResultBuilder struct {
	*testkit.BaseBuilder
	path         string
	migrator     string
	replacements int
	errors       []string
	dependencies []entities.Coordinate
}

// NewMigrationResultBuilder creates a new result builder with sensible defaults.
func NewMigrationResultBuilder() *MigrationResultBuilder {
	return &MigrationResultBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		path:        "src/main/java/App.java",
		migrator:    "java",
	}
}

// WithPath sets the file path.
func (b *MigrationResultBuilder) WithPath(path string) *MigrationResultBuilder {
	b.path = path
	return b
}

// WithMigrator sets the migrator name.
func (b *MigrationResultBuilder) WithMigrator(name string) *MigrationResultBuilder {
	b.migrator = name
	return b
}

// WithReplacements sets the number of replacements; a positive count marks
// the result as modified.
func (b *MigrationResultBuilder) WithReplacements(count int) *MigrationResultBuilder {
	b.replacements = count
	return b
}

// WithError adds an error message.
func (b *MigrationResultBuilder) WithError(msg string) *MigrationResultBuilder {
	b.errors = append(b.errors, msg)
	return b
}

// WithDependency adds a post-migration dependency coordinate.
func (b *MigrationResultBuilder) WithDependency(coordinate entities.Coordinate) *MigrationResultBuilder {
	b.dependencies = append(b.dependencies, coordinate)
	return b
}

// Build creates the result (satisfies testkit.Builder interface).
func (b *MigrationResultBuilder) Build() interface{} {
	return b.BuildResult()
}

// BuildResult creates the result with a concrete return type.
func (b *MigrationResultBuilder) BuildResult() entities.MigrationResult {
	result := entities.NewMigrationResult(b.path, b.migrator)
	result.Replacements = b.replacements
	result.Modified = b.replacements > 0
	result.Dependencies = append([]entities.Coordinate{}, b.dependencies...)
	for _, msg := range b.errors {
		result.Fail(msg)
	}
	return result
}

// Reset clears the builder state, allowing it to be reused.
func (b *MigrationResultBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.path = "src/main/java/App.java"
	b.migrator = "java"
	b.replacements = 0
	b.errors = nil
	b.dependencies = nil
	return b
}

// Clone creates a deep copy of the MigrationResultBuilder.
func (b *MigrationResultBuilder) Clone() testkit.Builder {
	return &MigrationResultBuilder{
		BaseBuilder:  b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		path:         b.path,
		migrator:     b.migrator,
		replacements: b.replacements,
		errors:       append([]string{}, b.errors...),
		dependencies: append([]entities.Coordinate{}, b.dependencies...),
	}
}
