package entities

// MigrationType selects which rewriters a run applies.
type MigrationType string

const (
	MigrationJavaNamespace MigrationType = "java"
	MigrationPomDependency MigrationType = "pom"
	MigrationAll           MigrationType = "all"
)

// Includes reports whether a run of type t should use the migrator with the
// given name.
func (t MigrationType) Includes(migratorName string) bool {
	return t == "" || t == MigrationAll || string(t) == migratorName
}

// MigrationOptions holds runtime options passed to migrators.
type MigrationOptions struct {
	DryRun   bool
	Backup   bool
	Verbose  bool
	ShowDiff bool
}

// MigrationResult is the outcome of migrating one file.
//
// Errors and Modified are mutually exclusive: a file that failed anywhere
// is never reported as modified.
type MigrationResult struct {
	Path         string
	Migrator     string
	Modified     bool
	Replacements int
	Errors       []string
	Changes      []Change
	Diff         string       // unified diff, only when ShowDiff is set
	Dependencies []Coordinate // post-migration descriptor coordinates
}

// NewMigrationResult creates an unmodified result for a path.
func NewMigrationResult(path, migrator string) MigrationResult {
	return MigrationResult{
		Path:     path,
		Migrator: migrator,
		Errors:   []string{},
		Changes:  []Change{},
	}
}

// Fail records an error and clears the modified state.
func (r *MigrationResult) Fail(msg string) {
	r.Errors = append(r.Errors, msg)
	r.Modified = false
}

// HasErrors reports whether the migration of this file failed.
func (r *MigrationResult) HasErrors() bool { return len(r.Errors) > 0 }
