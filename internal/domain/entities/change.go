package entities

// ChangeKind tags what a single recorded edit did.
type ChangeKind string

const (
	ChangeBOMUpdate               ChangeKind = "bom_update"
	ChangeManagedDependencyUpdate ChangeKind = "dependency_management_update"
	ChangeDependencyMigration     ChangeKind = "dependency_migration"
	ChangeVersionRemoved          ChangeKind = "version_removed"
	ChangePropertyUpdate          ChangeKind = "property_update"
	ChangePluginUpdate            ChangeKind = "plugin_update"
	ChangeImportNamespace         ChangeKind = "import"
	ChangePackageNamespace        ChangeKind = "package"
	ChangeCodeReferenceNamespace  ChangeKind = "code"
)

// Change is one edit applied to a file.
type Change struct {
	Kind ChangeKind `json:"type" yaml:"type"`
	Old  string     `json:"old" yaml:"old"`
	New  string     `json:"new" yaml:"new"`
	Note string     `json:"note,omitempty" yaml:"note,omitempty"`
	Line int        `json:"line,omitempty" yaml:"line,omitempty"`
}

// ChangeLog accumulates the edits made to one file, in the order they were
// made. It is append-only and never deduplicates; a file is modified iff the
// log is non-empty.
type ChangeLog struct {
	changes []Change
}

// NewChangeLog creates an empty change log.
func NewChangeLog() *ChangeLog {
	return &ChangeLog{}
}

// Record appends changes to the log.
func (l *ChangeLog) Record(changes ...Change) {
	l.changes = append(l.changes, changes...)
}

// Changes returns a copy of the recorded changes.
func (l *ChangeLog) Changes() []Change {
	out := make([]Change, len(l.changes))
	copy(out, l.changes)
	return out
}

// Len returns the number of recorded changes.
func (l *ChangeLog) Len() int { return len(l.changes) }

// Modified reports whether anything was recorded.
func (l *ChangeLog) Modified() bool { return len(l.changes) > 0 }
