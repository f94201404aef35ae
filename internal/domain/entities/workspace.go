package entities

// WorkspaceStatus describes the version-control state of a directory.
type WorkspaceStatus struct {
	Tracked bool // the directory is inside a git work tree
	Clean   bool // no uncommitted changes; meaningless when not tracked
	Root    string
}
