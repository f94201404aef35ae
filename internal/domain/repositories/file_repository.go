package repositories

// FileRepository abstracts reading and persisting the files being migrated.
type FileRepository interface {
	// ReadFile returns the raw bytes of a file.
	ReadFile(path string) ([]byte, error)

	// Backup stores the original bytes next to path before it is overwritten.
	Backup(path string, original []byte) error

	// WriteFile overwrites an existing file. Parent directories are not created.
	WriteFile(path string, content []byte) error
}
