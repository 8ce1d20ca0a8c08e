package repositories

import "io/fs"

// FileRepository gives access to the files of one project tree.
// Names are slash-separated and relative to the tree root, as in io/fs.
type FileRepository interface {
	// Stat returns the file information of name.
	Stat(name string) (fs.FileInfo, error)

	// ReadDir lists the entries of a directory sorted by filename.
	ReadDir(name string) ([]fs.DirEntry, error)

	// ReadFile returns the full content of name.
	ReadFile(name string) ([]byte, error)

	// WriteFile replaces the full content of name in a single operation.
	WriteFile(name string, data []byte) error
}
