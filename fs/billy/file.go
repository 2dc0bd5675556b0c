package billy

import (
	"io/fs"

	"github.com/go-git/go-billy/v5"

	"github.com/fewensa/toolkit/fs/core"
)

// File wraps billy.File to implement both core.File and fs.File.
// It stores the filename since billy.File.Name() may return different formats
// depending on the backend, and the filesystem to support Stat() calls.
type File struct {
	file billy.File
	fs   billy.Basic
	name string
}

// Read implements io.Reader.
func (f *File) Read(p []byte) (int, error) {
	return f.file.Read(p)
}

// Write implements io.Writer.
func (f *File) Write(p []byte) (int, error) {
	return f.file.Write(p)
}

// Close implements io.Closer.
func (f *File) Close() error {
	return f.file.Close()
}

// Stat implements fs.File.Stat.
// billy.File has no Stat, so the filesystem is asked instead.
func (f *File) Stat() (fs.FileInfo, error) {
	return f.fs.Stat(f.name)
}

// Name returns the name provided to Open/Create.
func (f *File) Name() string {
	return f.name
}

// Sync implements core.Syncer, flushing local files to disk before
// core.Append closes them. For backends without Sync (e.g., memfs), this is
// a no-op.
func (f *File) Sync() error {
	if syncer, ok := f.file.(interface{ Sync() error }); ok {
		return syncer.Sync()
	}
	return nil
}

// Compile-time interface checks.
var (
	_ core.File   = (*File)(nil)
	_ fs.File     = (*File)(nil)
	_ core.Syncer = (*File)(nil)
)
