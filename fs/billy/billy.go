package billy

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/fewensa/toolkit/errors"
	"github.com/fewensa/toolkit/fs/core"
)

// LocalFS wraps billy's osfs for local filesystem access.
type LocalFS struct {
	adapter
}

// MemoryFS wraps billy's memfs for in-memory filesystem access.
type MemoryFS struct {
	adapter
}

// Option configures filesystem creation.
type Option func(*config)

type config struct {
	root string
}

// WithRoot roots a local filesystem at dir instead of "/".
// Ignored by NewMemory.
func WithRoot(dir string) Option {
	return func(c *config) {
		c.root = dir
	}
}

func newConfig(opts []Option) config {
	c := config{root: "/"}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// NewLocal creates a go-billy-backed local filesystem.
// The filesystem is rooted at "/" unless WithRoot is given.
func NewLocal(opts ...Option) *LocalFS {
	c := newConfig(opts)
	return &LocalFS{adapter{bfs: osfs.New(c.root)}}
}

// NewMemory creates a go-billy-backed in-memory filesystem.
// The filesystem is initially empty.
func NewMemory(_ ...Option) *MemoryFS {
	return &MemoryFS{adapter{bfs: memfs.New()}}
}

// Type returns FSTypeLocal.
func (lfs *LocalFS) Type() core.FSType {
	return core.FSTypeLocal
}

// Type returns FSTypeMemory.
func (mfs *MemoryFS) Type() core.FSType {
	return core.FSTypeMemory
}

// AppendFile appends contents and a newline to the file at path on the local
// disk, creating the file if needed. Relative paths are resolved against the
// current working directory.
func AppendFile(path string, contents []byte) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.WrapWithContext(err, errors.CodeIO, "failed to resolve path", map[string]interface{}{
			"path": path,
		})
	}
	return core.Append(NewLocal(), abs, contents)
}

// adapter implements everything in core.FS except Type on top of a
// billy.Filesystem.
type adapter struct {
	bfs billy.Filesystem
}

// normalize converts paths to use forward slashes consistently.
// Billy's chroot handles containment.
func normalize(path string) string {
	return filepath.ToSlash(filepath.Clean(path))
}

// Open opens the named file for reading.
func (a *adapter) Open(name string) (fs.File, error) {
	name = normalize(name)
	f, err := a.bfs.Open(name)
	if err != nil {
		return nil, err
	}
	return &File{file: f, fs: a.bfs, name: name}, nil
}

// Stat returns file metadata for the named file.
func (a *adapter) Stat(name string) (fs.FileInfo, error) {
	return a.bfs.Stat(normalize(name))
}

// ReadFile reads the named file and returns its contents.
func (a *adapter) ReadFile(name string) ([]byte, error) {
	return util.ReadFile(a.bfs, normalize(name))
}

// Exists reports whether the named file or directory exists.
func (a *adapter) Exists(name string) (bool, error) {
	_, err := a.bfs.Stat(normalize(name))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// Create creates or truncates the named file for writing.
func (a *adapter) Create(name string) (core.File, error) {
	name = normalize(name)
	f, err := a.bfs.Create(name)
	if err != nil {
		return nil, err
	}
	return &File{file: f, fs: a.bfs, name: name}, nil
}

// OpenFile opens a file with the specified flags and permissions.
func (a *adapter) OpenFile(name string, flag int, perm fs.FileMode) (core.File, error) {
	name = normalize(name)
	f, err := a.bfs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return &File{file: f, fs: a.bfs, name: name}, nil
}

// WriteFile writes data to the named file, creating it if necessary.
func (a *adapter) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return util.WriteFile(a.bfs, normalize(name), data, perm)
}

// MkdirAll creates a directory named path, along with any necessary parents.
func (a *adapter) MkdirAll(path string, perm fs.FileMode) error {
	return a.bfs.MkdirAll(normalize(path), perm)
}

// Remove removes the named file or empty directory.
func (a *adapter) Remove(name string) error {
	return a.bfs.Remove(normalize(name))
}

// Compile-time interface checks.
var (
	_ core.FS = (*LocalFS)(nil)
	_ core.FS = (*MemoryFS)(nil)
)
