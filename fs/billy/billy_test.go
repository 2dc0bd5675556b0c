package billy

import (
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fewensa/toolkit/fs/core"
)

// providers returns one instance of every provider, rooted in a fresh
// directory where that matters.
func providers(t *testing.T) map[string]core.FS {
	t.Helper()
	return map[string]core.FS{
		"local":  NewLocal(WithRoot(t.TempDir())),
		"memory": NewMemory(),
	}
}

func TestProviders_Type(t *testing.T) {
	assert.Equal(t, core.FSTypeLocal, NewLocal().Type())
	assert.Equal(t, core.FSTypeMemory, NewMemory().Type())
}

func TestProviders_ReadWrite(t *testing.T) {
	for name, fsys := range providers(t) {
		t.Run(name, func(t *testing.T) {
			exists, err := fsys.Exists("dir/file.txt")
			require.NoError(t, err)
			require.False(t, exists)

			require.NoError(t, fsys.MkdirAll("dir", 0o755))
			require.NoError(t, fsys.WriteFile("dir/file.txt", []byte("hello"), 0o644))

			exists, err = fsys.Exists("dir/file.txt")
			require.NoError(t, err)
			require.True(t, exists)

			data, err := fsys.ReadFile("dir/file.txt")
			require.NoError(t, err)
			require.Equal(t, "hello", string(data))

			info, err := fsys.Stat("dir/file.txt")
			require.NoError(t, err)
			require.Equal(t, int64(5), info.Size())

			f, err := fsys.Open("dir/file.txt")
			require.NoError(t, err)
			got, err := io.ReadAll(f)
			require.NoError(t, err)
			require.Equal(t, "hello", string(got))
			require.NoError(t, f.Close())

			require.NoError(t, fsys.Remove("dir/file.txt"))
			_, err = fsys.Stat("dir/file.txt")
			require.ErrorIs(t, err, iofs.ErrNotExist)
		})
	}
}

func TestProviders_CreateAndAppendFlag(t *testing.T) {
	for name, fsys := range providers(t) {
		t.Run(name, func(t *testing.T) {
			f, err := fsys.Create("log.txt")
			require.NoError(t, err)
			require.Equal(t, "log.txt", f.Name())
			_, err = f.Write([]byte("one\n"))
			require.NoError(t, err)
			require.NoError(t, f.Close())

			f, err = fsys.OpenFile("log.txt", os.O_WRONLY|os.O_APPEND, 0o644)
			require.NoError(t, err)
			_, err = f.Write([]byte("two\n"))
			require.NoError(t, err)
			require.NoError(t, f.Close())

			data, err := fsys.ReadFile("log.txt")
			require.NoError(t, err)
			require.Equal(t, "one\ntwo\n", string(data))
		})
	}
}

func TestProviders_OpenMissing(t *testing.T) {
	for name, fsys := range providers(t) {
		t.Run(name, func(t *testing.T) {
			_, err := fsys.Open("missing.txt")
			require.ErrorIs(t, err, iofs.ErrNotExist)

			_, err = fsys.OpenFile("missing.txt", os.O_WRONLY|os.O_APPEND, 0o644)
			require.Error(t, err)
		})
	}
}

func TestFile_StatSync(t *testing.T) {
	for name, fsys := range providers(t) {
		t.Run(name, func(t *testing.T) {
			f, err := fsys.Create("data.bin")
			require.NoError(t, err)
			_, err = f.Write([]byte("abcdef"))
			require.NoError(t, err)

			info, err := f.Stat()
			require.NoError(t, err)
			require.Equal(t, "data.bin", info.Name())

			s, ok := f.(core.Syncer)
			require.True(t, ok, "provider files must support Sync for Append")
			require.NoError(t, s.Sync())
			require.NoError(t, f.Close())
		})
	}
}

func TestLocalFS_Root(t *testing.T) {
	dir := t.TempDir()
	fsys := NewLocal(WithRoot(dir))
	require.NoError(t, fsys.WriteFile("a.txt", []byte("x"), 0o644))

	data, err := os.ReadFile(filepath.Join(dir, "a.txt"))
	require.NoError(t, err)
	require.Equal(t, "x", string(data))

	// Without a root, absolute paths resolve against "/".
	abs := filepath.Join(dir, "a.txt")
	data, err = NewLocal().ReadFile(abs)
	require.NoError(t, err)
	require.Equal(t, "x", string(data))
}

func TestAppendFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "_tmp.txt")

	require.NoError(t, AppendFile(path, []byte("A")))
	require.NoError(t, AppendFile(path, []byte("B")))
	require.NoError(t, AppendFile(path, []byte("C")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "A\nB\nC\n", string(data))
}

func TestAppendFile_Relative(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, AppendFile("rel.txt", []byte("line")))

	data, err := os.ReadFile(filepath.Join(dir, "rel.txt"))
	require.NoError(t, err)
	require.Equal(t, "line\n", string(data))
}
