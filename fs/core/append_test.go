package core_test

import (
	stderrors "errors"
	"io/fs"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fewensa/toolkit/errors"
	"github.com/fewensa/toolkit/fs/billy"
	"github.com/fewensa/toolkit/fs/core"
)

// faultyFS injects failures into an in-memory filesystem and records the
// flags OpenFile was called with.
type faultyFS struct {
	*billy.MemoryFS
	openErr  error
	syncErr  error
	creates  int
	lastFlag int
}

func (f *faultyFS) Create(name string) (core.File, error) {
	f.creates++
	return f.MemoryFS.Create(name)
}

func (f *faultyFS) OpenFile(name string, flag int, perm fs.FileMode) (core.File, error) {
	f.lastFlag = flag
	if f.openErr != nil {
		return nil, f.openErr
	}
	file, err := f.MemoryFS.OpenFile(name, flag, perm)
	if err != nil || f.syncErr == nil {
		return file, err
	}
	return &failingSyncFile{File: file, err: f.syncErr}, nil
}

type failingSyncFile struct {
	core.File
	err error
}

func (f *failingSyncFile) Sync() error { return f.err }

func TestAppend(t *testing.T) {
	fsys := billy.NewMemory()

	require.NoError(t, core.Append(fsys, "_tmp.txt", []byte("A")))
	require.NoError(t, core.Append(fsys, "_tmp.txt", []byte("B")))
	require.NoError(t, core.Append(fsys, "_tmp.txt", []byte("C")))

	data, err := fsys.ReadFile("_tmp.txt")
	require.NoError(t, err)
	require.Equal(t, "A\nB\nC\n", string(data))
}

func TestAppend_PreservesExistingContent(t *testing.T) {
	fsys := billy.NewMemory()
	require.NoError(t, fsys.WriteFile("notes.txt", []byte("first\n"), 0o644))

	require.NoError(t, core.Append(fsys, "notes.txt", []byte("second")))

	data, err := fsys.ReadFile("notes.txt")
	require.NoError(t, err)
	require.Equal(t, "first\nsecond\n", string(data))
}

func TestAppend_Contents(t *testing.T) {
	tests := []struct {
		name     string
		contents []byte
		want     string
	}{
		{name: "empty", contents: nil, want: "\n"},
		{name: "utf8", contents: []byte("héllo"), want: "héllo\n"},
		{name: "embedded newline", contents: []byte("a\nb"), want: "a\nb\n"},
		{name: "invalid byte", contents: []byte{'f', 0xff, 'o'}, want: "f�o\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := billy.NewMemory()
			require.NoError(t, core.Append(fsys, "out.txt", tt.contents))

			data, err := fsys.ReadFile("out.txt")
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))
		})
	}
}

func TestAppend_Errors(t *testing.T) {
	cause := stderrors.New("boom")

	tests := []struct {
		name string
		fsys core.FS
	}{
		{name: "open fails", fsys: &faultyFS{MemoryFS: billy.NewMemory(), openErr: cause}},
		{name: "sync fails", fsys: &faultyFS{MemoryFS: billy.NewMemory(), syncErr: cause}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := core.Append(tt.fsys, "out.txt", []byte("x"))
			require.Error(t, err)
			require.ErrorIs(t, err, cause)
			require.Equal(t, errors.CodeIO, errors.GetCode(err))

			var coded errors.CodedError
			require.True(t, errors.As(err, &coded))
			require.Equal(t, "out.txt", coded.Context()["path"])
		})
	}
}

func TestAppend_SingleOpenWithoutTruncate(t *testing.T) {
	fsys := &faultyFS{MemoryFS: billy.NewMemory()}

	require.NoError(t, core.Append(fsys, "shared.txt", []byte("A")))

	// Another writer lands a line between two appends.
	f, err := fsys.MemoryFS.OpenFile("shared.txt", os.O_WRONLY|os.O_APPEND, 0o644)
	require.NoError(t, err)
	_, err = f.Write([]byte("other\n"))
	require.NoError(t, err)
	require.NoError(t, f.Close())

	require.NoError(t, core.Append(fsys, "shared.txt", []byte("B")))

	assert.Zero(t, fsys.creates, "Append must not go through truncating Create")
	assert.Equal(t, os.O_CREATE|os.O_WRONLY|os.O_APPEND, fsys.lastFlag)

	data, err := fsys.ReadFile("shared.txt")
	require.NoError(t, err)
	require.Equal(t, "A\nother\nB\n", string(data))
}

func TestAppend_CreatesMissingParents(t *testing.T) {
	fsys := billy.NewMemory()
	require.NoError(t, core.Append(fsys, "logs/today/out.txt", []byte("x")))

	data, err := fsys.ReadFile("logs/today/out.txt")
	require.NoError(t, err)
	require.Equal(t, "x\n", string(data))
}

func TestFSType_String(t *testing.T) {
	assert.Equal(t, "unknown", core.FSTypeUnknown.String())
	assert.Equal(t, "local", core.FSTypeLocal.String())
	assert.Equal(t, "memory", core.FSTypeMemory.String())
	assert.Equal(t, "unknown", core.FSType(999).String())
}

func TestReexportedErrors(t *testing.T) {
	assert.ErrorIs(t, core.ErrNotExist, fs.ErrNotExist)
	assert.ErrorIs(t, core.ErrExist, fs.ErrExist)
	assert.ErrorIs(t, core.ErrPermission, fs.ErrPermission)
}
