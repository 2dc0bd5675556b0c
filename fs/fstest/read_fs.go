package fstest

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"testing"

	"github.com/fewensa/toolkit/fs/core"
)

// TestReadFS tests read-only operations: Open, Stat, ReadFile, Exists.
func TestReadFS(t *testing.T, filesystem core.FS) {
	content := []byte("test file content")

	if err := filesystem.MkdirAll("testdir", 0o755); err != nil {
		t.Fatalf("MkdirAll(testdir): setup failed: %v", err)
	}
	if err := filesystem.WriteFile("testdir/testfile.txt", content, 0o644); err != nil {
		t.Fatalf("WriteFile(testdir/testfile.txt): setup failed: %v", err)
	}

	t.Run("Open", func(t *testing.T) {
		f, err := filesystem.Open("testdir/testfile.txt")
		if err != nil {
			t.Fatalf("Open(%q): got error %v, want nil", "testdir/testfile.txt", err)
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			t.Fatalf("ReadAll(): got error %v", err)
		}
		if !bytes.Equal(data, content) {
			t.Errorf("Open(): read %q, want %q", data, content)
		}
	})

	t.Run("StatFile", func(t *testing.T) {
		info, err := filesystem.Stat("testdir/testfile.txt")
		if err != nil {
			t.Fatalf("Stat(): got error %v, want nil", err)
		}
		if info.IsDir() {
			t.Errorf("Stat(): IsDir() = true, want false")
		}
		if info.Size() != int64(len(content)) {
			t.Errorf("Stat(): Size() = %d, want %d", info.Size(), len(content))
		}
	})

	t.Run("StatDir", func(t *testing.T) {
		info, err := filesystem.Stat("testdir")
		if err != nil {
			t.Fatalf("Stat(testdir): got error %v, want nil", err)
		}
		if !info.IsDir() {
			t.Errorf("Stat(testdir): IsDir() = false, want true")
		}
	})

	t.Run("ReadFile", func(t *testing.T) {
		data, err := filesystem.ReadFile("testdir/testfile.txt")
		if err != nil {
			t.Fatalf("ReadFile(): got error %v, want nil", err)
		}
		if !bytes.Equal(data, content) {
			t.Errorf("ReadFile(): got %q, want %q", data, content)
		}
	})

	t.Run("OpenNotExist", func(t *testing.T) {
		_, err := filesystem.Open("missing.txt")
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Open(missing.txt): got error %v, want fs.ErrNotExist", err)
		}
	})

	t.Run("Exists", func(t *testing.T) {
		for _, tc := range []struct {
			name string
			want bool
		}{
			{"testdir/testfile.txt", true},
			{"testdir", true},
			{"missing.txt", false},
		} {
			got, err := filesystem.Exists(tc.name)
			if err != nil {
				t.Errorf("Exists(%q): got error %v, want nil", tc.name, err)
				continue
			}
			if got != tc.want {
				t.Errorf("Exists(%q) = %v, want %v", tc.name, got, tc.want)
			}
		}
	})
}
