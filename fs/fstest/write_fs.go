package fstest

import (
	"bytes"
	"os"
	"testing"

	"github.com/fewensa/toolkit/fs/core"
)

// TestWriteFS tests write operations: Create, OpenFile, WriteFile, MkdirAll.
func TestWriteFS(t *testing.T, filesystem core.FS) {
	t.Run("Create", func(t *testing.T) {
		f, err := filesystem.Create("created.txt")
		if err != nil {
			t.Fatalf("Create(): got error %v, want nil", err)
		}
		if _, err := f.Write([]byte("hello")); err != nil {
			t.Fatalf("Write(): got error %v", err)
		}
		if err := f.Close(); err != nil {
			t.Fatalf("Close(): got error %v", err)
		}
		expectContent(t, filesystem, "created.txt", "hello")
	})

	t.Run("CreateTruncates", func(t *testing.T) {
		if err := filesystem.WriteFile("trunc.txt", []byte("long content"), 0o644); err != nil {
			t.Fatalf("WriteFile(): setup failed: %v", err)
		}
		f, err := filesystem.Create("trunc.txt")
		if err != nil {
			t.Fatalf("Create(): got error %v, want nil", err)
		}
		if err := f.Close(); err != nil {
			t.Fatalf("Close(): got error %v", err)
		}
		expectContent(t, filesystem, "trunc.txt", "")
	})

	t.Run("CreateInNewDir", func(t *testing.T) {
		f, err := filesystem.Create("a/b/c.txt")
		if err != nil {
			t.Fatalf("Create(a/b/c.txt): got error %v, want nil", err)
		}
		if err := f.Close(); err != nil {
			t.Fatalf("Close(): got error %v", err)
		}
		ok, err := filesystem.Exists("a/b")
		if err != nil || !ok {
			t.Errorf("Exists(a/b) = %v, %v; want true, nil", ok, err)
		}
	})

	t.Run("OpenFileAppend", func(t *testing.T) {
		if err := filesystem.WriteFile("append.txt", []byte("one\n"), 0o644); err != nil {
			t.Fatalf("WriteFile(): setup failed: %v", err)
		}
		f, err := filesystem.OpenFile("append.txt", os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			t.Fatalf("OpenFile(O_APPEND): got error %v, want nil", err)
		}
		if _, err := f.Write([]byte("two\n")); err != nil {
			t.Fatalf("Write(): got error %v", err)
		}
		if err := f.Close(); err != nil {
			t.Fatalf("Close(): got error %v", err)
		}
		expectContent(t, filesystem, "append.txt", "one\ntwo\n")
	})

	t.Run("MkdirAll", func(t *testing.T) {
		if err := filesystem.MkdirAll("x/y/z", 0o755); err != nil {
			t.Fatalf("MkdirAll(): got error %v, want nil", err)
		}
		// Idempotent on existing directories.
		if err := filesystem.MkdirAll("x/y", 0o755); err != nil {
			t.Errorf("MkdirAll(existing): got error %v, want nil", err)
		}
		info, err := filesystem.Stat("x/y/z")
		if err != nil {
			t.Fatalf("Stat(x/y/z): got error %v", err)
		}
		if !info.IsDir() {
			t.Errorf("Stat(x/y/z): IsDir() = false, want true")
		}
	})
}

func expectContent(t *testing.T, filesystem core.FS, name, want string) {
	t.Helper()

	got, err := filesystem.ReadFile(name)
	if err != nil {
		t.Fatalf("ReadFile(%q): got error %v", name, err)
	}
	if !bytes.Equal(got, []byte(want)) {
		t.Errorf("ReadFile(%q) = %q, want %q", name, got, want)
	}
}
