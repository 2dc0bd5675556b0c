package fstest

import (
	"testing"

	"github.com/fewensa/toolkit/fs/core"
)

// TestAppend tests core.Append against the filesystem: creation of a missing
// file, newline termination and preservation of existing content.
func TestAppend(t *testing.T, filesystem core.FS) {
	t.Run("CreatesMissing", func(t *testing.T) {
		if err := core.Append(filesystem, "logs/new.txt", []byte("first")); err != nil {
			t.Fatalf("Append(): got error %v, want nil", err)
		}
		expectContent(t, filesystem, "logs/new.txt", "first\n")
	})

	t.Run("PreservesExisting", func(t *testing.T) {
		if err := filesystem.WriteFile("keep.txt", []byte("a\n"), 0o644); err != nil {
			t.Fatalf("WriteFile(): setup failed: %v", err)
		}
		for _, line := range []string{"b", "c"} {
			if err := core.Append(filesystem, "keep.txt", []byte(line)); err != nil {
				t.Fatalf("Append(%q): got error %v", line, err)
			}
		}
		expectContent(t, filesystem, "keep.txt", "a\nb\nc\n")
	})

	t.Run("LossyDecode", func(t *testing.T) {
		if err := core.Append(filesystem, "lossy.txt", []byte{'o', 'k', 0xff}); err != nil {
			t.Fatalf("Append(): got error %v, want nil", err)
		}
		expectContent(t, filesystem, "lossy.txt", "ok�\n")
	})
}
