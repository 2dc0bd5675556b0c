package fstest

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/fewensa/toolkit/fs/core"
)

// TestManageFS tests management operations: Remove.
func TestManageFS(t *testing.T, filesystem core.FS) {
	t.Run("RemoveFile", func(t *testing.T) {
		if err := filesystem.WriteFile("remove.txt", []byte("x"), 0o644); err != nil {
			t.Fatalf("WriteFile(): setup failed: %v", err)
		}
		if err := filesystem.Remove("remove.txt"); err != nil {
			t.Fatalf("Remove(): got error %v, want nil", err)
		}
		if ok, _ := filesystem.Exists("remove.txt"); ok {
			t.Errorf("Exists(remove.txt) = true after Remove")
		}
	})

	t.Run("RemoveEmptyDir", func(t *testing.T) {
		if err := filesystem.MkdirAll("emptydir", 0o755); err != nil {
			t.Fatalf("MkdirAll(): setup failed: %v", err)
		}
		if err := filesystem.Remove("emptydir"); err != nil {
			t.Errorf("Remove(emptydir): got error %v, want nil", err)
		}
	})

	t.Run("RemoveNotExist", func(t *testing.T) {
		err := filesystem.Remove("missing.txt")
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Remove(missing.txt): got error %v, want fs.ErrNotExist", err)
		}
	})
}
