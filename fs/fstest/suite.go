// Package fstest provides a conformance test suite for validating filesystem
// providers against the core.FS interface contracts.
//
// Providers call TestSuite from their own tests:
//
//	func TestMyProvider(t *testing.T) {
//	    fstest.TestSuite(t, func() core.FS {
//	        return myprovider.New()
//	    })
//	}
package fstest

import (
	"testing"

	"github.com/fewensa/toolkit/fs/core"
)

// TestSuite runs all conformance tests against a filesystem.
// newFS must return a fresh, empty filesystem for each call.
func TestSuite(t *testing.T, newFS func() core.FS) {
	t.Run("ReadFS", func(t *testing.T) {
		TestReadFS(t, newFS())
	})
	t.Run("WriteFS", func(t *testing.T) {
		TestWriteFS(t, newFS())
	})
	t.Run("ManageFS", func(t *testing.T) {
		TestManageFS(t, newFS())
	})
	t.Run("Append", func(t *testing.T) {
		TestAppend(t, newFS())
	})
}
