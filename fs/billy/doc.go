// Package billy provides go-billy-backed implementations of core.FS.
//
// LocalFS wraps billy's osfs and MemoryFS wraps memfs. Both share one adapter,
// so code exercised against an in-memory filesystem in tests behaves the same
// on disk.
//
// Usage:
//
//	// Local filesystem rooted at "/"
//	fs := billy.NewLocal()
//
//	// Local filesystem rooted at a directory
//	fs := billy.NewLocal(billy.WithRoot(dir))
//
//	// In-memory filesystem for tests
//	fs := billy.NewMemory()
//
//	// Append a line to a file on disk
//	err := billy.AppendFile("build.log", []byte("done"))
//
// # Thread Safety
//
// FS instances (LocalFS, MemoryFS) are safe for concurrent use by
// multiple goroutines. File handles are not safe for concurrent use.
package billy
