// Package core defines the filesystem contract the toolkit writes through and
// the operations built on top of it.
//
// Code that touches files accepts a core.FS rather than calling the os
// package directly, so the same logic runs against the local disk or an
// in-memory filesystem in tests. Providers live in sibling packages:
//
//   - github.com/fewensa/toolkit/fs/billy - go-billy-backed local and memory providers
//
// # Interface Hierarchy
//
// FS is composed of three small interfaces:
//
//   - ReadFS: Open, Stat, ReadFile, Exists
//   - WriteFS: Create, OpenFile, WriteFile, MkdirAll
//   - ManageFS: Remove
//
// FS embeds fs.FS, so it also works with fs.WalkDir, fs.ReadFile and friends.
//
// # Appending
//
//	err := core.Append(filesystem, "events.log", []byte("started"))
//
// Append creates the file when it is missing and then writes the contents
// followed by a newline. It takes no locks; concurrent appenders from other
// processes may interleave.
package core
