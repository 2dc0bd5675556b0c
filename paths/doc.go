// Package paths resolves canonical filesystem locations.
//
// Canonicalize returns the absolute, symlink-free form of an existing path.
// RootDir and OutDir resolve the two locations build and test tooling
// usually needs: the working directory and the directory named by the
// OUT_DIR environment variable.
//
// RootDir and OutDir return errors. MustRootDir and MustOutDir are for build
// scripts and tests where a missing directory is a deployment mistake: they
// log the failure and panic.
package paths
