package paths

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fewensa/toolkit/errors"
)

// OutDirEnv is the environment variable OutDir reads.
const OutDirEnv = "OUT_DIR"

// Canonicalize returns the absolute form of path with every symbolic link
// resolved. The path must exist.
func Canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.WrapWithContext(err, errors.CodeInternal, "failed to make path absolute", map[string]interface{}{
			"path": path,
		})
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		code := errors.CodeIO
		if errors.Is(err, fs.ErrNotExist) {
			code = errors.CodeNotFound
		}
		return "", errors.WrapWithContext(err, code, "failed to canonicalize path", map[string]interface{}{
			"path": path,
		})
	}
	return resolved, nil
}

// RootDir returns the canonical current working directory.
func RootDir() (string, error) {
	return Canonicalize(".")
}

// OutDir returns the canonical directory named by $OUT_DIR.
// An unset or empty variable is reported as errors.CodeInvalidConfig.
func OutDir() (string, error) {
	dir, ok := os.LookupEnv(OutDirEnv)
	if !ok || dir == "" {
		return "", errors.Newf(errors.CodeInvalidConfig, "%s is not set", OutDirEnv)
	}
	return Canonicalize(dir)
}

// MustRootDir is like RootDir but panics on failure.
func MustRootDir() string {
	dir, err := RootDir()
	must(err, "can not get root dir")
	return dir
}

// MustOutDir is like OutDir but panics on failure.
func MustOutDir() string {
	dir, err := OutDir()
	must(err, "can not get out dir")
	return dir
}

func must(err error, msg string) {
	if err == nil {
		return
	}
	slog.Default().Error(msg, "error", err, "code", errors.GetCode(err))
	panic(msg + ": " + err.Error())
}
