package core

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/text/encoding/unicode"

	"github.com/fewensa/toolkit/errors"
)

// DefaultFileMode is the permission used when Append opens a file.
const DefaultFileMode os.FileMode = 0o644

// Append writes contents followed by a newline to the end of the named file,
// creating the file first if it does not exist.
//
// The file is opened once with O_CREATE|O_APPEND, so concurrent appenders
// never truncate each other. Handles implementing Syncer are synced before
// they are closed.
//
// contents is decoded as UTF-8; invalid byte sequences are replaced with
// U+FFFD rather than rejected. Errors carry errors.CodeIO and the file name
// under the "path" context key.
//
// Example:
//
//	memFS := billy.NewMemory()
//	_ = core.Append(memFS, "out.txt", []byte("A"))
//	_ = core.Append(memFS, "out.txt", []byte("B"))
//	// out.txt now holds "A\nB\n"
func Append(fsys FS, name string, contents []byte) error {
	ctx := map[string]interface{}{"path": name}

	line, err := decodeLossy(contents)
	if err != nil {
		return errors.WrapWithContext(err, errors.CodeInternal, "failed to decode contents", ctx)
	}

	slog.Default().Debug("appending to file", "path", name, "fs", fsys.Type().String())
	f, err := fsys.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, DefaultFileMode)
	if err != nil {
		return errors.WrapWithContext(err, errors.CodeIO, "failed to open file for append", ctx)
	}

	if _, err := io.WriteString(f, line+"\n"); err != nil {
		_ = f.Close()
		return errors.WrapWithContext(err, errors.CodeIO, "failed to append to file", ctx)
	}
	if s, ok := f.(Syncer); ok {
		if err := s.Sync(); err != nil {
			_ = f.Close()
			return errors.WrapWithContext(err, errors.CodeIO, "failed to sync file", ctx)
		}
	}
	if err := f.Close(); err != nil {
		return errors.WrapWithContext(err, errors.CodeIO, "failed to close file", ctx)
	}
	return nil
}

// decodeLossy decodes b as UTF-8, replacing invalid sequences with U+FFFD.
func decodeLossy(b []byte) (string, error) {
	out, err := unicode.UTF8.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
