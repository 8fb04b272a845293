// Package fsutil provides file system helpers for the result sink.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultPrefix is prepended to the source file name when no result path
// is given.
const DefaultPrefix = "new_"

// ResultPath returns the absolute destination for a run. An explicit result
// wins. Otherwise the result is named prefix+base(source) and placed in dir,
// or next to the source when dir is empty.
func ResultPath(source, result, dir, prefix string) (string, error) {
	if result != "" {
		return filepath.Abs(result)
	}
	if prefix == "" {
		prefix = DefaultPrefix
	}

	absSource, err := filepath.Abs(source)
	if err != nil {
		return "", err
	}
	if dir == "" {
		dir = filepath.Dir(absSource)
	}
	return filepath.Abs(filepath.Join(dir, prefix+filepath.Base(absSource)))
}

// WriteResult writes data to path through a temporary file in the same
// directory, so a failed write never leaves a partial result behind.
func WriteResult(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create result file in %s: %w", dir, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write result file: %w", err)
	}
	if err = tmp.Chmod(0644); err != nil {
		return fmt.Errorf("failed to set result file mode: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close result file: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move result into place: %w", err)
	}
	return nil
}
