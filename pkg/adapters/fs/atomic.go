package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// TempFilePrefix is the prefix used for temporary files of in-flight creates.
	TempFilePrefix = ".noted-tmp-"
)

// writeFileExclusive creates filename with data, failing with an error
// matching os.ErrExist if it already exists.
//
// The data is written to a temp file in the same directory and hard-linked
// to the target name, so the check for existence and the creation are one
// step and a reader never sees a partially written file.
func writeFileExclusive(filename string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(filename)

	tmpFile, err := os.CreateTemp(dir, TempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write to temp file: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Chmod(tmpFile.Name(), perm); err != nil {
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}

	err = os.Link(tmpFile.Name(), filename)
	if err == nil {
		return nil
	}
	if errors.Is(err, os.ErrExist) {
		return err
	}

	// Filesystems without hard links.
	return writeFileExcl(filename, data, perm)
}

// writeFileExcl creates filename with O_EXCL and removes it again if the
// write does not complete.
func writeFileExcl(filename string, data []byte, perm os.FileMode) error {
	f, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return err
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(filename)
		return fmt.Errorf("failed to write file: %w", err)
	}

	if err := f.Close(); err != nil {
		os.Remove(filename)
		return fmt.Errorf("failed to close file: %w", err)
	}
	return nil
}
