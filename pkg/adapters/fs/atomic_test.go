package fs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteFileExclusive(t *testing.T) {
	t.Run("Creates New File", func(t *testing.T) {
		tmpDir := t.TempDir()
		filename := filepath.Join(tmpDir, "test.txt")
		content := []byte("hello exclusive")

		if err := writeFileExclusive(filename, content, 0644); err != nil {
			t.Fatalf("writeFileExclusive failed: %v", err)
		}

		got, err := os.ReadFile(filename)
		if err != nil {
			t.Fatalf("Failed to read file: %v", err)
		}
		if string(got) != string(content) {
			t.Errorf("Expected content 'hello exclusive', got '%s'", string(got))
		}

		info, err := os.Stat(filename)
		if err != nil {
			t.Fatalf("stat failed: %v", err)
		}
		if info.Mode().Perm() != 0644 {
			t.Errorf("expected mode 0644, got %v", info.Mode().Perm())
		}
	})

	t.Run("Refuses Existing File", func(t *testing.T) {
		tmpDir := t.TempDir()
		filename := filepath.Join(tmpDir, "test.txt")

		if err := os.WriteFile(filename, []byte("initial"), 0644); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}

		err := writeFileExclusive(filename, []byte("second"), 0644)
		if !errors.Is(err, os.ErrExist) {
			t.Fatalf("expected os.ErrExist, got %v", err)
		}

		got, _ := os.ReadFile(filename)
		if string(got) != "initial" {
			t.Errorf("existing file was modified: %q", string(got))
		}
	})

	t.Run("Leaves No Temp Files", func(t *testing.T) {
		tmpDir := t.TempDir()
		filename := filepath.Join(tmpDir, "test.txt")

		_ = writeFileExclusive(filename, []byte("one"), 0644)
		_ = writeFileExclusive(filename, []byte("two"), 0644)

		entries, err := os.ReadDir(tmpDir)
		if err != nil {
			t.Fatalf("ReadDir failed: %v", err)
		}
		for _, e := range entries {
			if strings.HasPrefix(e.Name(), TempFilePrefix) {
				t.Errorf("found leftover temp file: %s", e.Name())
			}
		}
		if len(entries) != 1 {
			t.Errorf("expected exactly 1 file, got %d", len(entries))
		}
	})
}

func TestWriteFileExcl(t *testing.T) {
	tmpDir := t.TempDir()
	filename := filepath.Join(tmpDir, "plain.txt")

	if err := writeFileExcl(filename, []byte("data"), 0644); err != nil {
		t.Fatalf("writeFileExcl failed: %v", err)
	}
	if err := writeFileExcl(filename, []byte("again"), 0644); !errors.Is(err, os.ErrExist) {
		t.Fatalf("expected os.ErrExist, got %v", err)
	}
}
