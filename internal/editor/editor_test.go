package editor

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEditor writes a script that appends a line to the file it is given.
func fakeEditor(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}
	script := filepath.Join(t.TempDir(), "fake-editor.sh")
	body := "#!/bin/sh\nprintf 'edited' >> \"$1\"\n"
	require.NoError(t, os.WriteFile(script, []byte(body), 0755))
	return script
}

func TestResolve(t *testing.T) {
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "")
	assert.Equal(t, DefaultCommand, Resolve(""))

	t.Setenv("EDITOR", "nano")
	assert.Equal(t, "nano", Resolve(""))

	t.Setenv("VISUAL", "code --wait")
	assert.Equal(t, "code --wait", Resolve(""))

	assert.Equal(t, "hx", Resolve("hx"))
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.txt")
	require.NoError(t, os.WriteFile(path, []byte("draft "), 0644))

	e := &Editor{Command: fakeEditor(t), Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}
	require.NoError(t, e.Open(context.Background(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "draft edited", string(data))
}

func TestOpen_NoCommand(t *testing.T) {
	e := &Editor{Command: "   "}
	assert.Error(t, e.Open(context.Background(), "ignored"))
}

func TestCompose(t *testing.T) {
	e := &Editor{Command: fakeEditor(t), Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}

	got, err := e.Compose(context.Background(), "hello ")
	require.NoError(t, err)
	assert.Equal(t, "hello edited", got)
}

func TestCompose_EditorFails(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on the false utility")
	}
	e := &Editor{Command: "false"}
	_, err := e.Compose(context.Background(), "")
	assert.Error(t, err)
}
