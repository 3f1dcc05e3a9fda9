package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

// resetFlags restores every flag to its default so invocations don't leak state.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// run executes the CLI against a notes root inside dir.
func run(t *testing.T, dir, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out, logs bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&logs)
	rootCmd.SetIn(strings.NewReader(stdin))

	full := append([]string{
		"--config", filepath.Join(dir, "noted.yaml"),
		"--root", filepath.Join(dir, "notes"),
	}, args...)
	rootCmd.SetArgs(full)

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCLI_AddShowRemove(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "", "add", "shopping", "--content", "  eggs  ")
	require.NoError(t, err)
	assert.Contains(t, out, `Created note "shopping"`)

	data, err := os.ReadFile(filepath.Join(dir, "notes", "shopping.txt"))
	require.NoError(t, err)
	assert.Equal(t, "eggs", string(data))

	out, err = run(t, dir, "", "show", "shopping")
	require.NoError(t, err)
	assert.Contains(t, out, "eggs ...")

	out, err = run(t, dir, "", "show", "shopping", "--raw")
	require.NoError(t, err)
	assert.Equal(t, "eggs", out)

	out, err = run(t, dir, "n\n", "rm", "shopping")
	require.NoError(t, err)
	assert.Contains(t, out, "Cancelled.")
	assert.FileExists(t, filepath.Join(dir, "notes", "shopping.txt"))

	out, err = run(t, dir, "y\n", "rm", "shopping")
	require.NoError(t, err)
	assert.Contains(t, out, `Deleted note "shopping"`)
	assert.NoFileExists(t, filepath.Join(dir, "notes", "shopping.txt"))
}

func TestCLI_Failures(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, "", "add", "dup", "--content", "one")
	require.NoError(t, err)

	out, err := run(t, dir, "", "add", "dup", "--content", "two")
	assert.ErrorIs(t, err, errReported)
	assert.Contains(t, out, "already exists")

	out, err = run(t, dir, "", "add", "empty", "--content", "   ")
	assert.ErrorIs(t, err, errReported)
	assert.Contains(t, out, "Invalid note")

	out, err = run(t, dir, "", "show", "ghost")
	assert.ErrorIs(t, err, errReported)
	assert.Contains(t, out, "<ERROR: Could not read note content>")
	assert.NotContains(t, out, "content> ...")

	out, err = run(t, dir, "", "rm", "ghost", "--force")
	assert.ErrorIs(t, err, errReported)
	assert.Contains(t, out, "No such note")
}

func TestCLI_ListCapAndAll(t *testing.T) {
	dir := t.TempDir()

	for i := 1; i <= 5; i++ {
		_, err := run(t, dir, "", "add", fmt.Sprintf("n%d", i), "--content", "x")
		require.NoError(t, err)
	}

	out, err := run(t, dir, "", "add", "n6", "--content", "x")
	assert.ErrorIs(t, err, errReported)
	assert.Contains(t, out, "Can't add more notes")

	_, err = run(t, dir, "", "add", "n6", "--content", "x", "--force")
	require.NoError(t, err)

	out, err = run(t, dir, "", "list", "--json")
	require.NoError(t, err)
	var titles []string
	require.NoError(t, json.Unmarshal([]byte(out), &titles))
	assert.Equal(t, []string{"n1", "n2", "n3", "n4", "n5"}, titles)

	out, err = run(t, dir, "", "list", "--all", "--json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &titles))
	assert.Len(t, titles, 6)

	out, err = run(t, dir, "", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "use --all")
}

func TestCLI_ListExactlyAtCap(t *testing.T) {
	dir := t.TempDir()
	for i := 1; i <= 5; i++ {
		_, err := run(t, dir, "", "add", fmt.Sprintf("n%d", i), "--content", "x")
		require.NoError(t, err)
	}

	out, err := run(t, dir, "", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "n5")
	assert.NotContains(t, out, "use --all")
}

func TestCLI_ListMatch(t *testing.T) {
	dir := t.TempDir()
	for _, title := range []string{"work-a", "home", "work-b"} {
		_, err := run(t, dir, "", "add", title, "--content", "x")
		require.NoError(t, err)
	}

	out, err := run(t, dir, "", "list", "--match", "work-*", "--json")
	require.NoError(t, err)
	var titles []string
	require.NoError(t, json.Unmarshal([]byte(out), &titles))
	assert.Equal(t, []string{"work-a", "work-b"}, titles)

	_, err = run(t, dir, "", "list", "--match", "[oops")
	assert.Error(t, err)
}

func TestCLI_ListEmpty(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No notes yet.")
	assert.DirExists(t, filepath.Join(dir, "notes"))
}

func TestCLI_ConfigCap(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "noted.yaml"), []byte("max_notes: 2\n"), 0644))

	for _, title := range []string{"c", "b", "a"} {
		_, err := run(t, dir, "", "add", title, "--content", "x", "--force")
		require.NoError(t, err)
	}

	out, err := run(t, dir, "", "list", "--json")
	require.NoError(t, err)
	var titles []string
	require.NoError(t, json.Unmarshal([]byte(out), &titles))
	assert.Equal(t, []string{"a", "b"}, titles)
}

func TestCLI_State(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "", "state")
	require.NoError(t, err)

	var report map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Contains(t, report, "service")
	assert.Contains(t, report, "repository")
}

func TestCLI_Version(t *testing.T) {
	out, err := run(t, t.TempDir(), "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "noted version "))
}
