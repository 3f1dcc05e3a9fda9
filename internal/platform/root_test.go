package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindRoot(t *testing.T) {
	base := t.TempDir()

	// journal/ holds a noted.yaml; journal/2024/march is a nested working dir.
	journal := filepath.Join(base, "journal")
	march := filepath.Join(journal, "2024", "march")
	require.NoError(t, os.MkdirAll(march, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(journal, ConfigFileName), []byte("root: notes\nmax_notes: 5\n"), 0644))

	// decoy/ has a directory named noted.yaml, which is not a config file.
	decoy := filepath.Join(base, "decoy")
	require.NoError(t, os.MkdirAll(filepath.Join(decoy, ConfigFileName), 0755))

	// inner/ has its own config below journal/; the nearest one wins.
	inner := filepath.Join(journal, "inner")
	require.NoError(t, os.MkdirAll(filepath.Join(inner, "notes"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(inner, ConfigFileName), []byte("root: notes\n"), 0644))

	tests := []struct {
		name  string
		start string
		want  string
	}{
		{name: "config in start dir", start: journal, want: journal},
		{name: "config two levels up", start: march, want: journal},
		{name: "nearest config wins", start: filepath.Join(inner, "notes"), want: inner},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindRoot(tt.start)
			require.NoError(t, err)
			assert.Equal(t, filepath.Clean(tt.want), filepath.Clean(got))
		})
	}

	t.Run("directory named like the config is skipped", func(t *testing.T) {
		got, err := FindRoot(decoy)
		if err == nil {
			// Only a real config file further up could match.
			assert.NotEqual(t, filepath.Clean(decoy), filepath.Clean(got))
		}
	})

	t.Run("relative start dir is resolved", func(t *testing.T) {
		t.Chdir(march)
		got, err := FindRoot(".")
		require.NoError(t, err)
		want, err := filepath.EvalSymlinks(journal)
		require.NoError(t, err)
		got, err = filepath.EvalSymlinks(got)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}

func TestHasFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "noted.yaml"), nil, 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "notes"), 0755))

	assert.True(t, hasFile(dir, "noted.yaml"))
	assert.False(t, hasFile(dir, "notes"), "directories are not config files")
	assert.False(t, hasFile(dir, "missing.yaml"))
}
