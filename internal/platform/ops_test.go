package platform_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/noted/internal/platform"
	"github.com/aretw0/noted/pkg/adapters/fs"
	"github.com/aretw0/noted/pkg/core"
)

func quiet() platform.Option {
	return platform.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestInit(t *testing.T) {
	t.Run("Creates Notes Root", func(t *testing.T) {
		root := filepath.Join(t.TempDir(), "notes")

		repo, err := platform.Init(root, quiet())
		require.NoError(t, err)

		fsRepo, ok := repo.(*fs.Repository)
		require.True(t, ok, "expected fs repository")
		assert.Equal(t, root, fsRepo.Path)

		info, err := os.Stat(root)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("MustExist Fails on Missing Root", func(t *testing.T) {
		root := filepath.Join(t.TempDir(), "notes")

		_, err := platform.Init(root, quiet(), platform.WithMustExist(true))
		assert.ErrorIs(t, err, core.ErrNotFound)
	})

	t.Run("ReadOnly Skips Initialization", func(t *testing.T) {
		root := filepath.Join(t.TempDir(), "notes")

		repo, err := platform.Init(root, quiet(), platform.WithReadOnly(true))
		require.NoError(t, err)
		require.NotNil(t, repo)

		_, statErr := os.Stat(root)
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("Injected Repository Wins", func(t *testing.T) {
		injected := fs.NewRepository(fs.Config{Path: t.TempDir()})

		repo, err := platform.Init("ignored", platform.WithRepository(injected))
		require.NoError(t, err)
		assert.Same(t, injected, repo)
	})
}

func TestNew(t *testing.T) {
	ctx := context.Background()
	root := filepath.Join(t.TempDir(), "notes")

	svc, err := platform.New(root, quiet(), platform.WithMaxNotes(-1), platform.WithEventBuffer(7))
	require.NoError(t, err)

	for _, title := range []string{"a", "b", "c", "d", "e", "f"} {
		_, err := svc.CreateNote(ctx, title, "x")
		require.NoError(t, err)
	}

	titles, err := svc.ListNotes(ctx)
	require.NoError(t, err)
	assert.Len(t, titles, 6, "negative cap lists everything")

	state := svc.State().(core.ServiceState)
	assert.Equal(t, 7, state.EventBufferSize)
	assert.Equal(t, "repository", state.RepositoryType)
}
