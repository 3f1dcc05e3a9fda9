package fs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/noted/pkg/core"
)

// NoteExt is the suffix of every note file.
const NoteExt = ".txt"

// Repository implements core.Repository on a flat directory of text files,
// one file per note named "<title>.txt".
type Repository struct {
	Path   string
	config Config

	mu            sync.RWMutex
	watcherActive bool
	lastEvent     *time.Time
}

// Config holds the configuration for the filesystem repository.
type Config struct {
	Path string
	// MustExist makes a missing notes root an error instead of creating it.
	MustExist bool
	// ReadOnly rejects Create and Delete and never creates the root.
	ReadOnly bool
	Logger   *slog.Logger
	// ErrorHandler receives runtime watcher failures, which are otherwise only logged.
	ErrorHandler func(error)
}

// NewRepository creates a new filesystem-backed repository.
func NewRepository(config Config) *Repository {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	return &Repository{
		Path:   config.Path,
		config: config,
	}
}

// Initialize ensures the notes root exists.
func (r *Repository) Initialize(ctx context.Context) error {
	return r.ensureRoot("initialize")
}

// ensureRoot creates the notes root if absent. Creation is not recursive:
// a missing parent directory is an error.
func (r *Repository) ensureRoot(op string) error {
	info, err := os.Stat(r.Path)
	if err == nil {
		if !info.IsDir() {
			return core.NewError(op, core.KindIOFailure, "", r.Path, errors.New("notes root is not a directory"))
		}
		return nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return core.NewError(op, core.KindIOFailure, "", r.Path, err)
	}
	if r.config.MustExist || r.config.ReadOnly {
		return core.NewError(op, core.KindNotFound, "", r.Path, fmt.Errorf("notes root does not exist: %w", err))
	}

	r.config.Logger.Info("creating notes root", "path", r.Path)
	if err := os.Mkdir(r.Path, 0755); err != nil && !errors.Is(err, os.ErrExist) {
		return core.NewError(op, core.KindIOFailure, "", r.Path, fmt.Errorf("failed to create notes root: %w", err))
	}
	return nil
}

// PathOf returns the file path backing the note with the given title.
func (r *Repository) PathOf(title string) string {
	return filepath.Join(r.Path, title+NoteExt)
}

// List returns the titles of the notes in the root, in file name order.
//
// Entries that are not notes are skipped with a warning instead of failing
// the whole listing:
//   - directories,
//   - names that are not valid UTF-8,
//   - names without the ".txt" suffix,
//   - names whose title is blank.
func (r *Repository) List(ctx context.Context) ([]string, error) {
	if err := r.ensureRoot("list"); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(r.Path)
	if err != nil {
		return nil, core.NewError("list", core.KindIOFailure, "", r.Path, fmt.Errorf("failed to read notes root: %w", err))
	}

	titles := make([]string, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		name := entry.Name()
		if strings.HasPrefix(name, TempFilePrefix) {
			continue
		}
		title, ok := r.titleOf(name, entry.IsDir())
		if !ok {
			continue
		}
		titles = append(titles, title)
	}
	return titles, nil
}

// titleOf maps a directory entry name to a note title, logging why it is not one.
func (r *Repository) titleOf(name string, isDir bool) (string, bool) {
	logger := r.config.Logger
	switch {
	case !utf8.ValidString(name):
		logger.Warn("skipping entry with undecodable name", "name", fmt.Sprintf("%q", name))
		return "", false
	case isDir:
		logger.Warn("skipping directory in notes root", "name", name)
		return "", false
	case !strings.HasSuffix(name, NoteExt):
		logger.Warn("skipping file that is not a note", "name", name)
		return "", false
	}

	title := strings.TrimSpace(strings.TrimSuffix(name, NoteExt))
	if title == "" {
		logger.Warn("skipping note file with blank title", "name", name)
		return "", false
	}
	return title, true
}

// Create writes a new note. The file appears atomically and only if no
// note with the same title exists.
func (r *Repository) Create(ctx context.Context, n core.Note) error {
	const op = "create"
	if r.config.ReadOnly {
		return core.NewError(op, core.KindReadOnly, n.Title, "", nil)
	}
	if !core.ValidTitle(n.Title) {
		return core.NewError(op, core.KindInvalidInput, n.Title, "", errors.New("invalid title"))
	}
	if err := r.ensureRoot(op); err != nil {
		return err
	}

	path := r.PathOf(n.Title)
	r.config.Logger.Debug("writing note to disk", "title", n.Title, "path", path)

	if err := writeFileExclusive(path, []byte(n.Content), 0644); err != nil {
		if errors.Is(err, os.ErrExist) {
			return core.NewError(op, core.KindAlreadyExists, n.Title, path, nil)
		}
		return core.NewError(op, core.KindIOFailure, n.Title, path, err)
	}
	return nil
}

// Read loads a note by title. Contents that are not valid UTF-8 are an IO failure.
func (r *Repository) Read(ctx context.Context, title string) (core.Note, error) {
	const op = "read"
	if !core.ValidTitle(title) {
		return core.Note{}, core.NewError(op, core.KindInvalidInput, title, "", errors.New("invalid title"))
	}

	path := r.PathOf(title)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return core.Note{}, core.NewError(op, core.KindNotFound, title, path, nil)
		}
		return core.Note{}, core.NewError(op, core.KindIOFailure, title, path, err)
	}
	if !utf8.Valid(data) {
		return core.Note{}, core.NewError(op, core.KindIOFailure, title, path, errors.New("contents are not valid UTF-8"))
	}

	return core.Note{Title: title, Content: string(data)}, nil
}

// Delete removes a note by title.
func (r *Repository) Delete(ctx context.Context, title string) error {
	const op = "delete"
	if r.config.ReadOnly {
		return core.NewError(op, core.KindReadOnly, title, "", nil)
	}
	if !core.ValidTitle(title) {
		return core.NewError(op, core.KindInvalidInput, title, "", errors.New("invalid title"))
	}

	path := r.PathOf(title)
	info, err := os.Lstat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return core.NewError(op, core.KindNotFound, title, path, nil)
		}
		return core.NewError(op, core.KindIOFailure, title, path, err)
	}
	if info.IsDir() {
		return core.NewError(op, core.KindIOFailure, title, path, errors.New("path is a directory"))
	}

	r.config.Logger.Debug("deleting note", "title", title, "path", path)
	if err := os.Remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return core.NewError(op, core.KindNotFound, title, path, nil)
		}
		return core.NewError(op, core.KindIOFailure, title, path, fmt.Errorf("failed to remove file: %w", err))
	}
	return nil
}

// Watch reports changes to note files whose names match pattern
// (a doublestar glob, "*.txt" when empty). The channel is closed when ctx ends.
func (r *Repository) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	if pattern == "" {
		pattern = "*" + NoteExt
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid watch pattern: %q", pattern)
	}
	if err := r.ensureRoot("watch"); err != nil {
		return nil, err
	}

	events := make(chan core.Event)
	w := newWatchWorker(r, pattern, events)
	if err := w.Start(ctx); err != nil {
		return nil, err
	}

	lifecycle.Go(ctx, func(context.Context) error {
		<-w.Done()
		close(events)
		return nil
	}, lifecycle.WithErrorHandler(func(err error) {
		r.config.Logger.Error("watch shutdown failed", "error", err)
	}))
	return events, nil
}

var _ core.Repository = (*Repository)(nil)
var _ core.Watchable = (*Repository)(nil)
var _ core.Locator = (*Repository)(nil)
