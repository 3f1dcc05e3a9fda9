package core

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"
)

const defaultEventBuffer = 100

// ServiceConfig holds the tunables of a Service.
type ServiceConfig struct {
	Logger *slog.Logger
	// MaxNotes caps enumeration. Zero means MaxNotes; negative disables the cap.
	MaxNotes int
	// EventBuffer sizes the channel returned by Watch. Zero means 100.
	EventBuffer int
}

// Service handles the business logic for notes: input validation,
// the enumeration cap and the error-to-result policy of the lenient API.
type Service struct {
	repo            Repository
	logger          *slog.Logger
	maxNotes        int
	eventBufferSize int
}

// NewService creates a new Service.
func NewService(repo Repository, cfg ServiceConfig) *Service {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	maxNotes := cfg.MaxNotes
	if maxNotes == 0 {
		maxNotes = MaxNotes
	}
	buf := cfg.EventBuffer
	if buf <= 0 {
		buf = defaultEventBuffer
	}
	return &Service{
		repo:            repo,
		logger:          logger,
		maxNotes:        maxNotes,
		eventBufferSize: buf,
	}
}

// Repository exposes the underlying storage adapter.
func (s *Service) Repository() Repository {
	return s.repo
}

// MaxNotes returns the enumeration cap, or a negative number if uncapped.
func (s *Service) MaxNotes() int {
	return s.maxNotes
}

// ListNotes returns the stored titles, sorted, truncated to the cap.
func (s *Service) ListNotes(ctx context.Context) ([]string, error) {
	titles, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Strings(titles)
	if s.maxNotes > 0 && len(titles) > s.maxNotes {
		titles = titles[:s.maxNotes]
	}
	return titles, nil
}

// CreateNote normalizes and validates the input, then stores it.
func (s *Service) CreateNote(ctx context.Context, title, contents string) (Note, error) {
	d := Draft{Title: title, Contents: contents}.Normalize()
	if err := d.Validate(); err != nil {
		return Note{}, err
	}
	n := d.Note()
	if err := s.repo.Create(ctx, n); err != nil {
		return Note{}, err
	}
	s.logger.Debug("note created", "title", n.Title, "bytes", len(n.Content))
	return n, nil
}

// GetNote retrieves a note by title.
func (s *Service) GetNote(ctx context.Context, title string) (Note, error) {
	title = strings.TrimSpace(title)
	if !ValidTitle(title) {
		return Note{}, NewError("read", KindInvalidInput, title, "", errors.New("invalid title"))
	}
	return s.repo.Read(ctx, title)
}

// DeleteNote removes a note by title. The title is trimmed like on creation.
func (s *Service) DeleteNote(ctx context.Context, title string) error {
	title = strings.TrimSpace(title)
	if !ValidTitle(title) {
		return NewError("delete", KindInvalidInput, title, "", errors.New("invalid title"))
	}
	if err := s.repo.Delete(ctx, title); err != nil {
		return err
	}
	s.logger.Debug("note deleted", "title", title)
	return nil
}

// Titles lists notes and never fails: errors are logged and yield an empty list.
func (s *Service) Titles(ctx context.Context) []string {
	titles, err := s.ListNotes(ctx)
	if err != nil {
		s.logFailure("list", "", err)
		return []string{}
	}
	return titles
}

// Create stores a note and reports success. Failures are logged.
func (s *Service) Create(ctx context.Context, title, contents string) bool {
	if _, err := s.CreateNote(ctx, title, contents); err != nil {
		s.logFailure("create", title, err)
		return false
	}
	return true
}

// Delete removes a note and reports success. Failures are logged.
func (s *Service) Delete(ctx context.Context, title string) bool {
	if err := s.DeleteNote(ctx, title); err != nil {
		s.logFailure("delete", title, err)
		return false
	}
	return true
}

// Read returns the contents of a note, or ReadErrorText if it cannot be read.
func (s *Service) Read(ctx context.Context, title string) string {
	n, err := s.GetNote(ctx, title)
	if err != nil {
		s.logFailure("read", title, err)
		return ReadErrorText
	}
	return n.Content
}

func (s *Service) logFailure(op, title string, err error) {
	attrs := []any{"op", op, "title", title, "kind", KindOf(err).String(), "error", err}
	var e *Error
	if errors.As(err, &e) && e.Path != "" {
		attrs = append(attrs, "path", e.Path)
	}
	switch KindOf(err) {
	case KindNotFound, KindAlreadyExists, KindInvalidInput:
		s.logger.Warn("note operation rejected", attrs...)
	default:
		s.logger.Error("note operation failed", attrs...)
	}
}

// Watch observes changes in the repository if supported.
// Events are forwarded through a buffered channel so a slow consumer
// does not stall the repository's watcher.
func (s *Service) Watch(ctx context.Context, pattern string) (<-chan Event, error) {
	w, ok := s.repo.(Watchable)
	if !ok {
		return nil, errors.New("repository does not support watching")
	}
	upstream, err := w.Watch(ctx, pattern)
	if err != nil {
		return nil, err
	}

	out := make(chan Event, s.eventBufferSize)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case e, ok := <-upstream:
				if !ok {
					return
				}
				select {
				case out <- e:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}
