package noted

import (
	"log/slog"

	"github.com/aretw0/noted/internal/platform"
	"github.com/aretw0/noted/pkg/core"
)

// --- Types ---

// Note is a public alias for the domain note.
type Note = core.Note

// Service is a public alias for the note service.
type Service = core.Service

// Config is a public alias for the noted.yaml configuration.
type Config = platform.Config

// --- Constants ---

const (
	// MaxNotes is the default enumeration cap.
	MaxNotes = core.MaxNotes
	// ReadErrorText replaces note contents when a read fails.
	ReadErrorText = core.ReadErrorText
	// DefaultRoot is the notes root used when none is configured.
	DefaultRoot = platform.DefaultRoot
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = platform.ConfigFileName
)

// --- Configuration ---

// Option defines a functional option for configuring noted.
type Option = platform.Option

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithRepository allows injecting a custom storage adapter.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// WithMaxNotes sets the enumeration cap. Negative disables it.
func WithMaxNotes(n int) Option {
	return platform.WithMaxNotes(n)
}

// WithMustExist ensures the notes root must already exist.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithReadOnly rejects create and delete.
func WithReadOnly(enabled bool) Option {
	return platform.WithReadOnly(enabled)
}

// WithEventBuffer allows specifying the size of the Watch event buffer.
func WithEventBuffer(size int) Option {
	return platform.WithEventBuffer(size)
}

// WithWatcherErrorHandler registers a callback for watcher runtime errors.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// --- Factory ---

// New creates a note Service rooted at path.
func New(path string, opts ...Option) (*core.Service, error) {
	return platform.New(path, opts...)
}

// Init initializes a repository explicitly.
func Init(path string, opts ...Option) (core.Repository, error) {
	return platform.Init(path, opts...)
}

// LoadConfig reads a noted.yaml file; a missing file yields defaults.
func LoadConfig(path string) (Config, error) {
	return platform.LoadConfig(path)
}

// DefaultConfig returns the configuration used when no noted.yaml exists.
func DefaultConfig() Config {
	return platform.DefaultConfig()
}

// FindRoot looks upwards from startDir for a directory containing noted.yaml.
func FindRoot(startDir string) (string, error) {
	return platform.FindRoot(startDir)
}
