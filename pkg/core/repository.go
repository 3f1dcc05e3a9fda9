package core

import "context"

// Repository defines the contract for storing and retrieving notes.
// Implementations hold no cache: the backing store is the single source of truth.
type Repository interface {
	// Initialize ensures the underlying storage is ready (e.g. create the notes root).
	Initialize(ctx context.Context) error

	// List returns the titles of all stored notes in a stable order.
	List(ctx context.Context) ([]string, error)

	// Create persists a new note. It fails with ErrAlreadyExists if the title is taken.
	Create(ctx context.Context, n Note) error

	// Read retrieves a note by its title.
	Read(ctx context.Context, title string) (Note, error)

	// Delete removes a note by its title.
	Delete(ctx context.Context, title string) error
}

// Watchable is implemented by repositories that can report changes made outside the store.
type Watchable interface {
	Watch(ctx context.Context, pattern string) (<-chan Event, error)
}

// Locator is implemented by repositories that can expose where a note lives,
// e.g. so an external editor can be pointed at it.
type Locator interface {
	PathOf(title string) string
}
