package platform

import (
	"context"

	"github.com/aretw0/noted/pkg/adapters/fs"
	"github.com/aretw0/noted/pkg/core"
)

// DefaultRoot is the notes root used when none is configured.
const DefaultRoot = "notes"

// Init builds the repository for path and prepares it (creates the notes root
// unless read-only or must-exist).
func Init(path string, opts ...Option) (core.Repository, error) {
	o := defaultOptions().apply(opts)

	if o.repository != nil {
		return o.repository, nil
	}

	if path == "" {
		path = DefaultRoot
	}

	repo := initFS(path, o)

	readOnly, _ := o.config["read_only"].(bool)
	if readOnly {
		// Nothing to prepare; a missing root surfaces on first use.
		return repo, nil
	}

	if err := repo.Initialize(context.Background()); err != nil {
		return nil, err
	}
	return repo, nil
}

// initFS maps options onto the filesystem adapter configuration.
func initFS(path string, o *options) *fs.Repository {
	mustExist, _ := o.config["must_exist"].(bool)
	readOnly, _ := o.config["read_only"].(bool)
	errorHandler, _ := o.config["watcher_error_handler"].(func(error))

	o.logger.Debug("opening notes root", "path", path, "read_only", readOnly, "must_exist", mustExist)

	return fs.NewRepository(fs.Config{
		Path:         path,
		MustExist:    mustExist,
		ReadOnly:     readOnly,
		Logger:       o.logger,
		ErrorHandler: errorHandler,
	})
}
