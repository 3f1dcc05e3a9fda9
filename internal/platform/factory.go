package platform

import (
	"github.com/aretw0/noted/pkg/core"
)

// New creates a note Service rooted at path.
//
//	svc, err := noted.New("./notes", noted.WithMaxNotes(-1))
func New(path string, opts ...Option) (*core.Service, error) {
	repo, err := Init(path, opts...)
	if err != nil {
		return nil, err
	}

	o := defaultOptions().apply(opts)
	maxNotes, _ := o.config["max_notes"].(int)
	eventBuffer, _ := o.config["event_buffer"].(int)

	return core.NewService(repo, core.ServiceConfig{
		Logger:      o.logger,
		MaxNotes:    maxNotes,
		EventBuffer: eventBuffer,
	}), nil
}
