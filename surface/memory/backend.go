// Package memory is a headless surface backend. Objects live in process
// memory, frames are rasterized with the gg software renderer, and pointer
// interaction is simulated through Drag, ScaleTo and Release.
//
// Nothing in this package is safe for concurrent use.
package memory

import (
	"canvas-editor/core"
	"errors"
	"fmt"

	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"
)

var (
	ErrMountNotFound = errors.New("mount point not found")
	ErrMountInUse    = errors.New("mount point already in use")
)

type Backend struct {
	mounts map[string]*Surface
}

// NewBackend returns a backend that knows the given mount points. Each one
// can hold a single surface.
func NewBackend(mountIDs ...string) *Backend {
	b := &Backend{mounts: make(map[string]*Surface, len(mountIDs))}
	for _, id := range mountIDs {
		b.mounts[id] = nil
	}
	return b
}

func (b *Backend) CreateSurface(mountID string, opts core.SurfaceOptions) (core.Surface, error) {
	existing, ok := b.mounts[mountID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMountNotFound, mountID)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %q", ErrMountInUse, mountID)
	}

	s, err := newSurface(mountID, opts)
	if err != nil {
		return nil, err
	}
	b.mounts[mountID] = s

	logrus.WithFields(logrus.Fields{
		"mount_id": mountID,
		"width":    opts.Width,
		"height":   opts.Height,
	}).Debug("Surface created")
	return s, nil
}

// Surface returns the surface mounted on mountID, if any.
func (b *Backend) Surface(mountID string) (*Surface, bool) {
	s := b.mounts[mountID]
	return s, s != nil
}

func (b *Backend) NewRect(opts core.RectOptions) (core.ShapeObject, error) {
	return &Rect{
		id:       ulid.Make().String(),
		width:    opts.Width,
		height:   opts.Height,
		scaleX:   1,
		scaleY:   1,
		fill:     opts.Fill,
		style:    opts.Style,
		controls: make(map[string]bool),
	}, nil
}
