// Package editor binds a drawing surface to a mount point, places shapes on
// it and reports how the user moves and resizes them.
package editor

import (
	"canvas-editor/core"

	"github.com/sirupsen/logrus"
)

const (
	DefaultWidth      = 500
	DefaultHeight     = 500
	DefaultBackground = "white"
)

// Editor is the handle returned to the embedding host. The surface itself
// stays with the session; hosts only get a read-only view of it.
type Editor interface {
	AddRectangle() (core.ShapeObject, error)
	Surface() core.SurfaceInfo
}

type (
	session struct {
		backend  core.Backend
		surface  core.Surface
		observer *Observer
		log      *logrus.Entry
	}

	surfaceView struct {
		surface core.Surface
	}

	config struct {
		sink Sink
		log  *logrus.Entry
	}

	Option func(*config)
)

// WithSink sets where geometry records are delivered. Records are logged at
// debug level when no sink is given.
func WithSink(sink Sink) Option {
	return func(c *config) {
		c.sink = sink
	}
}

func WithLogger(log *logrus.Entry) Option {
	return func(c *config) {
		c.log = log
	}
}

// New creates a 500x500 white surface on mountID and attaches an Observer to
// it. Errors from the backend are returned as is.
func New(backend core.Backend, mountID string, opts ...Option) (Editor, error) {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.log == nil {
		cfg.log = logrus.NewEntry(logrus.StandardLogger())
	}
	if cfg.sink == nil {
		cfg.sink = LogSink(cfg.log)
	}

	s := &session{
		backend: backend,
		log:     cfg.log.WithField("mount_id", mountID),
	}
	if err := s.initSurface(mountID); err != nil {
		s.log.WithError(err).Warn("Failed to create surface")
		return nil, err
	}
	s.initObserver(cfg.sink)

	s.log.WithFields(logrus.Fields{
		"width":  s.surface.Width(),
		"height": s.surface.Height(),
	}).Info("Editor session started")
	return s, nil
}

func (s *session) initSurface(mountID string) error {
	surface, err := s.backend.CreateSurface(mountID, core.SurfaceOptions{
		Width:           DefaultWidth,
		Height:          DefaultHeight,
		BackgroundColor: DefaultBackground,
	})
	if err != nil {
		return err
	}
	s.surface = surface
	return nil
}

func (s *session) initObserver(sink Sink) {
	s.observer = NewObserver(s.surface, sink)
}

func (s *session) Surface() core.SurfaceInfo {
	return surfaceView{surface: s.surface}
}

func (v surfaceView) ID() string                  { return v.surface.ID() }
func (v surfaceView) Width() int                  { return v.surface.Width() }
func (v surfaceView) Height() int                 { return v.surface.Height() }
func (v surfaceView) BackgroundColor() string     { return v.surface.BackgroundColor() }
func (v surfaceView) Objects() []core.ShapeObject { return v.surface.Objects() }

// AddRectangle places a default 100x100 rectangle on the surface with its
// rotation handle hidden, and redraws before returning.
//
// When the redraw fails the rectangle is already on the surface, so it is
// returned together with the error.
func (s *session) AddRectangle() (core.ShapeObject, error) {
	rect, err := s.backend.NewRect(DefaultRect())
	if err != nil {
		return nil, err
	}
	added, err := s.addShape(rect, core.ControlRotate)
	if !added {
		return nil, err
	}
	return rect, err
}

// addShape is shared by every Add operation: hide the unwanted handles, put
// the object on the render list, redraw once. added reports whether obj made
// it onto the render list.
func (s *session) addShape(obj core.ShapeObject, hidden ...string) (added bool, err error) {
	for _, control := range hidden {
		obj.SetControlVisible(control, false)
	}
	if err := s.surface.Add(obj); err != nil {
		return false, err
	}
	if err := s.surface.RequestRender(); err != nil {
		s.log.WithError(err).WithField("object_id", obj.ID()).Warn("Shape added but render failed")
		return true, err
	}

	s.log.WithFields(logrus.Fields{
		"object_id": obj.ID(),
		"objects":   len(s.surface.Objects()),
	}).Debug("Shape added")
	return true, nil
}
