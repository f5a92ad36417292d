package memory

import (
	"canvas-editor/core"
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"
	"github.com/sirupsen/logrus"
)

var (
	ErrObjectExists  = errors.New("object already on surface")
	ErrUnknownObject = errors.New("object is not on this surface")
	ErrControlHidden = errors.New("control is hidden")
)

type Surface struct {
	id         string
	width      int
	height     int
	background string
	bgColor    gg.RGBA

	objects  []core.ShapeObject
	handlers map[core.NotificationKind][]core.Handler

	canvas  *gg.Context
	renders int
}

func newSurface(id string, opts core.SurfaceOptions) (*Surface, error) {
	bg, err := parseColor(opts.BackgroundColor)
	if err != nil {
		return nil, fmt.Errorf("surface %q background: %w", id, err)
	}

	return &Surface{
		id:         id,
		width:      opts.Width,
		height:     opts.Height,
		background: opts.BackgroundColor,
		bgColor:    bg,
		handlers:   make(map[core.NotificationKind][]core.Handler),
		canvas:     gg.NewContext(opts.Width, opts.Height),
	}, nil
}

func (s *Surface) ID() string              { return s.id }
func (s *Surface) Width() int              { return s.width }
func (s *Surface) Height() int             { return s.height }
func (s *Surface) BackgroundColor() string { return s.background }

// Objects returns the render list in drawing order.
func (s *Surface) Objects() []core.ShapeObject {
	out := make([]core.ShapeObject, len(s.objects))
	copy(out, s.objects)
	return out
}

func (s *Surface) Add(obj core.ShapeObject) error {
	if s.indexOf(obj) >= 0 {
		return fmt.Errorf("%w: %s", ErrObjectExists, obj.ID())
	}
	s.objects = append(s.objects, obj)
	return nil
}

// On registers handlers by notification kind. Several handlers may listen to
// the same kind; they run in registration order.
func (s *Surface) On(handlers map[core.NotificationKind]core.Handler) {
	for kind, h := range handlers {
		s.handlers[kind] = append(s.handlers[kind], h)
	}
}

// RequestRender draws the render list onto the frame buffer synchronously.
func (s *Surface) RequestRender() error {
	s.canvas.ClearWithColor(s.bgColor)
	for _, obj := range s.objects {
		fill, err := parseColor(obj.Fill())
		if err != nil {
			return fmt.Errorf("object %s fill: %w", obj.ID(), err)
		}
		s.canvas.SetFillBrush(gg.Solid(fill))
		s.canvas.DrawRectangle(obj.Left(), obj.Top(), obj.ScaledWidth(), obj.ScaledHeight())
		if err := s.canvas.Fill(); err != nil {
			return fmt.Errorf("object %s: %w", obj.ID(), err)
		}
	}
	s.renders++

	logrus.WithFields(logrus.Fields{
		"mount_id": s.id,
		"objects":  len(s.objects),
		"render":   s.renders,
	}).Trace("Surface rendered")
	return nil
}

// RenderCount reports how many times RequestRender has completed.
func (s *Surface) RenderCount() int {
	return s.renders
}

// Frame returns the last rendered frame.
func (s *Surface) Frame() image.Image {
	return s.canvas.Image()
}

func (s *Surface) EncodePNG(w io.Writer) error {
	return s.canvas.EncodePNG(w)
}

// Dispatch delivers a notification for obj to every handler of kind.
func (s *Surface) Dispatch(kind core.NotificationKind, obj core.ShapeObject) error {
	if s.indexOf(obj) < 0 {
		return ErrUnknownObject
	}

	n := core.Notification{Kind: kind, Target: obj}
	for _, h := range s.handlers[kind] {
		h(n)
	}
	return nil
}

func (s *Surface) indexOf(obj core.ShapeObject) int {
	for i, o := range s.objects {
		if o == obj {
			return i
		}
	}
	return -1
}
