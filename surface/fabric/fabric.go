//go:build js && wasm

// Package fabric drives a fabric.js canvas in the browser. fabric must be
// loaded on the page before a surface is created.
package fabric

import (
	"canvas-editor/core"
	"fmt"
	"syscall/js"

	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"
)

type Backend struct {
	lib js.Value
}

// NewBackend looks up the global fabric namespace.
func NewBackend() (*Backend, error) {
	lib := js.Global().Get("fabric")
	if lib.IsUndefined() || lib.IsNull() {
		return nil, fmt.Errorf("fabric.js is not loaded")
	}
	return &Backend{lib: lib}, nil
}

func (b *Backend) CreateSurface(mountID string, opts core.SurfaceOptions) (s core.Surface, err error) {
	defer recoverJS(&err)

	el := js.Global().Get("document").Call("getElementById", mountID)
	if el.IsNull() {
		return nil, fmt.Errorf("mount element %q not found", mountID)
	}

	canvas := b.lib.Get("Canvas").New(mountID, map[string]any{
		"width":           opts.Width,
		"height":          opts.Height,
		"backgroundColor": opts.BackgroundColor,
	})

	logrus.WithField("mount_id", mountID).Debug("fabric canvas created")
	return &surface{
		id:         mountID,
		canvas:     canvas,
		width:      opts.Width,
		height:     opts.Height,
		background: opts.BackgroundColor,
		objects:    make(map[string]*object),
	}, nil
}

func (b *Backend) NewRect(opts core.RectOptions) (obj core.ShapeObject, err error) {
	defer recoverJS(&err)

	st := opts.Style
	v := b.lib.Get("Rect").New(map[string]any{
		"width":                   opts.Width,
		"height":                  opts.Height,
		"fill":                    opts.Fill,
		"cornerStyle":             st.CornerStyle,
		"cornerColor":             st.CornerColor,
		"cornerStrokeColor":       st.CornerStrokeColor,
		"cornerSize":              st.CornerSize,
		"lineWidth":               st.LineWidth,
		"borderColor":             st.BorderColor,
		"strokeWidth":             st.StrokeWidth,
		"transparentCorners":      st.TransparentCorners,
		"borderScaleFactor":       st.BorderScaleFactor,
		"borderOpacityWhenMoving": st.BorderOpacityWhenMoving,
		"borderOpacity":           st.BorderOpacity,
	})
	id := ulid.Make().String()
	v.Set("id", id)

	return &object{id: id, v: v, style: st}, nil
}

// recoverJS turns a thrown JavaScript exception into an error.
func recoverJS(err *error) {
	r := recover()
	if r == nil {
		return
	}
	jsErr, ok := r.(js.Error)
	if !ok {
		panic(r)
	}
	*err = jsErr
}
