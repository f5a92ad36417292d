//go:build js && wasm

package fabric

import (
	"canvas-editor/core"
	"syscall/js"
)

type surface struct {
	id         string
	canvas     js.Value
	width      int
	height     int
	background string

	// objects maps the id stamped on each fabric object back to its wrapper
	// so notifications hand out the same ShapeObject that was added.
	objects map[string]*object
	order   []*object
	funcs   []js.Func
}

func (s *surface) ID() string              { return s.id }
func (s *surface) Width() int              { return s.width }
func (s *surface) Height() int             { return s.height }
func (s *surface) BackgroundColor() string { return s.background }

func (s *surface) Objects() []core.ShapeObject {
	out := make([]core.ShapeObject, 0, len(s.order))
	for _, o := range s.order {
		out = append(out, o)
	}
	return out
}

func (s *surface) Add(obj core.ShapeObject) (err error) {
	defer recoverJS(&err)

	o, ok := obj.(*object)
	if !ok {
		return errForeign(obj)
	}
	s.canvas.Call("add", o.v)
	s.objects[o.id] = o
	s.order = append(s.order, o)
	return nil
}

func (s *surface) RequestRender() (err error) {
	defer recoverJS(&err)

	s.canvas.Call("requestRenderAll")
	return nil
}

func (s *surface) On(handlers map[core.NotificationKind]core.Handler) {
	events := make(map[string]any, len(handlers))
	for kind, h := range handlers {
		kind, h := kind, h
		fn := js.FuncOf(func(this js.Value, args []js.Value) any {
			if len(args) == 0 {
				return nil
			}
			target := args[0].Get("target")
			if target.IsUndefined() || target.IsNull() {
				return nil
			}
			h(core.Notification{Kind: kind, Target: s.wrap(target)})
			return nil
		})
		s.funcs = append(s.funcs, fn)
		events[string(kind)] = fn
	}
	s.canvas.Call("on", events)
}

func (s *surface) wrap(v js.Value) core.ShapeObject {
	id := v.Get("id")
	if id.Type() == js.TypeString {
		if o, ok := s.objects[id.String()]; ok {
			return o
		}
	}
	return &object{v: v}
}
