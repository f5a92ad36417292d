package memory

import (
	"canvas-editor/core"
	"fmt"
)

// The methods below stand in for the pointer handling of a real surface.
// Each one changes the object the way the matching gesture would and then
// notifies the registered handlers.

// Drag moves obj so its top-left corner is at (x, y) and fires object:moving.
func (s *Surface) Drag(obj core.ShapeObject, x, y float64) error {
	r, err := s.rect(obj)
	if err != nil {
		return err
	}
	r.left, r.top = x, y
	return s.Dispatch(core.ObjectMoving, r)
}

// ScaleTo drags the bottom-right handle of obj until its scale factors are
// (sx, sy) and fires object:scaling.
func (s *Surface) ScaleTo(obj core.ShapeObject, sx, sy float64) error {
	r, err := s.rect(obj)
	if err != nil {
		return err
	}
	if !r.IsControlVisible(core.ControlBottomRight) {
		return fmt.Errorf("%w: %s", ErrControlHidden, core.ControlBottomRight)
	}
	r.scaleX, r.scaleY = sx, sy
	return s.Dispatch(core.ObjectScaling, r)
}

// Release ends the current gesture on obj and fires object:modified.
func (s *Surface) Release(obj core.ShapeObject) error {
	return s.Dispatch(core.ObjectModified, obj)
}

func (s *Surface) rect(obj core.ShapeObject) (*Rect, error) {
	if s.indexOf(obj) < 0 {
		return nil, ErrUnknownObject
	}
	r, ok := obj.(*Rect)
	if !ok {
		return nil, fmt.Errorf("%w: %T cannot be manipulated", ErrUnknownObject, obj)
	}
	return r, nil
}
