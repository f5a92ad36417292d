package memory

import "canvas-editor/core"

// Rect is the rectangle primitive of the headless backend. Its geometry only
// changes through the interaction methods of the Surface that holds it.
type Rect struct {
	id       string
	left     float64
	top      float64
	width    float64
	height   float64
	scaleX   float64
	scaleY   float64
	fill     string
	style    core.HandleStyle
	controls map[string]bool
}

func (r *Rect) ID() string              { return r.id }
func (r *Rect) Left() float64           { return r.left }
func (r *Rect) Top() float64            { return r.top }
func (r *Rect) Width() float64          { return r.width }
func (r *Rect) Height() float64         { return r.height }
func (r *Rect) ScaleX() float64         { return r.scaleX }
func (r *Rect) ScaleY() float64         { return r.scaleY }
func (r *Rect) Fill() string            { return r.fill }
func (r *Rect) Style() core.HandleStyle { return r.style }

func (r *Rect) ScaledWidth() float64 {
	return r.width * r.scaleX
}

func (r *Rect) ScaledHeight() float64 {
	return r.height * r.scaleY
}

// SetControlVisible toggles a named interaction handle. Controls are visible
// until hidden.
func (r *Rect) SetControlVisible(control string, visible bool) {
	r.controls[control] = visible
}

func (r *Rect) IsControlVisible(control string) bool {
	visible, ok := r.controls[control]
	return !ok || visible
}
