//go:build js && wasm

package fabric

import (
	"canvas-editor/core"
	"fmt"
	"syscall/js"
)

// object wraps a fabric.Object. Geometry is read live from JavaScript since
// fabric mutates it during interaction.
type object struct {
	id    string
	v     js.Value
	style core.HandleStyle
}

func (o *object) ID() string              { return o.id }
func (o *object) Left() float64           { return o.v.Get("left").Float() }
func (o *object) Top() float64            { return o.v.Get("top").Float() }
func (o *object) Width() float64          { return o.v.Get("width").Float() }
func (o *object) Height() float64         { return o.v.Get("height").Float() }
func (o *object) ScaleX() float64         { return o.v.Get("scaleX").Float() }
func (o *object) ScaleY() float64         { return o.v.Get("scaleY").Float() }
func (o *object) ScaledWidth() float64    { return o.v.Call("getScaledWidth").Float() }
func (o *object) ScaledHeight() float64   { return o.v.Call("getScaledHeight").Float() }
func (o *object) Style() core.HandleStyle { return o.style }

func (o *object) Fill() string {
	fill := o.v.Get("fill")
	if fill.Type() != js.TypeString {
		return ""
	}
	return fill.String()
}

func (o *object) SetControlVisible(control string, visible bool) {
	o.v.Call("setControlVisible", control, visible)
}

func (o *object) IsControlVisible(control string) bool {
	return o.v.Call("isControlVisible", control).Bool()
}

func errForeign(obj core.ShapeObject) error {
	return fmt.Errorf("%T is not a fabric object", obj)
}
