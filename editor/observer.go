package editor

import "canvas-editor/core"

// Observer turns surface notifications into geometry records. It keeps no
// state between notifications and never writes to the objects it reads.
type Observer struct {
	sink Sink
}

// NewObserver subscribes to moving, scaling and modified notifications on
// surface. The subscription lasts as long as the surface.
func NewObserver(surface core.Surface, sink Sink) *Observer {
	o := &Observer{sink: sink}
	surface.On(map[core.NotificationKind]core.Handler{
		core.ObjectMoving:   o.objectMoving,
		core.ObjectScaling:  o.objectScaling,
		core.ObjectModified: o.objectModified,
	})
	return o
}

// objectMoving fires on every pointer move of a drag.
func (o *Observer) objectMoving(n core.Notification) {
	o.sink.Record(core.GeometryRecord{
		Kind:     n.Kind,
		ObjectID: n.Target.ID(),
		X:        n.Target.Left(),
		Y:        n.Target.Top(),
		Fields:   core.FieldPosition,
	})
}

func (o *Observer) objectScaling(n core.Notification) {
	o.sink.Record(core.GeometryRecord{
		Kind:     n.Kind,
		ObjectID: n.Target.ID(),
		Width:    n.Target.ScaledWidth(),
		Height:   n.Target.ScaledHeight(),
		Fields:   core.FieldSize,
	})
}

// objectModified reports the finished gesture.
func (o *Observer) objectModified(n core.Notification) {
	o.sink.Record(core.GeometryRecord{
		Kind:     n.Kind,
		ObjectID: n.Target.ID(),
		X:        n.Target.Left(),
		Y:        n.Target.Top(),
		Width:    n.Target.ScaledWidth(),
		Height:   n.Target.ScaledHeight(),
		Fields:   core.FieldPosition | core.FieldSize,
	})
}
