package editor

import (
	"canvas-editor/core"

	"github.com/sirupsen/logrus"
)

// Sink receives every geometry record the observer produces, synchronously
// and in notification order.
type Sink interface {
	Record(rec core.GeometryRecord)
}

type SinkFunc func(rec core.GeometryRecord)

func (f SinkFunc) Record(rec core.GeometryRecord) {
	f(rec)
}

// Discard drops all records.
var Discard Sink = SinkFunc(func(core.GeometryRecord) {})

type logSink struct {
	log *logrus.Entry
}

// LogSink writes records to log at debug level.
func LogSink(log *logrus.Entry) Sink {
	return &logSink{log: log}
}

func (s *logSink) Record(rec core.GeometryRecord) {
	if !s.log.Logger.IsLevelEnabled(logrus.DebugLevel) {
		return
	}

	fields := logrus.Fields{
		"kind":      rec.Kind,
		"object_id": rec.ObjectID,
	}
	if rec.HasPosition() {
		fields["x"] = rec.X
		fields["y"] = rec.Y
	}
	if rec.HasSize() {
		fields["width"] = rec.Width
		fields["height"] = rec.Height
	}
	s.log.WithFields(fields).Debug("Geometry changed")
}
