package ensure

import "github.com/sirupsen/logrus"

// Sink receives diagnostics for faults that are not returned to the caller.
type Sink interface {
	Warn(err error)
}

// SinkFunc is a function that implements Sink.
type SinkFunc func(err error)

// Warn implements Sink.
func (f SinkFunc) Warn(err error) { f(err) }

// NopSink discards diagnostics.
var NopSink Sink = SinkFunc(func(error) {})

// LogSink returns a sink that logs diagnostics as warnings.
func LogSink(log logrus.FieldLogger) Sink {
	return SinkFunc(func(err error) { log.Warnln(err) })
}
