// SPDX-License-Identifier: MIT

package playback

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/stepwise/core"
)

// LogSink returns a Sink that writes one entry per event. Narration goes to
// Info; the per-comparison chatter of Compare and Highlight goes to Debug so a
// default logger keeps only the story. A nil logger yields core.Discard.
func LogSink(log *zap.Logger) core.Sink {
	if log == nil {
		return core.Discard
	}

	return core.SinkFunc(func(ev core.Event) error {
		level := zapcore.InfoLevel
		if ev.Kind == core.Compare || ev.Kind == core.Highlight {
			level = zapcore.DebugLevel
		}
		ce := log.Check(level, ev.Message)
		if ce == nil {
			return nil
		}
		fields := []zap.Field{
			zap.Int("seq", ev.Seq),
			zap.Stringer("kind", ev.Kind),
		}
		if len(ev.Indices) > 0 {
			fields = append(fields, zap.Ints("indices", ev.Indices))
		}
		if ev.Key != "" {
			fields = append(fields, zap.String("key", ev.Key))
		}
		if len(ev.Values) > 0 {
			fields = append(fields, zap.Ints("values", ev.Values))
		}
		if ev.Kind == core.RecurseCall || ev.Kind == core.RecurseReturn {
			fields = append(fields, zap.Int("depth", ev.Depth))
		}
		if ev.Result != 0 {
			fields = append(fields, zap.Int("result", ev.Result))
		}
		ce.Write(fields...)

		return nil
	})
}
