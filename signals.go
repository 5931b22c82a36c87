package wiremap

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for wiremap events.
var (
	SignalEncodeComplete = capitan.NewSignal("wiremap.encode.complete", "Map encode finished")
	SignalDecodeComplete = capitan.NewSignal("wiremap.decode.complete", "Map decode finished")
)

// Keys for typed event data.
var (
	KeyFormat   = capitan.NewStringKey("format")
	KeyEntries  = capitan.NewIntKey("entries")
	KeySize     = capitan.NewIntKey("size")
	KeyDuration = capitan.NewDurationKey("duration")
	KeyErr      = capitan.NewErrorKey("error")
)

// EmitEncodeComplete emits an event when an encode finishes. size is the
// encoded byte count, or -1 when the sink does not expose it.
func EmitEncodeComplete(format string, entries, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyFormat.Field(format),
		KeyEntries.Field(entries),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyErr.Field(err))
		capitan.Error(context.Background(), SignalEncodeComplete, fields...)
	} else {
		capitan.Emit(context.Background(), SignalEncodeComplete, fields...)
	}
}

// EmitDecodeComplete emits an event when a decode finishes. entries is the
// number of entries decoded before completion or failure.
func EmitDecodeComplete(format string, entries int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyFormat.Field(format),
		KeyEntries.Field(entries),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyErr.Field(err))
		capitan.Error(context.Background(), SignalDecodeComplete, fields...)
	} else {
		capitan.Emit(context.Background(), SignalDecodeComplete, fields...)
	}
}
