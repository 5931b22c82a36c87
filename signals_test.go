package wiremap

import (
	"errors"
	"testing"
	"time"
)

func TestEmitEncodeComplete_Success(_ *testing.T) {
	// Should not panic
	EmitEncodeComplete("json", 3, 128, 100*time.Microsecond, nil)
}

func TestEmitEncodeComplete_Error(_ *testing.T) {
	EmitEncodeComplete("json", 0, 0, 100*time.Microsecond, errors.New("test error"))
}

func TestEmitEncodeComplete_UnknownSize(_ *testing.T) {
	EmitEncodeComplete("msgpack", 3, -1, 100*time.Microsecond, nil)
}

func TestEmitDecodeComplete_Success(_ *testing.T) {
	EmitDecodeComplete("yaml", 3, 100*time.Microsecond, nil)
}

func TestEmitDecodeComplete_Error(_ *testing.T) {
	EmitDecodeComplete("yaml", 0, 100*time.Microsecond, errors.New("test error"))
}

func TestEmitDecodeComplete_WithKeyError(_ *testing.T) {
	// The emitted error field accepts the package's own error types.
	EmitDecodeComplete("json", 0, 100*time.Microsecond, newKeyError("abc", errors.New("bad key")))
}
