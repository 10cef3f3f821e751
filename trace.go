package bridgeruntime

import (
	"runtime"
	"strconv"
	"strings"
)

// Trace is a captured host stack trace crossing the boundary as a diagnostic
// leaf. The frames are resolved lazily; lowering a Trace is identity.
type Trace struct {
	pcs []uintptr
}

// CaptureTrace records the calling goroutine's stack. skip counts frames to
// omit above the caller of CaptureTrace.
func CaptureTrace(skip int) Trace {
	pcs := make([]uintptr, 64)
	n := runtime.Callers(skip+2, pcs)
	return Trace{pcs: pcs[:n]}
}

// Frames returns the program counters of the captured stack.
func (t Trace) Frames() []uintptr {
	return t.pcs
}

// String renders the trace one frame per line.
func (t Trace) String() string {
	if len(t.pcs) == 0 {
		return "(empty trace)"
	}

	var b strings.Builder
	frames := runtime.CallersFrames(t.pcs)
	for {
		frame, more := frames.Next()
		b.WriteString(frame.Function)
		b.WriteString("\n\t")
		b.WriteString(frame.File)
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(frame.Line))
		b.WriteByte('\n')
		if !more {
			break
		}
	}
	return b.String()
}
