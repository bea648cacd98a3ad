package source

import (
	"runtime"
	"strconv"
	"strings"
)

const Unknown = "unknown source"

type Tracker interface {
	Capture() string
}

func Caller() Tracker { return callerTracker{} }

func Fixed(value string) Tracker { return fixedTracker{value: value} }

type callerTracker struct{}

func (callerTracker) Capture() string {
	var pcs [64]uintptr
	n := runtime.Callers(1, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if frame.PC != 0 && !ownFrame(frame) {
			return shortFile(frame.File) + ":" + strconv.Itoa(frame.Line)
		}
		if !more {
			return Unknown
		}
	}
}

type fixedTracker struct {
	value string
}

func (f fixedTracker) Capture() string { return f.value }

var skipPrefixes = ownPrefixes()

func ownPrefixes() []string {
	pc, _, _, ok := runtime.Caller(0)
	if !ok {
		return nil
	}
	name := runtime.FuncForPC(pc).Name()
	const marker = "/internal/source."
	i := strings.Index(name, marker)
	if i < 0 {
		return nil
	}
	module := name[:i]
	return []string{module + ".", module + "/internal/", module + "/spindletest.", "runtime."}
}

// Frames from _test.go files always count as caller code, so sources
// recorded inside tests point at the test itself.
func ownFrame(frame runtime.Frame) bool {
	if strings.HasSuffix(frame.File, "_test.go") {
		return false
	}
	for _, prefix := range skipPrefixes {
		if strings.HasPrefix(frame.Function, prefix) {
			return true
		}
	}
	return false
}

func shortFile(file string) string {
	if i := strings.LastIndexByte(file, '/'); i >= 0 {
		return file[i+1:]
	}
	return file
}
