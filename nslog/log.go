/*
© 2026–present nstree contributors
ISC License
*/

// Package nslog provides the engine's ambient debug/info logger.
//
//   - modeled on the teacher's top-level Log/Out/D/Debug/IsThisDebug
//     functions (github.com/haraldrudell/parl log.go), trimmed to a single
//     file without the parlay sub-module dependency
//   - Debug output is gated either globally via [SetDebug] or selectively
//     via [SetRegexp] matching the full package-path/function location of
//     the caller, exactly like the teacher's regexp-filtered debug
package nslog

import (
	"fmt"
	"os"
	"regexp"
	"runtime"
	"sync"
	"sync/atomic"
)

var (
	debugOn  atomic.Bool
	regexpMu sync.RWMutex
	regexpRe *regexp.Regexp
)

// SetDebug turns all Debug output on or off globally.
func SetDebug(debug bool) {
	debugOn.Store(debug)
}

// SetRegexp restricts Debug output to call sites whose fully qualified
// function name matches expr. An empty expr clears the filter.
func SetRegexp(expr string) (err error) {
	regexpMu.Lock()
	defer regexpMu.Unlock()

	if expr == "" {
		regexpRe = nil
		return
	}
	var re *regexp.Regexp
	if re, err = regexp.Compile(expr); err != nil {
		return
	}
	regexpRe = re
	return
}

// IsThisDebug returns whether Debug output is active for the immediate
// caller's location.
func IsThisDebug() (isDebug bool) {
	return isDebugForLocation(callerLocation(1))
}

func isDebugForLocation(location string) (isDebug bool) {
	if debugOn.Load() {
		return true
	}
	regexpMu.RLock()
	re := regexpRe
	regexpMu.RUnlock()
	if re == nil {
		return false
	}
	return re.MatchString(location)
}

// Log always prints to stderr, prefixed with the caller's code location
// when Debug output is active for that location.
func Log(format string, a ...any) {
	location := callerLocation(1)
	if !isDebugForLocation(location) {
		fmt.Fprintln(os.Stderr, fmt.Sprintf(format, a...))
		return
	}
	printLine(location, format, a...)
}

// Info prints to stderr unless silenced; present for API parity with the
// teacher's logger shape. nstree never silences Info.
func Info(format string, a ...any) {
	Log(format, a...)
}

// Debug prints to stderr only if Debug output is active for the caller's
// location, per [SetDebug] / [SetRegexp].
func Debug(format string, a ...any) {
	location := callerLocation(1)
	if !isDebugForLocation(location) {
		return
	}
	printLine(location, format, a...)
}

// D prints to stderr unconditionally with code location. Meant for
// temporary, ad hoc debugging output.
func D(format string, a ...any) {
	location := callerLocation(1)
	printLine(location, format, a...)
}

func printLine(location, format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	fmt.Fprintf(os.Stderr, "%s %s\n", location, msg)
}

// callerLocation returns "pkg.(*Type).Func" for the frame skipFrames above
// this function's own caller.
func callerLocation(skipFrames int) (location string) {
	pc, _, _, ok := runtime.Caller(1 + skipFrames)
	if !ok {
		return "nslog"
	}
	if fn := runtime.FuncForPC(pc); fn != nil {
		location = fn.Name()
	}
	return
}
