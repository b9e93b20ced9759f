/*
© 2026–present nstree contributors
ISC License
*/

package nserrors

import (
	"fmt"
	"runtime"
)

const (
	errorfFramesToSkip = 1
)

// Errorf wraps a sentinel status error with a %w-style format string and
// the package/function location of the caller, similar to
// [github.com/haraldrudell/parl/perrors.ErrorfPF].
//
//	return nserrors.Errorf(nserrors.ErrBadPath, "empty pathname")
func Errorf(sentinel error, format string, a ...any) (err error) {
	location := callerFuncName(errorfFramesToSkip)
	msg := location + "\x20" + fmt.Sprintf(format, a...)
	return fmt.Errorf("%s: %w", msg, sentinel)
}

// callerFuncName returns the fully qualified function name of the caller,
// skipFrames above this function's own frame.
func callerFuncName(skipFrames int) (funcName string) {
	pc, _, _, ok := runtime.Caller(1 + skipFrames)
	if !ok {
		return "nserrors"
	}
	if fn := runtime.FuncForPC(pc); fn != nil {
		funcName = fn.Name()
	}
	return
}
