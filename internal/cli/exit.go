package cli

import "errors"

// Exit codes for the pipeline commands.
const (
	exitOK          = 0
	exitValidation  = 1 // validation errors present, rendering still attempted
	exitFatalScan   = 2 // unusable plugin root
	exitFatalRender = 3 // no render target could be produced
)

// exitError pairs an error with the process exit code it should produce.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// exitWithCode wraps err so ExitCode can recover the intended code.
func exitWithCode(code int, err error) error {
	return &exitError{code: code, err: err}
}

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitValidation
}
