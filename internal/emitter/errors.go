package emitter

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrInvalidUTF8 is wrapped by ReadError when a line is not valid text.
var ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// errNoStdin is returned when a "-" target is read but the emitter has no
// standard input stream.
var errNoStdin = errors.New("standard input is not available")

// OpenError reports a target that could not be opened. It is not fatal:
// the emitter prints it and moves on to the next target.
type OpenError struct {
	Target string
	Err    error
}

// Error renders "<target>: <cause>".
func (e *OpenError) Error() string {
	return fmt.Sprintf("%s: %v", e.Target, e.Err)
}

// Unwrap returns the OS-level cause.
func (e *OpenError) Unwrap() error {
	return e.Err
}

// ReadError reports a failure while streaming an already opened target.
// It aborts the run.
type ReadError struct {
	Target string
	Err    error
}

// Error renders "<target>: <cause>".
func (e *ReadError) Error() string {
	return fmt.Sprintf("%s: %v", e.Target, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ReadError) Unwrap() error {
	return e.Err
}

// WriteError reports a failure writing a target's lines to standard output.
// It aborts the run.
type WriteError struct {
	Target string
	Err    error
}

// Error renders "<target>: write output: <cause>".
func (e *WriteError) Error() string {
	return fmt.Sprintf("%s: write output: %v", e.Target, e.Err)
}

// Unwrap returns the underlying cause.
func (e *WriteError) Unwrap() error {
	return e.Err
}

// osCause strips the *fs.PathError wrapper so the target name is not
// repeated in "<target>: open <target>: ..." form.
func osCause(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}
