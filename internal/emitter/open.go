package emitter

import (
	"io"
	"os"

	"github.com/shinji-kodama/catr/internal/model"
)

// FileOpener opens a file target for reading.
type FileOpener func(name string) (io.ReadCloser, error)

// OpenFile is the default FileOpener, backed by os.Open.
func OpenFile(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// open returns a readable handle for the target. Standard input is wrapped
// so closing it leaves the run's stream untouched.
func (e *Emitter) open(target model.Target) (io.ReadCloser, error) {
	if target.IsStdin() {
		if e.Stdin == nil {
			return nil, &OpenError{Target: target.Name, Err: errNoStdin}
		}
		return io.NopCloser(e.Stdin), nil
	}

	openFile := e.OpenFile
	if openFile == nil {
		openFile = OpenFile
	}
	rc, err := openFile(target.Name)
	if err != nil {
		return nil, &OpenError{Target: target.Name, Err: osCause(err)}
	}
	return rc, nil
}
