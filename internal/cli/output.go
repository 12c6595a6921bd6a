package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// errorLabel renders the "Error:" prefix. fatih/color turns colouring off
// on its own when output is not a terminal or NO_COLOR is set.
var errorLabel = color.New(color.FgRed, color.Bold)

// printError writes "Error: <message>[: <underlying>]" to w.
func printError(w io.Writer, message string, underlying error) {
	label := errorLabel.Sprint("Error:")
	if underlying != nil {
		fmt.Fprintf(w, "%s %s: %v\n", label, message, underlying)
		return
	}
	fmt.Fprintf(w, "%s %s\n", label, message)
}

// verboseLogger prints trace messages only when verbose mode is enabled.
// It is handed to the emitter as its Logf function.
type verboseLogger struct {
	w       io.Writer
	enabled bool
}

func newVerboseLogger(w io.Writer, enabled bool) *verboseLogger {
	return &verboseLogger{w: w, enabled: enabled}
}

// Logf prints a "[verbose]"-prefixed line.
func (l *verboseLogger) Logf(format string, args ...interface{}) {
	if l.enabled {
		fmt.Fprintf(l.w, "[verbose] "+format+"\n", args...)
	}
}
