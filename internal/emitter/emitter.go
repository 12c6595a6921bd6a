package emitter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/shinji-kodama/catr/internal/model"
)

// numberFormat right-aligns the line number in a field of width 6,
// followed by a tab and the line text.
const numberFormat = "%6d\t%s\n"

// Emitter writes targets to Stdout. The process streams are fields rather
// than globals so tests can run it against in-memory readers and writers.
type Emitter struct {
	// Stdin is read for "-" targets. It is never closed.
	Stdin io.Reader

	// Stdout receives the concatenated, optionally numbered lines.
	Stdout io.Writer

	// Stderr receives one line per target that could not be opened.
	Stderr io.Writer

	// OpenFile opens file targets. Defaults to OpenFile when nil.
	OpenFile FileOpener

	// Logf, when set, receives trace messages about each target.
	Logf func(format string, args ...interface{})
}

// New creates an Emitter bound to the given streams.
func New(stdin io.Reader, stdout, stderr io.Writer) *Emitter {
	return &Emitter{
		Stdin:    stdin,
		Stdout:   stdout,
		Stderr:   stderr,
		OpenFile: OpenFile,
	}
}

// Run processes every target of cfg in order.
//
// Targets that fail to open are reported on Stderr and skipped; Run still
// returns nil for them. The first ReadError or WriteError stops the run and
// is returned.
func (e *Emitter) Run(cfg *model.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	mode := cfg.Mode()
	e.logf("numbering mode: %s", mode)

	for _, target := range cfg.ParsedTargets() {
		err := e.emitTarget(target, mode)
		if err == nil {
			continue
		}

		var openErr *OpenError
		if errors.As(err, &openErr) {
			e.logf("skipping %s: open failed", target)
			if _, werr := fmt.Fprintln(e.Stderr, openErr.Error()); werr != nil {
				return fmt.Errorf("report open failure for %s: %w", target, werr)
			}
			continue
		}
		return err
	}
	return nil
}

// emitTarget streams a single target. The handle is closed and the output
// flushed before returning, whatever the outcome.
func (e *Emitter) emitTarget(target model.Target, mode model.NumberingMode) error {
	e.logf("opening %s (%s)", target, target.Kind)

	rc, err := e.open(target)
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()

	w := bufio.NewWriter(e.Stdout)
	lines, streamErr := streamLines(target, rc, w, mode)

	// Flush what was emitted before a read failure so the output stays a
	// prefix of the target's content.
	if err := w.Flush(); err != nil && streamErr == nil {
		streamErr = &WriteError{Target: target.Name, Err: err}
	}
	if streamErr != nil {
		return streamErr
	}

	e.logf("finished %s: %d lines", target, lines)
	return nil
}

// streamLines copies r to w line by line under mode and returns the number
// of lines written. The trailing "\n" of each line is stripped, together
// with one "\r" in front of it, and every emitted line ends with "\n".
// A final line with no newline still counts as a line.
func streamLines(target model.Target, r io.Reader, w io.Writer, mode model.NumberingMode) (int, error) {
	br := bufio.NewReader(r)
	n := &lineNumberer{mode: mode}
	lines := 0

	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return lines, &ReadError{Target: target.Name, Err: osCause(err)}
		}
		if line == "" {
			return lines, nil
		}

		text := trimNewline(line)
		if !utf8.ValidString(text) {
			return lines, &ReadError{Target: target.Name, Err: ErrInvalidUTF8}
		}

		if werr := n.write(w, text); werr != nil {
			return lines, &WriteError{Target: target.Name, Err: werr}
		}
		lines++

		if err != nil {
			return lines, nil
		}
	}
}

func trimNewline(line string) string {
	if !strings.HasSuffix(line, "\n") {
		return line
	}
	return strings.TrimSuffix(line[:len(line)-1], "\r")
}

// lineNumberer holds the per-target counter. A new one is created for each
// target so numbering never carries over.
type lineNumberer struct {
	mode  model.NumberingMode
	count int
}

// write emits text under the numbering mode.
func (n *lineNumberer) write(w io.Writer, text string) error {
	var err error
	switch n.mode {
	case model.NumberAll:
		n.count++
		_, err = fmt.Fprintf(w, numberFormat, n.count, text)
	case model.NumberNonblank:
		if text == "" {
			_, err = io.WriteString(w, "\n")
			break
		}
		n.count++
		_, err = fmt.Fprintf(w, numberFormat, n.count, text)
	default:
		_, err = io.WriteString(w, text+"\n")
	}
	return err
}

func (e *Emitter) logf(format string, args ...interface{}) {
	if e.Logf != nil {
		e.Logf(format, args...)
	}
}
