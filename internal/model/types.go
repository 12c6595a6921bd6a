// Package model defines the domain types for the catr CLI.
//
// These types are passed from the argument resolver (internal/cli) to the
// line emitter (internal/emitter). Nothing here touches the filesystem.
package model

import "fmt"

// StdinTarget is the sentinel target name that selects standard input.
const StdinTarget = "-"

// TargetKind tells the emitter how a target is opened.
type TargetKind int

const (
	// KindStdin reads from the standard input stream of the run.
	// The stream is borrowed and never closed by the emitter.
	KindStdin TargetKind = iota

	// KindFile opens the named path for reading.
	KindFile
)

// String returns the string representation of TargetKind.
func (k TargetKind) String() string {
	switch k {
	case KindStdin:
		return "stdin"
	case KindFile:
		return "file"
	default:
		return fmt.Sprintf("TargetKind(%d)", int(k))
	}
}

// Target is one input source named on the command line.
type Target struct {
	// Name is the argument exactly as given. It is used verbatim as the
	// prefix of per-target error messages.
	Name string

	// Kind is resolved once by ParseTarget.
	Kind TargetKind
}

// ParseTarget classifies a command-line argument. Only the exact string
// "-" selects standard input; "./-" or "--" are plain file names.
func ParseTarget(name string) Target {
	if name == StdinTarget {
		return Target{Name: name, Kind: KindStdin}
	}
	return Target{Name: name, Kind: KindFile}
}

// IsStdin reports whether the target reads standard input.
func (t Target) IsStdin() bool {
	return t.Kind == KindStdin
}

// String returns the target name.
func (t Target) String() string {
	return t.Name
}

// NumberingMode selects how output lines are prefixed.
type NumberingMode string

const (
	// NumberNone copies lines unchanged.
	NumberNone NumberingMode = "none"

	// NumberAll prefixes every line with its 1-based position in the target.
	NumberAll NumberingMode = "all"

	// NumberNonblank prefixes only non-empty lines, counting only those.
	// Empty lines are emitted bare, with no number and no tab.
	NumberNonblank NumberingMode = "nonblank"
)

// String returns the string representation of NumberingMode.
func (m NumberingMode) String() string {
	return string(m)
}

// Config is the fully resolved set of run parameters.
//
// A Config is created once from the command line and must not be mutated
// afterwards. NumberAll and NumberNonblank are not exclusive here: the
// command line rejects the combination, but a Config built in code may set
// both, in which case Mode reports NumberAll.
type Config struct {
	// Targets lists the inputs in the order they are processed.
	// Always holds at least one element once built by NewConfig.
	Targets []string

	// NumberAll numbers every output line.
	NumberAll bool

	// NumberNonblank numbers only non-empty output lines.
	NumberNonblank bool
}

// NewConfig builds a Config, substituting standard input when no targets
// are given. The targets slice is copied.
func NewConfig(targets []string, numberAll, numberNonblank bool) *Config {
	if len(targets) == 0 {
		targets = []string{StdinTarget}
	}
	return &Config{
		Targets:        append([]string(nil), targets...),
		NumberAll:      numberAll,
		NumberNonblank: numberNonblank,
	}
}

// Mode returns the effective numbering policy. NumberAll takes priority
// over NumberNonblank.
func (c *Config) Mode() NumberingMode {
	switch {
	case c.NumberAll:
		return NumberAll
	case c.NumberNonblank:
		return NumberNonblank
	default:
		return NumberNone
	}
}

// ParsedTargets resolves every target name into a Target, in order.
func (c *Config) ParsedTargets() []Target {
	targets := make([]Target, 0, len(c.Targets))
	for _, name := range c.Targets {
		targets = append(targets, ParseTarget(name))
	}
	return targets
}

// Validate checks that the Config holds at least one target. Target names
// are not inspected: a name that cannot be opened, including "", is an
// open failure reported while streaming.
func (c *Config) Validate() error {
	if len(c.Targets) == 0 {
		return fmt.Errorf("config: at least one target is required")
	}
	return nil
}

// ExitCode defines the CLI exit codes. Scripts can rely on 0 meaning the
// run completed, even when some targets could not be opened.
type ExitCode int

const (
	// ExitSuccess indicates the run completed.
	ExitSuccess ExitCode = 0

	// ExitGeneralError covers argument errors and fatal stream errors.
	ExitGeneralError ExitCode = 1
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
