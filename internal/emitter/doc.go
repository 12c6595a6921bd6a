// Package emitter streams catr targets to standard output.
//
// Each target is opened, read line by line, and written back out under the
// numbering policy chosen by the configuration. Targets are processed in
// order, one at a time; a file handle is closed before the next target is
// opened and line numbers restart at 1 for every target.
//
// Failures are asymmetric. A target that cannot be opened is reported on
// the error stream as "<target>: <cause>" and skipped, and the run still
// succeeds. A failure after a target was opened (a read error, a line that
// is not valid UTF-8, or a failed write to standard output) aborts the run.
package emitter
