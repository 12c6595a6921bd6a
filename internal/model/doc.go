// Package model defines the domain types and value objects for the
// catr CLI.
//
// This package contains pure data structures with no external dependencies.
// The Config value is built once from the command line and is read-only
// afterwards; Targets are resolved from it one at a time while streaming.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
