// Command catr concatenates files, or standard input when a file is "-",
// to standard output, optionally numbering lines.
//
//	catr [-n | -b] [FILE]...
//
// The command line, streaming, and exit-code handling live in
// internal/cli; this package only supplies release metadata.
package main

import (
	"github.com/shinji-kodama/catr/internal/cli"
)

// Overridden at release time, for example:
//
//	go build -ldflags "-X main.version=0.1.0 -X main.commit=$(git rev-parse --short HEAD)"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// --version reports these, so they must be set before the root
	// command builds its version string.
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	cli.Execute(cli.NewRootCommand())
}
