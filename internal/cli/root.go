// Package cli implements the cobra-based command line for catr.
//
// The root command is the whole program: it resolves the command line into
// a model.Config and hands it to the emitter. Resolve exposes the same flag
// definitions without executing anything, so argument handling can be
// checked on its own.
package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/catr/internal/emitter"
	"github.com/shinji-kodama/catr/internal/model"
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

const (
	flagNumber         = "number"
	flagNumberNonblank = "number-nonblank"
)

// rootFlags holds the flag values for the root command.
// These are bound to cobra flags in newRootCommand.
type rootFlags struct {
	// numberAll numbers every output line (-n).
	numberAll bool

	// numberNonblank numbers only non-empty output lines (-b).
	numberNonblank bool

	// verbose traces each target on stderr.
	verbose bool
}

// config builds the run configuration from parsed flags and the
// positional arguments.
func (f *rootFlags) config(args []string) *model.Config {
	return model.NewConfig(args, f.numberAll, f.numberNonblank)
}

// NewRootCommand creates and configures the root cobra command.
// This is the entry point for the entire CLI application.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&rootFlags{})
}

func newRootCommand(flags *rootFlags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "catr [FILE]...",
		Short: "Concatenate files to standard output",
		Long: `catr writes each FILE to standard output, in order.

With no FILE, or when FILE is -, standard input is read. Line numbers,
when requested, restart at 1 for every FILE. A FILE that cannot be
opened is reported on standard error and skipped.

Examples:
  catr notes.txt
  catr -n a.txt b.txt
  printf 'foo\n\nbar\n' | catr -b -`,

		// Any number of targets, including none.
		Args: cobra.ArbitraryArgs,

		// SilenceUsage prevents cobra from printing usage on every error.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically.
		// Execute formats them itself.
		SilenceErrors: true,

		// Version is displayed when --version flag is used.
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		// Flag groups are checked here so a rejected -n/-b combination is
		// reported as an argument error, like any other flag error. cobra
		// runs its own group check only after PreRunE.
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := cmd.ValidateFlagGroups(); err != nil {
				return argError(err)
			}
			return nil
		},

		RunE: func(cmd *cobra.Command, args []string) error {
			return runCat(cmd, flags, args)
		},
	}

	rootCmd.Flags().BoolVarP(&flags.numberAll, flagNumber, "n", false, "Number all output lines")
	rootCmd.Flags().BoolVarP(&flags.numberNonblank, flagNumberNonblank, "b", false, "Number nonempty output lines")
	rootCmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")

	// -n and -b select different numbering policies; asking for both is
	// rejected here rather than silently resolved.
	rootCmd.MarkFlagsMutuallyExclusive(flagNumber, flagNumberNonblank)

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return argError(err)
	})

	return rootCmd
}

// Resolve parses raw command-line arguments (without the program name)
// into a Config. It never touches the filesystem and never runs the
// emitter. Errors are *model.CLIError values carrying ExitGeneralError.
func Resolve(rawArgs []string) (*model.Config, error) {
	flags := &rootFlags{}
	cmd := newRootCommand(flags)

	// Register --help and --version so they parse the same way as under
	// Execute instead of being reported as unknown flags.
	cmd.InitDefaultHelpFlag()
	cmd.InitDefaultVersionFlag()

	if err := cmd.ParseFlags(rawArgs); err != nil {
		return nil, cmd.FlagErrorFunc()(cmd, err)
	}
	if err := cmd.ValidateFlagGroups(); err != nil {
		return nil, argError(err)
	}
	return flags.config(cmd.Flags().Args()), nil
}

func argError(err error) error {
	return model.WrapCLIError(model.ExitGeneralError, "invalid arguments", err)
}

// runCat is the main logic function for the root command.
// It wires the command's streams into an emitter and runs every target.
func runCat(cmd *cobra.Command, flags *rootFlags, args []string) error {
	cfg := flags.config(args)

	log := newVerboseLogger(cmd.ErrOrStderr(), flags.verbose)
	log.Logf("targets: %s", strings.Join(cfg.Targets, " "))

	e := emitter.New(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	e.Logf = log.Logf

	err := e.Run(cfg)
	if err == nil {
		return nil
	}

	var (
		readErr  *emitter.ReadError
		writeErr *emitter.WriteError
	)
	switch {
	case errors.As(err, &readErr):
		return model.WrapCLIError(model.ExitGeneralError, "read failed", err)
	case errors.As(err, &writeErr):
		return model.WrapCLIError(model.ExitGeneralError, "write failed", err)
	default:
		return model.WrapCLIError(model.ExitGeneralError, "run failed", err)
	}
}

// Execute runs the root command and exits the process with the
// resulting exit code. This is the main entry point called from main.go.
func Execute(rootCmd *cobra.Command) {
	os.Exit(int(Run(rootCmd)))
}

// Run executes rootCmd and translates its error into an exit code.
// CLIError types carry their own exit codes; other errors default to 1.
// Errors are printed on the command's error stream.
func Run(rootCmd *cobra.Command) model.ExitCode {
	err := rootCmd.Execute()
	if err == nil {
		return model.ExitSuccess
	}

	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		printError(rootCmd.ErrOrStderr(), cliErr.Message, cliErr.Err)
		return cliErr.Code
	}

	// Errors cobra raises itself without going through the hooks above.
	printError(rootCmd.ErrOrStderr(), err.Error(), nil)
	return model.ExitGeneralError
}
