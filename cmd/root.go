package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/heldkarp/instance"
	"github.com/katalvlaran/heldkarp/tsp"
)

// Exit codes for the heldkarp binary.
const (
	// ExitCodeSuccess indicates a tour was printed.
	ExitCodeSuccess = 0
	// ExitCodeError indicates unreadable or malformed input, or bad flags.
	ExitCodeError = 1
	// ExitCodeNoPath indicates a well-formed instance without a Hamiltonian cycle.
	ExitCodeNoPath = 2
)

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	verbose bool
}

// NewRootCmd builds the command tree. The root command solves an instance,
// so `heldkarp < input.txt` behaves like the classic front end.
func NewRootCmd(version string) *cobra.Command {
	var (
		gopts globalOptions
		sopts solveOptions
	)

	rootCmd := &cobra.Command{
		Use:   "heldkarp [instance file]",
		Short: "Solve small TSP instances exactly with Held–Karp dynamic programming",
		Long: `heldkarp reads a dense, possibly asymmetric cost matrix and a start vertex,
and prints the minimum-cost tour that visits every vertex once and returns
to the start. Input is read from the named file, or from stdin when the
file is omitted or "-".`,
		Args:         cobra.MaximumNArgs(1),
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, args, gopts, sopts)
		},
	}
	rootCmd.SetVersionTemplate(`{{printf "heldkarp version %s\n" .Version}}`)

	rootCmd.PersistentFlags().BoolVarP(&gopts.verbose, "verbose", "v", false, "verbose output (debug logs on stderr)")
	rootCmd.Flags().StringVarP(&sopts.format, "format", "f", string(instance.FormatText), "input format: text or yaml")

	rootCmd.AddCommand(newGenCmd(&gopts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the CLI with os.Args and returns the process exit code.
func Execute(version string) int {
	rootCmd := NewRootCmd(version)
	rootCmd.SetArgs(os.Args[1:])

	if err := rootCmd.Execute(); err != nil {
		return getExitCode(err)
	}

	return ExitCodeSuccess
}

// getExitCode maps an error to a semantic exit code for scripting.
func getExitCode(err error) int {
	if errors.Is(err, tsp.ErrNoPath) {
		return ExitCodeNoPath
	}

	return ExitCodeError
}
