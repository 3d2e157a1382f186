package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/heldkarp/instance"
	"github.com/katalvlaran/heldkarp/tsp"
)

// solveOptions are the flags of the root (solve) command.
type solveOptions struct {
	format string
}

// runSolve prints the "Input"/"Output" section headers, the total cost and
// the tour. Any failure is returned to cobra, which prints one diagnostic on
// stderr; nothing after the failing step is written to stdout.
func runSolve(cmd *cobra.Command, args []string, gopts globalOptions, sopts solveOptions) error {
	var (
		out    = cmd.OutOrStdout()
		logger = newLogger(cmd.ErrOrStderr(), gopts.verbose)
	)

	format, err := instance.ParseFormat(sopts.format)
	if err != nil {
		return errors.Wrapf(err, "--format %q", sopts.format)
	}

	r, name, closeFn, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer closeFn()

	fmt.Fprintln(out, "Input")
	inst, err := readInstance(r, format)
	if err != nil {
		return errors.Wrapf(err, "read %s", name)
	}
	logger.WithFields(log.Fields{
		"source": name,
		"format": format,
		"nodes":  len(inst.Dist),
		"start":  inst.Start,
	}).Debug("instance loaded")

	fmt.Fprintln(out, "Output")
	began := time.Now()
	res, err := tsp.Solve(inst.Dist, inst.Start)
	logger.WithField("elapsed", time.Since(began)).Debug("solver finished")
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Total cost: %d\n", res.Cost)
	fmt.Fprintln(out, tsp.FormatTour(res.Tour))

	return nil
}

// openInput returns stdin for no argument or "-", else the named file.
func openInput(cmd *cobra.Command, args []string) (io.Reader, string, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return cmd.InOrStdin(), "stdin", func() {}, nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, "", nil, errors.Wrap(err, "open instance")
	}

	return f, args[0], func() { _ = f.Close() }, nil
}

func readInstance(r io.Reader, format instance.Format) (*instance.Instance, error) {
	switch format {
	case instance.FormatYAML:
		return instance.ParseYAML(r)
	default:
		return instance.ParseText(r)
	}
}

func writeInstance(w io.Writer, inst *instance.Instance, format instance.Format) error {
	switch format {
	case instance.FormatYAML:
		return instance.WriteYAML(w, inst)
	default:
		return instance.WriteText(w, inst)
	}
}
