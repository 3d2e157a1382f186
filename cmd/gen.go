package cmd

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/heldkarp/instance"
)

type genOptions struct {
	cfg    instance.GenConfig
	format string
}

// newGenCmd creates the command that writes a random instance to stdout.
func newGenCmd(gopts *globalOptions) *cobra.Command {
	var opts = genOptions{cfg: instance.DefaultGenConfig(8)}

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Write a deterministic random instance",
		Long: `gen writes a random cost matrix in the text (default) or YAML format.
The same flags always produce the same instance, so generated files can be
used as reproducible test fixtures.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr(), gopts.verbose)

			format, err := instance.ParseFormat(opts.format)
			if err != nil {
				return errors.Wrapf(err, "--format %q", opts.format)
			}

			inst, err := instance.Generate(opts.cfg)
			if err != nil {
				return err
			}
			logger.WithFields(log.Fields{
				"nodes":     opts.cfg.Nodes,
				"seed":      opts.cfg.Seed,
				"missing":   opts.cfg.Missing,
				"symmetric": opts.cfg.Symmetric,
				"feasible":  opts.cfg.Feasible,
			}).Debug("instance generated")

			return writeInstance(cmd.OutOrStdout(), inst, format)
		},
	}

	cmd.Flags().IntVarP(&opts.cfg.Nodes, "nodes", "n", opts.cfg.Nodes, "number of nodes")
	cmd.Flags().Int64Var(&opts.cfg.Seed, "seed", 0, "random seed (0 selects a fixed default)")
	cmd.Flags().Int32Var(&opts.cfg.MaxWeight, "max-weight", opts.cfg.MaxWeight, "largest edge cost")
	cmd.Flags().Float64Var(&opts.cfg.Missing, "missing", 0, "probability that an edge is absent")
	cmd.Flags().BoolVar(&opts.cfg.Symmetric, "symmetric", false, "make d(u,v) equal d(v,u)")
	cmd.Flags().BoolVar(&opts.cfg.Feasible, "feasible", false, "guarantee at least one tour exists")
	cmd.Flags().IntVar(&opts.cfg.Start, "start", 0, "start vertex written to the instance")
	cmd.Flags().StringVarP(&opts.format, "format", "f", string(instance.FormatText), "output format: text or yaml")

	return cmd
}
