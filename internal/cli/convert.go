package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/transitlab/netmat/pkg/pipeline"
)

// convertOpts holds the command-line flags for the convert command.
type convertOpts struct {
	output     string  // archive path (derived from input if empty)
	dump       string  // adjacency debug dump path (off if empty)
	configPath string  // optional TOML config file
	threshold  float64 // unit-correction threshold
	factor     float64 // unit-correction factor
}

// convertCommand creates the convert command, the main entry point of the
// tool: it runs the full parse → index → build → export pipeline.
func (c *CLI) convertCommand() *cobra.Command {
	opts := convertOpts{}

	cmd := &cobra.Command{
		Use:   "convert <network.xml>",
		Short: "Convert a network description into a matrix archive",
		Long: `Convert a MATSim-style network XML file into a .npz archive holding the
adjacency structure (RoadGraph), travel-time and capacity matrices, and
node locations.

The archive is written next to the input with the extension replaced:

  netmat convert data/berlin.xml          # writes data/berlin.npz
  netmat convert network.xml -o out.npz   # explicit output path
  netmat convert network.xml --dump roadgraph.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pipeOpts, err := resolveOptions(cmd, args[0], &opts)
			if err != nil {
				return err
			}
			return c.runConvert(cmd, pipeOpts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "archive path (default: input with .npz extension)")
	cmd.Flags().StringVar(&opts.dump, "dump", "", "write a plain-text adjacency dump to this path")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "TOML config file")
	cmd.Flags().Float64Var(&opts.threshold, "length-threshold", 0.01, "lengths below this are treated as mis-scaled")
	cmd.Flags().Float64Var(&opts.factor, "length-factor", 1000, "multiplier applied to mis-scaled lengths")

	return cmd
}

// resolveOptions merges config-file values and flags into pipeline options.
// Explicitly set flags win over the config file, which wins over defaults.
func resolveOptions(cmd *cobra.Command, input string, opts *convertOpts) (pipeline.Options, error) {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return pipeline.Options{}, err
	}

	out := pipeline.Options{
		Input:           input,
		Output:          cfg.Output.Archive,
		DumpPath:        cfg.Output.Dump,
		LengthThreshold: cfg.Units.Threshold,
		LengthFactor:    cfg.Units.Factor,
	}

	if cmd.Flags().Changed("output") {
		out.Output = opts.output
	}
	if cmd.Flags().Changed("dump") {
		out.DumpPath = opts.dump
	}
	if cmd.Flags().Changed("length-threshold") {
		out.LengthThreshold = opts.threshold
	}
	if cmd.Flags().Changed("length-factor") {
		out.LengthFactor = opts.factor
	}

	return out, nil
}

// runConvert executes the pipeline and reports progress.
func (c *CLI) runConvert(cmd *cobra.Command, opts pipeline.Options) error {
	c.Logger.Infof("Converting %s", opts.Input)

	prog := newProgress(c.Logger)
	runner := pipeline.NewRunner(c.Logger)
	result, err := runner.Execute(cmd.Context(), opts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Converted %d nodes and %d links", result.Stats.NodeCount, result.Stats.LinkCount))

	c.Logger.Infof("Wrote archive to %s", result.OutputPath)
	return nil
}
