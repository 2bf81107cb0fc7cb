package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/transitlab/netmat/pkg/export"
	"github.com/transitlab/netmat/pkg/matrix"
	"github.com/transitlab/netmat/pkg/network"
)

// Runner executes the conversion pipeline. It is stateless apart from the
// logger; multiple goroutines can share one Runner with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger falls back to log.Default().
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete parse → index → build → export pipeline.
// Any stage failure aborts the run; no partial archive is left behind on
// encode failures and callers should treat the output as absent on error.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{}

	parseStart := time.Now()
	net, ix, err := r.Parse(opts)
	if err != nil {
		return nil, err
	}
	result.Network = net
	result.Index = ix
	result.Stats.ParseTime = time.Since(parseStart)
	result.Stats.NodeCount = len(net.Nodes)
	result.Stats.LinkCount = len(net.Links)

	r.Logger.Info("parsed network",
		"nodes", result.Stats.NodeCount,
		"links", result.Stats.LinkCount,
		"duration", result.Stats.ParseTime)

	buildStart := time.Now()
	archive, err := r.Build(net, ix)
	if err != nil {
		return nil, err
	}
	result.Archive = archive
	result.Stats.BuildTime = time.Since(buildStart)

	r.Logger.Info("built matrices",
		"size", ix.Len(),
		"duration", result.Stats.BuildTime)

	exportStart := time.Now()
	if err := r.Export(archive, opts); err != nil {
		return nil, err
	}
	result.OutputPath = opts.Output
	result.Stats.ExportTime = time.Since(exportStart)

	r.Logger.Info("wrote archive",
		"path", opts.Output,
		"duration", result.Stats.ExportTime)

	return result, nil
}

// Parse reads the input file and builds the dense node index.
// Duplicate node ids are flagged with a warning, matching the source
// format's later-record-wins semantics without silently hiding the collision.
func (r *Runner) Parse(opts Options) (*network.Network, *network.Index, error) {
	net, err := network.ParseFile(opts.Input, opts.parseOptions())
	if err != nil {
		return nil, nil, err
	}

	ix := network.BuildIndex(net.Nodes)
	for _, id := range ix.Duplicates() {
		r.Logger.Warn("duplicate node id, later record wins", "id", id)
	}
	return net, ix, nil
}

// Build derives the adjacency structure and the three matrices.
// The builders are independent of each other and run in a fixed order.
func (r *Runner) Build(net *network.Network, ix *network.Index) (export.Archive, error) {
	graph, err := matrix.BuildRoadGraph(net.Links, ix)
	if err != nil {
		return export.Archive{}, err
	}
	times, err := matrix.TravelTimes(net.Links, ix)
	if err != nil {
		return export.Archive{}, err
	}
	caps, err := matrix.Capacities(net.Links, ix)
	if err != nil {
		return export.Archive{}, err
	}
	locs, err := matrix.Locations(net.Nodes)
	if err != nil {
		return export.Archive{}, err
	}

	return export.Archive{
		RoadGraph:   graph,
		TravelTimes: times,
		Capacities:  caps,
		Locations:   locs,
	}, nil
}

// Export writes the archive and, when requested, the adjacency debug dump.
func (r *Runner) Export(a export.Archive, opts Options) error {
	if err := export.WriteFile(opts.Output, a); err != nil {
		return err
	}
	if opts.DumpPath != "" {
		if err := export.DumpFile(opts.DumpPath, a.RoadGraph); err != nil {
			return err
		}
		r.Logger.Debug("wrote adjacency dump", "path", opts.DumpPath)
	}
	return nil
}
