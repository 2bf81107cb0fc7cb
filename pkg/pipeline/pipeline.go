// Package pipeline wires the conversion stages together: parse the network
// description, assign dense node indices, derive the adjacency structure and
// matrices, and export everything to one archive.
//
// The pipeline is sequential, single-pass and in-memory; no stage retains
// state across invocations. The CLI is a thin wrapper around [Runner] so the
// same logic can be embedded by other tools.
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{Input: "network.xml"})
package pipeline

import (
	"time"

	"github.com/transitlab/netmat/pkg/errors"
	"github.com/transitlab/netmat/pkg/export"
	"github.com/transitlab/netmat/pkg/network"
)

// Options configures a conversion run.
type Options struct {
	// Input is the network XML file path. Required.
	Input string

	// Output is the archive path. Defaults to Input with its extension
	// replaced by .npz.
	Output string

	// DumpPath, when non-empty, receives a plain-text dump of the
	// adjacency structure readable for debugging. Overwritten per run.
	DumpPath string

	// LengthThreshold and LengthFactor parameterize the link-length
	// unit-correction rule. Zero values select the network defaults
	// (0.01 and 1000).
	LengthThreshold float64
	LengthFactor    float64
}

// ValidateAndSetDefaults checks required options and fills in defaults.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Input == "" {
		return errors.New(errors.ErrCodeInvalidInput, "input file is required")
	}
	if o.Output == "" {
		o.Output = export.OutputPath(o.Input)
	}
	if o.LengthThreshold == 0 && o.LengthFactor == 0 {
		o.LengthThreshold = network.DefaultLengthThreshold
		o.LengthFactor = network.DefaultLengthFactor
	}
	if o.LengthThreshold < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "length threshold must not be negative, got %g", o.LengthThreshold)
	}
	if o.LengthFactor <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "length factor must be positive, got %g", o.LengthFactor)
	}
	return nil
}

// parseOptions converts pipeline options to network parsing options.
func (o *Options) parseOptions() network.Options {
	return network.Options{
		LengthThreshold: o.LengthThreshold,
		LengthFactor:    o.LengthFactor,
	}
}

// Stats records per-stage timings and input sizes for progress reporting.
type Stats struct {
	ParseTime  time.Duration
	BuildTime  time.Duration
	ExportTime time.Duration
	NodeCount  int
	LinkCount  int
}

// Result holds everything a conversion run produced.
type Result struct {
	Network    *network.Network
	Index      *network.Index
	Archive    export.Archive
	OutputPath string
	Stats      Stats
}
