// Package cli implements the netmat command-line interface.
//
// This package provides commands for converting transportation network
// descriptions into numeric matrices and for rendering quick node-link
// views of a network. The CLI is built using cobra and supports verbose
// logging via the charmbracelet/log library.
//
// # Commands
//
//   - convert: Parse a network XML file and write the matrix archive
//   - render: Generate a DOT or SVG node-link view of a network
//   - completion: Generate shell completion scripts
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/transitlab/netmat/pkg/buildinfo"
)

// appName is the application name used for display.
const appName = "netmat"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "netmat converts transportation networks into numeric matrices",
		Long:         `netmat reads a MATSim-style network XML file and materializes an adjacency structure, travel-time, capacity, and node-location matrices into a single archive for downstream optimization and simulation tools.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.convertCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.completionCommand())

	return root
}
