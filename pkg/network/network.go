package network

import "github.com/paulmach/orb"

// Node is a graph vertex with a geographic position.
// Point follows the orb convention: Point[0] is the x/longitude coordinate,
// Point[1] is the y/latitude coordinate, matching the input's x/y attributes.
type Node struct {
	ID    string
	Point orb.Point
}

// Longitude returns the node's x coordinate.
func (n Node) Longitude() float64 { return n.Point.X() }

// Latitude returns the node's y coordinate.
func (n Node) Latitude() float64 { return n.Point.Y() }

// Link is a directed edge between two nodes. From and To carry the raw
// source ids, not dense indices; resolution happens against an [Index].
// Length is stored after unit correction (see [Options]).
type Link struct {
	From      string
	To        string
	Capacity  float64
	FreeSpeed float64
	Length    float64
}

// Network holds the parsed node and link records in input order.
type Network struct {
	Nodes []Node
	Links []Link
}

// Default unit-correction parameters. Lengths in (0, DefaultLengthThreshold)
// are assumed to be in different units and are scaled by DefaultLengthFactor,
// which keeps derived travel times away from degenerate near-zero values
// without changing the downstream optimization problem.
const (
	DefaultLengthThreshold = 0.01
	DefaultLengthFactor    = 1000.0
)

// Options configures parsing.
type Options struct {
	// LengthThreshold is the exclusive upper bound for the unit-correction
	// rule: link lengths in (0, LengthThreshold) are multiplied by
	// LengthFactor. Lengths of exactly 0 or >= LengthThreshold pass through
	// unchanged.
	LengthThreshold float64

	// LengthFactor is the multiplier applied by the unit-correction rule.
	LengthFactor float64
}

// DefaultOptions returns the parsing options used when none are supplied.
func DefaultOptions() Options {
	return Options{
		LengthThreshold: DefaultLengthThreshold,
		LengthFactor:    DefaultLengthFactor,
	}
}

// correctLength applies the unit-correction rule to a raw link length.
func (o Options) correctLength(length float64) float64 {
	if length > 0 && length < o.LengthThreshold {
		return length * o.LengthFactor
	}
	return length
}
