package matrix

import (
	"fmt"
	"io"

	"github.com/transitlab/netmat/pkg/errors"
	"github.com/transitlab/netmat/pkg/network"
)

// RoadGraph is the adjacency structure of the network: one slot per dense
// node index, each holding the ordered destination indices of that node's
// outgoing links. Multi-edges are preserved, nodes without outgoing links
// keep an empty (non-nil) slot.
type RoadGraph [][]int

// BuildRoadGraph resolves every link against the index and appends the
// destination's dense index to the source's adjacency slot, in link order.
//
// A link referencing an id absent from the index is an UNKNOWN_NODE error,
// never silently dropped.
func BuildRoadGraph(links []network.Link, ix *network.Index) (RoadGraph, error) {
	g := make(RoadGraph, ix.Len())
	for i := range g {
		g[i] = make([]int, 0)
	}

	for i, l := range links {
		from, ok := ix.Of(l.From)
		if !ok {
			return nil, errors.New(errors.ErrCodeUnknownNode, "link %d: unknown source node %q", i, l.From)
		}
		to, ok := ix.Of(l.To)
		if !ok {
			return nil, errors.New(errors.ErrCodeUnknownNode, "link %d: unknown target node %q", i, l.To)
		}
		g[from] = append(g[from], to)
	}

	return g, nil
}

// WriteTo dumps the textual form of the graph, one node per line:
//
//	0: [1 2]
//	1: []
//
// It implements the debug dump as an explicit, caller-supplied sink.
func (g RoadGraph) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i, neighbors := range g {
		n, err := fmt.Fprintf(w, "%d: %v\n", i, neighbors)
		total += int64(n)
		if err != nil {
			return total, errors.Wrap(errors.ErrCodeIOWrite, err, "dump adjacency")
		}
	}
	return total, nil
}
