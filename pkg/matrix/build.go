package matrix

import (
	"gonum.org/v1/gonum/mat"

	"github.com/transitlab/netmat/pkg/errors"
	"github.com/transitlab/netmat/pkg/network"
)

// TravelTimes builds the N×N travel-time matrix: cell [i][j] holds
// length/freespeed of the direct link i→j, using the unit-corrected length.
// Cells without a direct link stay zero; when multiple links share the same
// (i, j) pair the last one processed wins.
//
// A zero freespeed would silently divide to +Inf, so it is rejected as a
// NUMERIC_ERROR instead.
func TravelTimes(links []network.Link, ix *network.Index) (*mat.Dense, error) {
	if ix.Len() == 0 {
		return nil, errEmptyNetwork()
	}
	m := mat.NewDense(ix.Len(), ix.Len(), nil)
	for i, l := range links {
		from, to, err := endpoints(i, l, ix)
		if err != nil {
			return nil, err
		}
		if l.FreeSpeed == 0 {
			return nil, errors.New(errors.ErrCodeNumeric, "link %d (%s->%s): division by zero freespeed", i, l.From, l.To)
		}
		m.Set(from, to, l.Length/l.FreeSpeed)
	}
	return m, nil
}

// Capacities builds the N×N capacity matrix: cell [i][j] holds the capacity
// of the direct link i→j, assigned directly with no unit conversion.
// Last link wins on duplicate (i, j) pairs.
func Capacities(links []network.Link, ix *network.Index) (*mat.Dense, error) {
	if ix.Len() == 0 {
		return nil, errEmptyNetwork()
	}
	m := mat.NewDense(ix.Len(), ix.Len(), nil)
	for i, l := range links {
		from, to, err := endpoints(i, l, ix)
		if err != nil {
			return nil, err
		}
		m.Set(from, to, l.Capacity)
	}
	return m, nil
}

// Locations builds the N×2 node-location matrix. Row i is
// [latitude, longitude] — latitude first, inverted from the input's native
// x/y (longitude/latitude) attribute order. Downstream consumers depend on
// this exact column order.
func Locations(nodes []network.Node) (*mat.Dense, error) {
	if len(nodes) == 0 {
		return nil, errEmptyNetwork()
	}
	m := mat.NewDense(len(nodes), 2, nil)
	for i, n := range nodes {
		m.Set(i, 0, n.Latitude())
		m.Set(i, 1, n.Longitude())
	}
	return m, nil
}

// errEmptyNetwork rejects a network with no node records. mat.NewDense
// panics on a zero dimension, so the builders refuse the input up front.
func errEmptyNetwork() error {
	return errors.New(errors.ErrCodeInvalidInput, "network has no nodes; nothing to convert")
}

// endpoints resolves a link's raw ids to dense indices.
func endpoints(i int, l network.Link, ix *network.Index) (from, to int, err error) {
	from, ok := ix.Of(l.From)
	if !ok {
		return 0, 0, errors.New(errors.ErrCodeUnknownNode, "link %d: unknown source node %q", i, l.From)
	}
	to, ok = ix.Of(l.To)
	if !ok {
		return 0, 0, errors.New(errors.ErrCodeUnknownNode, "link %d: unknown target node %q", i, l.To)
	}
	return from, to, nil
}
