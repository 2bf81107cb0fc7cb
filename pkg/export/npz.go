package export

import (
	"archive/zip"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/mat"

	"github.com/transitlab/netmat/pkg/errors"
	"github.com/transitlab/netmat/pkg/matrix"
)

// Archive entry names. The .npy entries load under their base names with
// numpy (np.load gives keys "TravelTimes", "CapacityMatrix", "Locations");
// RoadGraph is ragged and therefore carried as a JSON entry.
const (
	EntryRoadGraph   = "RoadGraph.json"
	EntryTravelTimes = "TravelTimes.npy"
	EntryCapacities  = "CapacityMatrix.npy"
	EntryLocations   = "Locations.npy"
)

// Archive bundles the four derived structures written to one output file.
type Archive struct {
	RoadGraph   matrix.RoadGraph
	TravelTimes *mat.Dense
	Capacities  *mat.Dense
	Locations   *mat.Dense
}

// OutputPath derives the archive path from the input path by replacing the
// extension with .npz (network.xml → network.npz).
func OutputPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".npz"
}

// WriteFile writes the archive to path, overwriting any existing file.
// A failed write leaves no usable output; there is no partial recovery.
func WriteFile(path string, a Archive) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIOWrite, err, "create %s", path)
	}
	if err := Write(f, a); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeIOWrite, err, "close %s", path)
	}
	return nil
}

// Write encodes the archive as a zip of named entries to w.
// Matrices are NumPy .npy payloads, the adjacency structure is JSON.
func Write(w io.Writer, a Archive) error {
	zw := zip.NewWriter(w)

	ew, err := zw.Create(EntryRoadGraph)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIOWrite, err, "entry %s", EntryRoadGraph)
	}
	if err := json.NewEncoder(ew).Encode(a.RoadGraph); err != nil {
		return errors.Wrap(errors.ErrCodeIOWrite, err, "encode %s", EntryRoadGraph)
	}

	entries := []struct {
		name string
		m    *mat.Dense
	}{
		{EntryCapacities, a.Capacities},
		{EntryTravelTimes, a.TravelTimes},
		{EntryLocations, a.Locations},
	}
	for _, e := range entries {
		ew, err := zw.Create(e.name)
		if err != nil {
			return errors.Wrap(errors.ErrCodeIOWrite, err, "entry %s", e.name)
		}
		if err := npyio.Write(ew, e.m); err != nil {
			return errors.Wrap(errors.ErrCodeIOWrite, err, "encode %s", e.name)
		}
	}

	if err := zw.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeIOWrite, err, "finalize archive")
	}
	return nil
}
