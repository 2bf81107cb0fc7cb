package export

import (
	"os"

	"github.com/transitlab/netmat/pkg/errors"
	"github.com/transitlab/netmat/pkg/matrix"
)

// DumpFile writes the textual form of the adjacency structure to path,
// truncating any previous content. The dump is an optional debug artifact;
// callers decide whether and where it is written.
func DumpFile(path string, g matrix.RoadGraph) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIOWrite, err, "create %s", path)
	}
	defer f.Close()

	_, err = g.WriteTo(f)
	return err
}
