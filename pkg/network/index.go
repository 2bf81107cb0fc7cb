package network

// Index is a bijection from raw node ids onto dense indices in [0, N),
// where N is the number of node records. All downstream structures (the
// road graph and every matrix) are addressed by dense index, never by raw id.
//
// Built once by [BuildIndex] and read-only afterwards.
type Index struct {
	byID       map[string]int
	n          int
	duplicates []string
}

// BuildIndex assigns each node a dense index in input order: the first
// record gets 0, the second 1, and so on.
//
// Duplicate ids are not an error: the later record's index wins, matching
// the source format's permissive semantics, but the shadowed id is recorded
// and reported via [Index.Duplicates] so callers can flag the collision.
// N still counts every record, so shadowed indices leave empty rows behind.
func BuildIndex(nodes []Node) *Index {
	ix := &Index{
		byID: make(map[string]int, len(nodes)),
		n:    len(nodes),
	}
	for i, node := range nodes {
		if _, seen := ix.byID[node.ID]; seen {
			ix.duplicates = append(ix.duplicates, node.ID)
		}
		ix.byID[node.ID] = i
	}
	return ix
}

// Of returns the dense index for a raw node id.
func (ix *Index) Of(id string) (int, bool) {
	i, ok := ix.byID[id]
	return i, ok
}

// Len returns N, the number of node records the index was built from.
// This can exceed the number of distinct ids when duplicates collapsed.
func (ix *Index) Len() int { return ix.n }

// Duplicates returns the ids that appeared more than once, one entry per
// extra occurrence, in input order. Empty for well-formed inputs.
func (ix *Index) Duplicates() []string { return ix.duplicates }
