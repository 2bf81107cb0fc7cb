// Package matrix derives the dense numeric structures consumed by downstream
// modeling tools from parsed network records: the per-node adjacency
// structure ([RoadGraph]), the travel-time and capacity matrices (N×N), and
// the node-location matrix (N×2).
//
// All builders are pure functions over (nodes, links, index) and are
// independent of each other. Absent links leave zero cells behind; an
// explicit zero-valued link is indistinguishable from no link at all, an
// ambiguity inherited by consumers and deliberately not resolved here.
package matrix
