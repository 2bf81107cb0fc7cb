// Package export persists the derived network structures to a single
// numeric-array archive for downstream modeling tools.
//
// The archive is an .npz file: a zip containing one entry per structure.
// Matrices are stored as NumPy .npy payloads so numpy/scipy consumers can
// load them directly; the ragged adjacency structure is stored as JSON.
//
// Writes are all-or-nothing: any failure aborts the export with an IO_WRITE
// error and no attempt at partial output or recovery.
package export
