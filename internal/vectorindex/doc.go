// Package vectorindex implements a flat, exact nearest-neighbor vector index
// with paired-file persistence.
//
// The index holds two parallel collections: the embedding vectors and their
// metadata entries. Both grow append-only and always stay the same length.
// Search is brute force over squared Euclidean distance, which is exact and
// fast enough for the data volumes this system targets. A future approximate
// index must preserve the ascending-distance ordering and the similarity
// transform 1/(1+distance).
//
// # Persistence
//
// Save writes two artifacts that version together: a binary vector file
// (header plus little-endian float32 rows) and a JSON metadata file. Load
// validates both in full before swapping them in, so a failed load leaves
// the in-memory index untouched and a reader never sees half a pair.
//
//	ix, _ := vectorindex.New(384)
//	_ = ix.Add(vectors, entries)
//	_ = ix.Save("data/index/vectors.bin", "data/index/metadata.json")
//
// The index is single-owner: nothing in this package locks, so concurrent
// writers must be serialized by the caller.
package vectorindex
