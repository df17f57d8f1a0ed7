package vectorindex

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Ranakb/ai-document-system/pkg/types"
)

var (
	// ErrInvalidDimension is returned for a non-positive index dimension.
	ErrInvalidDimension = errors.New("invalid dimension")
	// ErrDimensionMismatch is returned when a vector does not match the
	// index dimensionality.
	ErrDimensionMismatch = errors.New("vector dimension mismatch")
	// ErrLengthMismatch is returned when vectors and entries differ in length.
	ErrLengthMismatch = errors.New("vectors and entries length mismatch")
)

// Index is an append-only flat vector index with exact nearest-neighbor
// search by squared Euclidean distance. Vectors and entries are parallel
// collections: the Nth vector added always corresponds to the Nth entry.
//
// The index is not internally synchronized. It is owned by a single retrieval
// engine at a time; concurrent writers must serialize externally.
type Index struct {
	dim     int
	vectors [][]float32
	entries []types.IndexEntry
}

// New creates an empty index for vectors of the given dimensionality.
func New(dim int) (*Index, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDimension, dim)
	}
	return &Index{dim: dim}, nil
}

// Dimension returns the fixed vector dimensionality.
func (ix *Index) Dimension() int { return ix.dim }

// Count returns the number of stored entries.
func (ix *Index) Count() int { return len(ix.entries) }

// Add appends vectors and their metadata entries in order. Empty input is a
// no-op. On any validation error nothing is appended, preserving the
// parallel-collection invariant.
func (ix *Index) Add(vectors [][]float32, entries []types.IndexEntry) error {
	if len(vectors) == 0 && len(entries) == 0 {
		return nil
	}
	if len(vectors) != len(entries) {
		return fmt.Errorf("%w: %d vectors, %d entries", ErrLengthMismatch, len(vectors), len(entries))
	}
	for i, vec := range vectors {
		if len(vec) != ix.dim {
			return fmt.Errorf("%w: vector %d has dimension %d, want %d", ErrDimensionMismatch, i, len(vec), ix.dim)
		}
	}

	ix.vectors = append(ix.vectors, vectors...)
	ix.entries = append(ix.entries, entries...)
	return nil
}

// Search returns up to min(k, Count()) entries nearest to query, closest
// first. Each result carries the stored metadata plus the squared Euclidean
// distance and the derived similarity 1/(1+distance). An empty index or
// non-positive k yields an empty result set.
func (ix *Index) Search(query []float32, k int) ([]types.SearchResult, error) {
	if len(query) != ix.dim {
		return nil, fmt.Errorf("%w: query has dimension %d, want %d", ErrDimensionMismatch, len(query), ix.dim)
	}
	if k <= 0 || len(ix.entries) == 0 {
		return []types.SearchResult{}, nil
	}
	if k > len(ix.entries) {
		k = len(ix.entries)
	}

	type candidate struct {
		pos  int
		dist float64
	}
	candidates := make([]candidate, len(ix.vectors))
	for i, vec := range ix.vectors {
		candidates[i] = candidate{pos: i, dist: squaredL2(query, vec)}
	}

	// Stable sort keeps insertion order among equidistant entries.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].dist < candidates[j].dist
	})

	results := make([]types.SearchResult, k)
	for i := 0; i < k; i++ {
		c := candidates[i]
		results[i] = types.SearchResult{
			IndexEntry: ix.entries[c.pos],
			Distance:   c.dist,
			Similarity: 1.0 / (1.0 + c.dist),
		}
	}
	return results, nil
}

// Reset clears both collections. The dimensionality is retained.
func (ix *Index) Reset() {
	ix.vectors = nil
	ix.entries = nil
}

// squaredL2 computes the squared Euclidean distance between two vectors of
// equal length.
func squaredL2(a, b []float32) float64 {
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return sum
}
