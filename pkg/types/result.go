package types

// IndexEntry is the metadata stored alongside a vector at a specific ordinal
// position in the vector index. The embedding itself lives in the index's
// vector collection, not here; the Nth vector added always corresponds to the
// Nth entry.
type IndexEntry struct {
	Text     string            `json:"text"`
	ChunkID  int               `json:"chunk_id"`
	StartPos int               `json:"start_pos"`
	EndPos   int               `json:"end_pos"`
	Meta     map[string]string `json:"meta,omitempty"`
}

// FileName returns the originating file name, if recorded.
func (e IndexEntry) FileName() string { return e.Meta[MetaFileName] }

// Category returns the stored category label, if recorded.
func (e IndexEntry) Category() string { return e.Meta[MetaCategory] }

// SearchResult is an index entry plus its computed distance to the query and
// the derived similarity score. Results are produced fresh per query and are
// never persisted.
type SearchResult struct {
	IndexEntry

	// Distance is the squared Euclidean distance to the query vector.
	Distance float64 `json:"distance"`

	// Similarity is 1/(1+Distance), monotonically decreasing in distance
	// and bounded in (0, 1].
	Similarity float64 `json:"similarity_score"`
}

// Validate checks the search result invariants.
func (sr *SearchResult) Validate() error {
	if sr.Text == "" {
		return ErrEmptyContent
	}
	if sr.Distance < 0 {
		return ErrInvalidDistance
	}
	if sr.Similarity <= 0 || sr.Similarity > 1 {
		return ErrInvalidSimilarity
	}
	return nil
}
