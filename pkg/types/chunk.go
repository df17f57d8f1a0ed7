package types

// Chunk represents a bounded substring of a document's text, the unit of
// embedding and indexing. Chunks are created transiently at index time and
// never mutated after creation.
type Chunk struct {
	// Text is the chunk content.
	Text string

	// ChunkID is the ordinal position among the kept chunks of a document,
	// not among raw window offsets.
	ChunkID int

	// StartPos and EndPos are character offsets into the source text,
	// clipped to the text length.
	StartPos int
	EndPos   int

	// Meta carries caller-supplied metadata such as file name and category.
	// Each chunk owns its own copy.
	Meta map[string]string
}

// Validate checks the chunk invariants.
func (c *Chunk) Validate() error {
	if c.Text == "" {
		return ErrEmptyContent
	}
	if c.ChunkID < 0 {
		return ErrInvalidChunkID
	}
	if c.StartPos < 0 || c.EndPos < c.StartPos {
		return ErrInvalidPosition
	}
	return nil
}

// Well-known chunk metadata keys.
const (
	MetaFileName = "file_name"
	MetaCategory = "category"
)
