package chunker

import (
	"strings"

	"github.com/Ranakb/ai-document-system/pkg/types"
)

const (
	// DefaultChunkSize is the default window length in characters.
	DefaultChunkSize = 500

	// DefaultOverlap is the default number of overlapping characters
	// between consecutive windows.
	DefaultOverlap = 100
)

// Chunker splits document text into overlapping fixed-length windows.
// Chunking is a pure function of (text, metadata, configuration): the same
// inputs always produce an identical chunk sequence.
type Chunker struct {
	chunkSize int
	overlap   int
}

// New creates a Chunker with the given window length and overlap.
// Out-of-range values fall back to defaults; overlap is clamped below the
// window length so the step stays positive.
func New(chunkSize, overlap int) *Chunker {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if overlap < 0 {
		overlap = 0
	}
	if overlap >= chunkSize {
		overlap = chunkSize / 4
	}
	return &Chunker{
		chunkSize: chunkSize,
		overlap:   overlap,
	}
}

// ChunkSize returns the configured window length.
func (c *Chunker) ChunkSize() int { return c.chunkSize }

// Overlap returns the configured window overlap.
func (c *Chunker) Overlap() int { return c.overlap }

// Chunk splits text into overlapping windows tagged with character positions
// and a copy of the caller metadata. Windows that are empty after trimming
// are dropped; ChunkID numbers the kept windows, not the raw offsets.
// Empty or whitespace-only input yields an empty slice.
func (c *Chunker) Chunk(text string, metadata map[string]string) []types.Chunk {
	if strings.TrimSpace(text) == "" {
		return []types.Chunk{}
	}

	runes := []rune(text)
	step := c.chunkSize - c.overlap

	chunks := make([]types.Chunk, 0, len(runes)/step+1)
	for start := 0; start < len(runes); start += step {
		end := start + c.chunkSize
		if end > len(runes) {
			end = len(runes)
		}

		window := string(runes[start:end])
		if strings.TrimSpace(window) == "" {
			continue
		}

		chunks = append(chunks, types.Chunk{
			Text:     window,
			ChunkID:  len(chunks),
			StartPos: start,
			EndPos:   end,
			Meta:     copyMeta(metadata),
		})
	}

	return chunks
}

// copyMeta returns a shallow copy so chunks never alias caller maps.
func copyMeta(meta map[string]string) map[string]string {
	if meta == nil {
		return nil
	}
	out := make(map[string]string, len(meta))
	for k, v := range meta {
		out[k] = v
	}
	return out
}
