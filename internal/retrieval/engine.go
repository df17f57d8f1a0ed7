package retrieval

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/Ranakb/ai-document-system/internal/chunker"
	"github.com/Ranakb/ai-document-system/internal/embedder"
	"github.com/Ranakb/ai-document-system/internal/vectorindex"
	"github.com/Ranakb/ai-document-system/pkg/types"
)

// ErrNoIndex is returned by LoadIndex when no saved index artifacts exist.
// First runs hit this; callers start with an empty index instead.
var ErrNoIndex = vectorindex.ErrArtifactMissing

const (
	// DefaultTopK is the default number of search results.
	DefaultTopK = 5

	// overFetchFactor is how many extra results a category-filtered search
	// requests before filtering.
	overFetchFactor = 2
)

// Config contains configuration for the retrieval engine.
type Config struct {
	ChunkSize    int    // window length in characters (default 500)
	ChunkOverlap int    // window overlap in characters (default 100)
	TopK         int    // default result count (default 5)
	IndexDir     string // directory holding the paired index artifacts
	Rebuild      bool   // reset the index before the next IndexDocuments
}

// IndexStats reports the outcome of an indexing batch.
type IndexStats struct {
	DocumentsIndexed int           `json:"documents_indexed"`
	DocumentsSkipped int           `json:"documents_skipped"`
	ChunksIndexed    int           `json:"chunks_indexed"`
	Duration         time.Duration `json:"duration_ns"`
	Errors           []string      `json:"errors,omitempty"`
}

// Stats describes the engine's current state. Read-only, no side effects.
type Stats struct {
	TotalChunks  int    `json:"total_chunks"`
	Dimension    int    `json:"embedding_dim"`
	ChunkSize    int    `json:"chunk_size"`
	ChunkOverlap int    `json:"chunk_overlap"`
	Provider     string `json:"provider"`
	Model        string `json:"model"`
	IndexDir     string `json:"index_dir"`
}

// Engine orchestrates the chunker, the embedder, and the vector index to
// index documents and answer similarity queries. It exclusively owns its
// vector index; writers are serialized by that ownership.
type Engine struct {
	chunker    *chunker.Chunker
	embedder   embedder.Embedder
	index      *vectorindex.Index
	vectorPath string
	metaPath   string
	topK       int
	rebuild    bool
	lock       indexLock
}

// ErrIndexingInProgress is returned when an indexing batch is already
// running.
var ErrIndexingInProgress = errors.New("indexing already in progress")

// New creates a retrieval engine around the given embedder. The index starts
// empty; call LoadIndex to restore previously persisted state.
func New(emb embedder.Embedder, cfg Config) (*Engine, error) {
	if cfg.TopK <= 0 {
		cfg.TopK = DefaultTopK
	}
	if cfg.IndexDir == "" {
		cfg.IndexDir = "data/index"
	}

	ix, err := vectorindex.New(emb.Dimension())
	if err != nil {
		return nil, fmt.Errorf("create vector index: %w", err)
	}

	return &Engine{
		chunker:    chunker.New(cfg.ChunkSize, cfg.ChunkOverlap),
		embedder:   emb,
		index:      ix,
		vectorPath: filepath.Join(cfg.IndexDir, vectorindex.DefaultVectorFile),
		metaPath:   filepath.Join(cfg.IndexDir, vectorindex.DefaultMetaFile),
		topK:       cfg.TopK,
		rebuild:    cfg.Rebuild,
	}, nil
}

// LoadIndex restores the persisted index pair. On failure the in-memory
// index is untouched and the caller decides whether to proceed empty or
// abort; vectorindex.ErrArtifactMissing just means nothing was indexed yet.
func (e *Engine) LoadIndex() error {
	return e.index.Load(e.vectorPath, e.metaPath)
}

// SetRebuild arms or disarms a full index reset before the next
// IndexDocuments batch.
func (e *Engine) SetRebuild(rebuild bool) {
	e.rebuild = rebuild
}

// IndexDocuments chunks, embeds, and indexes a batch of documents, then
// persists the index. Unreadable or empty documents are skipped and
// per-document embedding failures are recorded without aborting the batch.
// When the engine was configured for a full rebuild the index is reset
// before the first batch.
func (e *Engine) IndexDocuments(ctx context.Context, docs []types.Document) (*IndexStats, error) {
	if !e.lock.tryAcquire() {
		return nil, ErrIndexingInProgress
	}
	defer e.lock.release()

	start := time.Now()
	stats := &IndexStats{}

	if e.rebuild {
		e.index.Reset()
		e.rebuild = false
	}

	for _, doc := range docs {
		if !doc.Readable || doc.Text == "" {
			stats.DocumentsSkipped++
			continue
		}

		category := doc.Category
		if category == "" {
			category = types.CategoryOther
		}
		meta := map[string]string{
			types.MetaFileName: doc.FileName,
			types.MetaCategory: string(category),
		}

		chunks := e.chunker.Chunk(doc.Text, meta)
		if len(chunks) == 0 {
			stats.DocumentsSkipped++
			continue
		}

		texts := make([]string, len(chunks))
		for i, c := range chunks {
			texts[i] = c.Text
		}

		vecs, err := e.embedder.EmbedBatch(ctx, texts)
		if err != nil {
			stats.Errors = append(stats.Errors, fmt.Sprintf("%s: %v", doc.FileName, err))
			stats.DocumentsSkipped++
			continue
		}

		entries := make([]types.IndexEntry, len(chunks))
		for i, c := range chunks {
			entries[i] = types.IndexEntry{
				Text:     c.Text,
				ChunkID:  c.ChunkID,
				StartPos: c.StartPos,
				EndPos:   c.EndPos,
				Meta:     c.Meta,
			}
		}

		if err := e.index.Add(vecs, entries); err != nil {
			return stats, fmt.Errorf("add %s to index: %w", doc.FileName, err)
		}

		stats.DocumentsIndexed++
		stats.ChunksIndexed += len(chunks)
	}

	if err := e.index.Save(e.vectorPath, e.metaPath); err != nil {
		return stats, fmt.Errorf("persist index: %w", err)
	}

	stats.Duration = time.Since(start)
	return stats, nil
}

// Search embeds the query and returns the k nearest indexed chunks. A
// non-positive k falls back to the configured default. An empty index
// yields an empty result set.
func (e *Engine) Search(ctx context.Context, query string, k int) ([]types.SearchResult, error) {
	if query == "" {
		return nil, fmt.Errorf("query cannot be empty")
	}
	if k <= 0 {
		k = e.topK
	}

	queryVec, err := e.embedder.Embed(ctx, query)
	if err != nil {
		return []types.SearchResult{}, fmt.Errorf("embed query: %w", err)
	}

	return e.index.Search(queryVec, k)
}

// SearchByCategory searches and keeps only results whose stored category
// matches. It over-fetches a fixed factor before filtering, so it is a
// best-effort filter: fewer than k results can come back even when more
// matching chunks exist deeper in the index.
func (e *Engine) SearchByCategory(ctx context.Context, query string, category types.Category, k int) ([]types.SearchResult, error) {
	if k <= 0 {
		k = e.topK
	}

	raw, err := e.Search(ctx, query, k*overFetchFactor)
	if err != nil {
		return raw, err
	}

	filtered := make([]types.SearchResult, 0, k)
	for _, r := range raw {
		if r.Category() != string(category) {
			continue
		}
		filtered = append(filtered, r)
		if len(filtered) == k {
			break
		}
	}
	return filtered, nil
}

// Stats returns the engine's current configuration and index size.
func (e *Engine) Stats() Stats {
	return Stats{
		TotalChunks:  e.index.Count(),
		Dimension:    e.index.Dimension(),
		ChunkSize:    e.chunker.ChunkSize(),
		ChunkOverlap: e.chunker.Overlap(),
		Provider:     e.embedder.Provider(),
		Model:        e.embedder.Model(),
		IndexDir:     filepath.Dir(e.vectorPath),
	}
}
