package retrieval

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ranakb/ai-document-system/internal/embedder"
	"github.com/Ranakb/ai-document-system/pkg/types"
)

func newTestEngine(t *testing.T, dir string) *Engine {
	t.Helper()
	emb, err := embedder.NewLocalProvider(embedder.NewCache(1000))
	require.NoError(t, err)

	engine, err := New(emb, Config{
		ChunkSize:    50,
		ChunkOverlap: 10,
		TopK:         DefaultTopK,
		IndexDir:     dir,
	})
	require.NoError(t, err)
	return engine
}

func testDocs() []types.Document {
	return []types.Document{
		{
			FileName: "invoice.txt",
			Text:     "Invoice INV-1001 issued by Acme Corp. Total: $1,250.00 due on 2024-03-15.",
			Readable: true,
			Category: types.CategoryInvoice,
		},
		{
			FileName: "resume.txt",
			Text:     "Jane Doe. Email: jane@example.com. 8 years of experience in Go development.",
			Readable: true,
			Category: types.CategoryResume,
		},
		{
			FileName: "broken.pdf",
			Readable: false,
			Reason:   "extract pdf text: malformed",
		},
	}
}

func TestIndexDocuments(t *testing.T) {
	engine := newTestEngine(t, t.TempDir())
	ctx := context.Background()

	stats, err := engine.IndexDocuments(ctx, testDocs())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.DocumentsIndexed)
	assert.Equal(t, 1, stats.DocumentsSkipped)
	assert.Greater(t, stats.ChunksIndexed, 0)
	assert.Empty(t, stats.Errors)
	assert.Equal(t, stats.ChunksIndexed, engine.Stats().TotalChunks)
}

// A single large document produces well over a hundred chunks; it must be
// indexed in full, not skipped for its size.
func TestIndexDocuments_LargeDocument(t *testing.T) {
	engine := newTestEngine(t, t.TempDir())
	ctx := context.Background()

	doc := types.Document{
		FileName: "big.txt",
		Text:     strings.Repeat("quarterly usage summaries and account adjustments. ", 200),
		Readable: true,
		Category: types.CategoryOther,
	}

	stats, err := engine.IndexDocuments(ctx, []types.Document{doc})
	require.NoError(t, err)

	assert.Equal(t, 1, stats.DocumentsIndexed)
	assert.Equal(t, 0, stats.DocumentsSkipped)
	assert.Empty(t, stats.Errors)
	assert.Greater(t, stats.ChunksIndexed, 100)
}

func TestSearch(t *testing.T) {
	engine := newTestEngine(t, t.TempDir())
	ctx := context.Background()

	_, err := engine.IndexDocuments(ctx, testDocs())
	require.NoError(t, err)

	results, err := engine.Search(ctx, "invoice total", 3)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.LessOrEqual(t, len(results), 3)

	for i, r := range results {
		assert.NoError(t, r.Validate())
		if i > 0 {
			assert.GreaterOrEqual(t, r.Distance, results[i-1].Distance)
		}
	}
}

func TestSearch_EmptyQuery(t *testing.T) {
	engine := newTestEngine(t, t.TempDir())

	_, err := engine.Search(context.Background(), "", 3)
	assert.Error(t, err)
}

func TestSearch_EmptyIndex(t *testing.T) {
	engine := newTestEngine(t, t.TempDir())

	results, err := engine.Search(context.Background(), "anything", 3)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearch_DefaultTopK(t *testing.T) {
	engine := newTestEngine(t, t.TempDir())
	ctx := context.Background()

	_, err := engine.IndexDocuments(ctx, testDocs())
	require.NoError(t, err)

	results, err := engine.Search(ctx, "experience", 0)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(results), DefaultTopK)
}

func TestSearchByCategory(t *testing.T) {
	engine := newTestEngine(t, t.TempDir())
	ctx := context.Background()

	_, err := engine.IndexDocuments(ctx, testDocs())
	require.NoError(t, err)

	results, err := engine.SearchByCategory(ctx, "document text", types.CategoryResume, 5)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(results), 5)
	for _, r := range results {
		assert.Equal(t, string(types.CategoryResume), r.Category())
		assert.Equal(t, "resume.txt", r.FileName())
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first := newTestEngine(t, dir)
	_, err := first.IndexDocuments(ctx, testDocs())
	require.NoError(t, err)

	want, err := first.Search(ctx, "invoice total", 3)
	require.NoError(t, err)

	second := newTestEngine(t, dir)
	require.NoError(t, second.LoadIndex())
	assert.Equal(t, first.Stats().TotalChunks, second.Stats().TotalChunks)

	got, err := second.Search(ctx, "invoice total", 3)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadIndex_NoArtifacts(t *testing.T) {
	engine := newTestEngine(t, t.TempDir())

	err := engine.LoadIndex()
	assert.ErrorIs(t, err, ErrNoIndex)
}

func TestRebuild(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	engine := newTestEngine(t, dir)
	_, err := engine.IndexDocuments(ctx, testDocs())
	require.NoError(t, err)
	before := engine.Stats().TotalChunks

	// Append mode grows the index.
	_, err = engine.IndexDocuments(ctx, testDocs())
	require.NoError(t, err)
	assert.Equal(t, 2*before, engine.Stats().TotalChunks)

	// Rebuild resets it first.
	engine.SetRebuild(true)
	_, err = engine.IndexDocuments(ctx, testDocs())
	require.NoError(t, err)
	assert.Equal(t, before, engine.Stats().TotalChunks)
}

func TestStats(t *testing.T) {
	dir := t.TempDir()
	engine := newTestEngine(t, dir)

	stats := engine.Stats()
	assert.Equal(t, 0, stats.TotalChunks)
	assert.Equal(t, embedder.LocalDimension, stats.Dimension)
	assert.Equal(t, 50, stats.ChunkSize)
	assert.Equal(t, 10, stats.ChunkOverlap)
	assert.Equal(t, embedder.ProviderLocal, stats.Provider)
	assert.Equal(t, dir, stats.IndexDir)
}
