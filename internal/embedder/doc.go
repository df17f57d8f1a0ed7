// Package embedder generates vector embeddings for document text.
//
// The same embedding primitive backs both the classification fallback and the
// retrieval engine, so a single Embedder instance is shared read-only between
// them.
//
// # Providers
//
// Three providers are available:
//   - ollama: local Ollama server (default model nomic-embed-text, 768 dims)
//   - openai: OpenAI embeddings API (text-embedding-3-small, 1536 dims)
//   - local: deterministic hash-derived vectors (384 dims), for tests and
//     offline runs
//
// Provider selection is environment driven:
//
//	emb, err := embedder.NewFromEnv()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer emb.Close()
//
//	vecs, err := emb.EmbedBatch(ctx, []string{"invoice total", "amount due"})
//
// # Caching and Retries
//
// HTTP providers cache results in an LRU keyed by the SHA-256 of the input
// text and retry transient failures with exponential backoff. The cache
// returns copies, so callers may mutate returned vectors freely.
package embedder
