// Package retrieval coordinates chunking, embedding, and the vector index
// to make document fragments semantically searchable.
//
// # Indexing
//
//	engine, _ := retrieval.New(emb, retrieval.Config{IndexDir: "data/index"})
//	_ = engine.LoadIndex() // optional: restore persisted state
//	stats, err := engine.IndexDocuments(ctx, docs)
//
// Indexing persists the paired index artifacts after each batch. The engine
// owns its index exclusively, which serializes all writes.
//
// # Searching
//
//	results, err := engine.Search(ctx, "total amount due", 5)
//	byClass, err := engine.SearchByCategory(ctx, "total amount due", types.CategoryInvoice, 5)
//
// SearchByCategory filters after a fixed over-fetch rather than scanning the
// whole index per category, so it can return fewer than k results even when
// more matching chunks exist. That trade-off is deliberate and documented
// here rather than silently widened.
package retrieval
