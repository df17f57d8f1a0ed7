// Package chunker divides document text into overlapping windows for
// embedding and search.
//
// # Basic Usage
//
//	c := chunker.New(500, 100)
//	chunks := c.Chunk(text, map[string]string{
//	    types.MetaFileName: "invoice_1001.txt",
//	    types.MetaCategory: "Invoice",
//	})
//
//	for _, chunk := range chunks {
//	    fmt.Printf("chunk %d: chars %d-%d\n",
//	        chunk.ChunkID, chunk.StartPos, chunk.EndPos)
//	}
//
// # Windowing
//
// The window advances by (size - overlap) characters. Each window is clipped
// to the text length, and windows that are blank after trimming are dropped.
// ChunkID numbers the surviving windows, so the IDs stay dense even when
// interior windows are dropped.
//
// Chunking is deterministic: the same text and configuration always produce
// an identical sequence, which keeps re-indexing stable.
package chunker
