// Package types provides shared type definitions for the document system.
//
// This package defines the domain types used across multiple components:
// documents, categories, classification results, text chunks, index entries,
// and search results.
//
// # Core Types
//
// Document represents a loaded input document:
//
//	doc := types.Document{
//	    FileName: "invoice_1001.txt",
//	    Text:     rawText,
//	    Readable: true,
//	}
//
// ClassificationResult pairs a category label with a confidence value:
//
//	result := types.ClassificationResult{
//	    Label:      types.CategoryInvoice,
//	    Confidence: 0.85,
//	}
//
// The label is always one of the fixed categories. CategoryUnclassifiable is
// reserved for documents that could not be read at all; the classifier itself
// only emits the four content categories.
//
// # Search Results
//
// SearchResult combines a stored index entry with distance-derived scoring:
//
//	result := types.SearchResult{
//	    IndexEntry: entry,
//	    Distance:   0.42,
//	    Similarity: 0.704,
//	}
//
// Similarity is the monotonic transform 1/(1+distance), bounded in (0, 1],
// with higher values indicating closer matches.
package types
