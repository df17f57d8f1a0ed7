// Package mcp exposes the document system over the Model Context
// Protocol on stdio.
//
// # Tools
//
// classify_document
//
// Classifies raw text into one of the content categories (Invoice,
// Resume, Utility Bill, Other) and reports a confidence score. With
// extract_fields set, the response also carries the structured fields
// extracted for the assigned category.
//
// index_documents
//
// Runs the full processing pipeline over a directory: load and clean
// every .txt and .pdf file, classify each document, extract fields,
// index the readable text for retrieval, and persist results to the
// catalog. With rebuild set, the vector index is reset first instead of
// appending.
//
// search_documents
//
// Searches indexed chunks by semantic similarity. Results carry the
// chunk text, its source file, byte positions, raw distance, and a
// similarity score in (0, 1]. An optional category parameter restricts
// results to documents of that category.
//
// get_stats
//
// Reports index size, chunking parameters, embedding provider details,
// and per-category catalog counts.
//
// get_report
//
// Returns stored classification records, either the whole catalog or a
// single file's record via file_name.
//
// # Errors
//
// Tool failures are returned as MCPError values with JSON-RPC style
// codes: -32602 for invalid parameters, -32603 for internal failures,
// and tool-specific codes for missing directories, unprocessed files,
// and empty queries. Logging goes to stderr; stdout belongs to the
// protocol stream.
package mcp
