// Package loader discovers and reads input documents.
//
// The loader handles plain-text and PDF files. Reading never performs any
// classification; it produces types.Document values where a failed
// extraction is marked unreadable with a reason instead of failing the
// whole batch. A file that reads successfully is always readable, even
// when its text is blank. Extracted text is normalized by Clean before it
// reaches the classification or retrieval core.
package loader
