// Package pipeline ties the document stages together: load and clean a
// directory of documents, classify each one, extract structured fields,
// index readable text for retrieval, and persist the outcome.
//
// Classification fans out across a bounded worker group; index writes and
// catalog writes happen after the group finishes, so the vector index and
// the database each see a single writer.
package pipeline
