// Package catalog stores processing results in a local SQLite database.
//
// Each processed document gets one row keyed by file name, carrying its
// assigned category, confidence, failure reason if any, and the extracted
// fields as JSON. The database is opened in WAL mode with a single writer
// connection; schema changes are applied through versioned migrations.
package catalog
