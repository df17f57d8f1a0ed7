// Package cli defines the docsys command tree: process a directory of
// documents, search the index, inspect statistics, and serve the MCP
// protocol on stdio.
package cli
