package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Ranakb/ai-document-system/pkg/types"
)

// classifyDocumentTool returns the tool definition for classify_document
func classifyDocumentTool() mcp.Tool {
	return mcp.Tool{
		Name:        "classify_document",
		Description: "Classify a document's text into a content category with a confidence score",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"text": map[string]interface{}{
					"type":        "string",
					"description": "Full document text to classify",
				},
				"extract_fields": map[string]interface{}{
					"type":        "boolean",
					"description": "If true, also extract structured fields for the assigned category",
					"default":     false,
				},
			},
			Required: []string{"text"},
		},
	}
}

// indexDocumentsTool returns the tool definition for index_documents
func indexDocumentsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "index_documents",
		Description: "Process a directory of documents: classify, extract fields, and index for search",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"directory": map[string]interface{}{
					"type":        "string",
					"description": "Directory containing .txt and .pdf documents (defaults to the configured input directory)",
				},
				"rebuild": map[string]interface{}{
					"type":        "boolean",
					"description": "If true, reset the index before processing instead of appending",
					"default":     false,
				},
			},
		},
	}
}

// searchDocumentsTool returns the tool definition for search_documents
func searchDocumentsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "search_documents",
		Description: "Search indexed document chunks by semantic similarity",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Natural language search query",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of results to return (1-100)",
					"default":     5,
					"minimum":     1,
					"maximum":     100,
				},
				"category": map[string]interface{}{
					"type":        "string",
					"description": "Restrict results to one content category",
					"enum": []string{
						string(types.CategoryInvoice),
						string(types.CategoryResume),
						string(types.CategoryUtilityBill),
						string(types.CategoryOther),
					},
				},
			},
			Required: []string{"query"},
		},
	}
}

// getStatsTool returns the tool definition for get_stats
func getStatsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_stats",
		Description: "Report index size, chunking parameters, and embedding provider details",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}

// getReportTool returns the tool definition for get_report
func getReportTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_report",
		Description: "Return the stored classification results, optionally for a single file",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"file_name": map[string]interface{}{
					"type":        "string",
					"description": "Return only the record for this file",
				},
			},
		},
	}
}
