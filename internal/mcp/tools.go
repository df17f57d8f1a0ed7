package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Ranakb/ai-document-system/internal/catalog"
	"github.com/Ranakb/ai-document-system/internal/extractor"
	"github.com/Ranakb/ai-document-system/pkg/types"
)

// MCP error codes
const (
	ErrorCodeInvalidParams = -32602 // Invalid method parameters
	ErrorCodeInternalError = -32603 // Internal JSON-RPC error
	ErrorCodeDirNotFound   = -32001 // Input directory does not exist
	ErrorCodeNotProcessed  = -32003 // No results stored for the requested file
	ErrorCodeEmptyQuery    = -32004 // Query parameter is empty
)

// handleClassifyDocument handles the classify_document tool invocation
func (s *Server) handleClassifyDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	text, ok := args["text"].(string)
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "text parameter is required", map[string]interface{}{
			"param":  "text",
			"reason": "missing",
		})
	}

	result := s.classifier.Classify(ctx, text)

	response := map[string]interface{}{
		"label":      result.Label,
		"confidence": result.Confidence,
	}
	if getBoolDefault(args, "extract_fields", false) {
		response["fields"] = extractor.ExtractFields(result.Label, text)
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleIndexDocuments handles the index_documents tool invocation
func (s *Server) handleIndexDocuments(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})

	dir := getStringDefault(args, "directory", s.cfg.InputDir)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil, newMCPError(ErrorCodeDirNotFound, "directory does not exist", map[string]interface{}{
			"param": "directory",
			"value": dir,
		})
	}

	if getBoolDefault(args, "rebuild", false) {
		s.engine.SetRebuild(true)
	}

	report, err := s.newPipeline().Run(ctx, dir)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "processing failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	response := map[string]interface{}{
		"documents_processed": len(report.Entries),
		"documents_indexed":   report.Index.DocumentsIndexed,
		"documents_skipped":   report.Index.DocumentsSkipped,
		"chunks_indexed":      report.Index.ChunksIndexed,
		"duration_ms":         report.Index.Duration.Milliseconds(),
	}
	if len(report.Index.Errors) > 0 {
		errorCount := len(report.Index.Errors)
		if errorCount > 5 {
			response["errors"] = report.Index.Errors[:5]
			response["error_count"] = errorCount
		} else {
			response["errors"] = report.Index.Errors
		}
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleSearchDocuments handles the search_documents tool invocation
func (s *Server) handleSearchDocuments(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	query, ok := args["query"].(string)
	if !ok || query == "" {
		return nil, newMCPError(ErrorCodeEmptyQuery, "query parameter is required and cannot be empty", map[string]interface{}{
			"param":  "query",
			"reason": "missing or empty",
		})
	}

	limit := getIntDefault(args, "limit", s.cfg.TopK)
	if limit < 1 || limit > 100 {
		return nil, newMCPError(ErrorCodeInvalidParams, "limit must be between 1 and 100", map[string]interface{}{
			"param": "limit",
			"value": limit,
		})
	}

	var results []types.SearchResult
	var err error
	if categoryArg := getStringDefault(args, "category", ""); categoryArg != "" {
		category, ok := types.ParseCategory(categoryArg)
		if !ok {
			return nil, newMCPError(ErrorCodeInvalidParams, "invalid category", map[string]interface{}{
				"param": "category",
				"value": categoryArg,
			})
		}
		results, err = s.engine.SearchByCategory(ctx, query, category, limit)
	} else {
		results, err = s.engine.Search(ctx, query, limit)
	}
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "search failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	response := map[string]interface{}{
		"query":   query,
		"count":   len(results),
		"results": results,
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleGetStats handles the get_stats tool invocation
func (s *Server) handleGetStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	stats := s.engine.Stats()
	summary, err := s.catalog.Summarize(ctx)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to summarize catalog", map[string]interface{}{
			"error": err.Error(),
		})
	}

	response := map[string]interface{}{
		"index":   stats,
		"catalog": summary,
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleGetReport handles the get_report tool invocation
func (s *Server) handleGetReport(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})

	if fileName := getStringDefault(args, "file_name", ""); fileName != "" {
		rec, err := s.catalog.Get(ctx, fileName)
		if errors.Is(err, catalog.ErrNotFound) {
			return nil, newMCPError(ErrorCodeNotProcessed, "no results for file", map[string]interface{}{
				"param": "file_name",
				"value": fileName,
			})
		}
		if err != nil {
			return nil, newMCPError(ErrorCodeInternalError, "failed to read catalog", map[string]interface{}{
				"error": err.Error(),
			})
		}
		return mcp.NewToolResultText(formatJSON(map[string]interface{}{"document": rec})), nil
	}

	records, err := s.catalog.List(ctx)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to read catalog", map[string]interface{}{
			"error": err.Error(),
		})
	}
	response := map[string]interface{}{
		"count":     len(records),
		"documents": records,
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// Helper functions

// newMCPError creates a properly formatted MCP error
func newMCPError(code int, message string, data interface{}) error {
	// MCP errors are returned as regular errors, the framework handles encoding
	return &MCPError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// MCPError represents an MCP protocol error
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// formatJSON formats a map as indented JSON
func formatJSON(data map[string]interface{}) string {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(bytes)
}

// getBoolDefault extracts a boolean parameter with a default value
func getBoolDefault(args map[string]interface{}, key string, defaultValue bool) bool {
	if val, ok := args[key].(bool); ok {
		return val
	}
	return defaultValue
}

// getIntDefault extracts an integer parameter with a default value
func getIntDefault(args map[string]interface{}, key string, defaultValue int) int {
	if val, ok := args[key].(float64); ok {
		return int(val)
	}
	if val, ok := args[key].(int); ok {
		return val
	}
	return defaultValue
}

// getStringDefault extracts a string parameter with a default value
func getStringDefault(args map[string]interface{}, key string, defaultValue string) string {
	if val, ok := args[key].(string); ok {
		return val
	}
	return defaultValue
}
