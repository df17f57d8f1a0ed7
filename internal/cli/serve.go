package cli

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/Ranakb/ai-document-system/internal/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server on stdio",
	Long: `Starts the Model Context Protocol server on stdin/stdout, exposing
classification, indexing, search, and reporting as MCP tools. All
logging goes to stderr; stdout carries the protocol stream.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	srv, err := mcp.NewServer(ctx, cfg)
	if err != nil {
		return err
	}
	log.Printf("%s %s serving on stdio", mcp.ServerName, mcp.ServerVersion)
	return srv.Serve(ctx)
}
