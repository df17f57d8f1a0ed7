package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Ranakb/ai-document-system/internal/classifier"
	"github.com/Ranakb/ai-document-system/internal/config"
	"github.com/Ranakb/ai-document-system/internal/embedder"
	"github.com/Ranakb/ai-document-system/internal/retrieval"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "docsys",
	Short: "Document classification and semantic retrieval",
	Long: `docsys classifies documents into content categories, extracts
structured fields, and indexes document text for semantic search.`,
	SilenceUsage: true,
}

// Execute runs the CLI. Environment variables may come from a local
// .env file; logging goes to stderr so stdout stays clean for command
// output and the MCP protocol.
func Execute() {
	log.SetOutput(os.Stderr)
	log.SetFlags(log.LstdFlags)

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: could not load .env: %v", err)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

// loadConfig reads settings from the environment.
func loadConfig() (config.Config, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// newEngine wires an embedder, classifier, and retrieval engine from cfg.
// When loadIndex is true a previously saved index is restored; a missing
// index is not an error, searches just start empty.
func newEngine(ctx context.Context, cfg config.Config, rebuild, loadIndex bool) (*classifier.Engine, *retrieval.Engine, error) {
	emb, err := embedder.NewFromEnv()
	if err != nil {
		return nil, nil, fmt.Errorf("initialize embedder: %w", err)
	}

	cls, err := classifier.New(ctx, emb)
	if err != nil {
		return nil, nil, fmt.Errorf("initialize classifier: %w", err)
	}

	engine, err := retrieval.New(emb, cfg.Retrieval(rebuild))
	if err != nil {
		return nil, nil, fmt.Errorf("initialize retrieval engine: %w", err)
	}
	if loadIndex && !rebuild {
		if err := engine.LoadIndex(); err != nil {
			if !errors.Is(err, retrieval.ErrNoIndex) {
				return nil, nil, fmt.Errorf("load index: %w", err)
			}
			log.Printf("no saved index at %s, starting empty", cfg.IndexDir)
		}
	}
	return cls, engine, nil
}
