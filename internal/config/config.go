package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/Ranakb/ai-document-system/internal/chunker"
	"github.com/Ranakb/ai-document-system/internal/retrieval"
)

// Environment variable names.
const (
	EnvInputDir     = "DOCSYS_INPUT_DIR"
	EnvIndexDir     = "DOCSYS_INDEX_DIR"
	EnvCatalogPath  = "DOCSYS_CATALOG_PATH"
	EnvReportPath   = "DOCSYS_REPORT_PATH"
	EnvChunkSize    = "DOCSYS_CHUNK_SIZE"
	EnvChunkOverlap = "DOCSYS_CHUNK_OVERLAP"
	EnvTopK         = "DOCSYS_TOP_K"
	EnvWorkers      = "DOCSYS_WORKERS"
)

// Defaults applied when the corresponding variable is unset.
const (
	DefaultInputDir    = "sample_docs"
	DefaultIndexDir    = "data/index"
	DefaultCatalogPath = "data/catalog.db"
	DefaultReportPath  = "output.json"
	DefaultWorkers     = 4
)

// Config collects the runtime settings shared by the CLI commands and the
// MCP server. Embedding provider selection lives in the embedder package;
// everything else is read here.
type Config struct {
	InputDir     string
	IndexDir     string
	CatalogPath  string
	ReportPath   string
	ChunkSize    int
	ChunkOverlap int
	TopK         int
	Workers      int
}

// FromEnv builds a Config from the process environment, filling defaults
// for anything unset. It returns an error only for values that are set
// but unparsable.
func FromEnv() (Config, error) {
	cfg := Config{
		InputDir:    getEnv(EnvInputDir, DefaultInputDir),
		IndexDir:    getEnv(EnvIndexDir, DefaultIndexDir),
		CatalogPath: getEnv(EnvCatalogPath, DefaultCatalogPath),
		ReportPath:  getEnv(EnvReportPath, DefaultReportPath),
	}

	var err error
	if cfg.ChunkSize, err = getEnvInt(EnvChunkSize, chunker.DefaultChunkSize); err != nil {
		return Config{}, err
	}
	if cfg.ChunkOverlap, err = getEnvInt(EnvChunkOverlap, chunker.DefaultOverlap); err != nil {
		return Config{}, err
	}
	if cfg.TopK, err = getEnvInt(EnvTopK, retrieval.DefaultTopK); err != nil {
		return Config{}, err
	}
	if cfg.Workers, err = getEnvInt(EnvWorkers, DefaultWorkers); err != nil {
		return Config{}, err
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return cfg, nil
}

// Retrieval maps the shared settings onto a retrieval engine config.
func (c Config) Retrieval(rebuild bool) retrieval.Config {
	return retrieval.Config{
		ChunkSize:    c.ChunkSize,
		ChunkOverlap: c.ChunkOverlap,
		TopK:         c.TopK,
		IndexDir:     c.IndexDir,
		Rebuild:      rebuild,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return n, nil
}
