package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Ranakb/ai-document-system/internal/catalog"
	"github.com/Ranakb/ai-document-system/internal/pipeline"
)

var (
	processRebuild  bool
	processNoReport bool
)

var processCmd = &cobra.Command{
	Use:   "process [directory]",
	Short: "Classify, extract, and index a directory of documents",
	Long: `Loads every .txt and .pdf document in the directory, classifies each
one, extracts structured fields, indexes readable text for search, and
writes the results to the catalog and a JSON report.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProcess,
}

func init() {
	processCmd.Flags().BoolVar(&processRebuild, "rebuild", false, "reset the index before processing")
	processCmd.Flags().BoolVar(&processNoReport, "no-report", false, "skip writing the JSON report file")
	rootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	dir := cfg.InputDir
	if len(args) == 1 {
		dir = args[0]
	}

	cls, engine, err := newEngine(ctx, cfg, processRebuild, true)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.CatalogPath), 0755); err != nil {
		return fmt.Errorf("create catalog directory: %w", err)
	}
	cat, err := catalog.Open(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("open catalog: %w", err)
	}
	defer func() { _ = cat.Close() }()

	p := pipeline.New(cls, engine,
		pipeline.WithCatalog(cat),
		pipeline.WithWorkers(cfg.Workers))

	report, err := p.Run(ctx, dir)
	if err != nil {
		return err
	}

	if !processNoReport {
		if err := pipeline.WriteReport(report, cfg.ReportPath); err != nil {
			return err
		}
		cmd.Printf("Report written to %s\n", cfg.ReportPath)
	}
	cmd.Printf("Processed %d documents (%d indexed, %d skipped, %d chunks)\n",
		len(report.Entries), report.Index.DocumentsIndexed,
		report.Index.DocumentsSkipped, report.Index.ChunksIndexed)
	for _, msg := range report.Index.Errors {
		cmd.Printf("Warning: %s\n", msg)
	}
	return nil
}
