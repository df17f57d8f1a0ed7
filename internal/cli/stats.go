package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ranakb/ai-document-system/internal/catalog"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show index and catalog statistics",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	_, engine, err := newEngine(ctx, cfg, false, true)
	if err != nil {
		return err
	}

	out := map[string]interface{}{
		"index": engine.Stats(),
	}

	cat, err := catalog.Open(cfg.CatalogPath)
	if err == nil {
		defer func() { _ = cat.Close() }()
		if summary, err := cat.Summarize(ctx); err == nil {
			out["catalog"] = summary
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
