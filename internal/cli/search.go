package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ranakb/ai-document-system/pkg/types"
)

var (
	searchLimit    int
	searchCategory string
	searchJSON     bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search indexed document chunks",
	Long: `Searches the vector index for chunks semantically similar to the
query. Use --category to restrict results to one content category.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "maximum number of results (default from config)")
	searchCmd.Flags().StringVar(&searchCategory, "category", "", "restrict results to one category")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
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

	query := args[0]
	var results []types.SearchResult
	if searchCategory != "" {
		category, ok := types.ParseCategory(searchCategory)
		if !ok {
			return fmt.Errorf("unknown category %q", searchCategory)
		}
		results, err = engine.SearchByCategory(ctx, query, category, searchLimit)
	} else {
		results, err = engine.Search(ctx, query, searchLimit)
	}
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal results: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}
	for i, r := range results {
		cmd.Printf("[%d] %s (%s) score=%.4f\n", i+1, r.FileName(), r.Category(), r.Similarity)
		cmd.Printf("    %s\n", snippet(r.Text, 160))
	}
	return nil
}

// snippet truncates s to at most n runes for terminal display.
func snippet(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
