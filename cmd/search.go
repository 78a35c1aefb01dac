package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"literarylens/internal/site"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the catalog titles",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().Int("limit", 0, "maximum number of results (0 for all)")
	searchCmd.Flags().String("root", "", "site directory (defaults to the embedded site)")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("root") {
		cfg.Site.Root, _ = cmd.Flags().GetString("root")
	}

	fsys, _, err := siteFS(cfg.Site.Root)
	if err != nil {
		return err
	}
	s, err := site.Open(fsys, site.Options{
		Index:       cfg.Site.Index,
		CatalogFile: cfg.Catalog.File,
	})
	if err != nil {
		return fmt.Errorf("opening site: %w", err)
	}

	limit, _ := cmd.Flags().GetInt("limit")
	results := s.Search(strings.Join(args, " "), limit)
	out := cmd.OutOrStdout()
	if len(results) == 0 {
		fmt.Fprintln(out, "No results")
		return nil
	}
	for _, e := range results {
		id := e.ID
		if id == "" {
			id = "-"
		}
		fmt.Fprintf(out, "%-6s %s\n", id, e.Title)
	}
	return nil
}
