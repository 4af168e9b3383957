package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/codestz/codegarden/internal/cli"
	"github.com/codestz/codegarden/internal/search"
)

func searchCmd() *cobra.Command {
	var (
		limit   int
		jsonOut bool
	)
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search posts and projects",
		Long: `Run one fuzzy query over all content and print the ranked results.

Examples:
  garden search "react server"
  garden search --json performance`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			if strings.TrimSpace(query) == "" {
				return fmt.Errorf("empty search query")
			}

			cfg, _, svc, err := loadStack()
			if err != nil {
				return err
			}

			ix := search.NewIndex(search.BuildCorpus(svc, cfg.PostURLPrefix, cfg.ProjectURLPrefix))
			if limit > 0 {
				ix.MaxResults = limit
			}
			results := ix.Search(query)

			if jsonOut {
				if results == nil {
					results = []search.Match{}
				}
				return json.NewEncoder(os.Stdout).Encode(results)
			}

			if len(results) == 0 {
				fmt.Printf("No results for %q\n", query)
				return nil
			}
			for i, r := range results {
				fmt.Printf("%d. %s%s%s  %s[%s]%s\n", i+1, cli.Bold, r.Title, cli.Reset, cli.Dim, r.Type, cli.Reset)
				fmt.Printf("   %s%s%s\n", cli.Cyan, r.URL, cli.Reset)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum results (default 10)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}
