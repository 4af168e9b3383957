package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/codestz/codegarden/internal/search"
	"github.com/codestz/codegarden/internal/tui"
)

func browseCmd() *cobra.Command {
	var url string
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Interactive content search",
		Long: `Open the full-screen search: type to query, arrows to move,
Enter to print the selected URL, Esc to close.

With --url the corpus is fetched from a running garden serve instance;
otherwise it is read directly from the content directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var loader tui.CorpusLoader
			if url != "" {
				loader = remoteCorpus(url)
			} else {
				cfg, _, svc, err := loadStack()
				if err != nil {
					return err
				}
				loader = func() ([]search.Document, error) {
					return search.BuildCorpus(svc, cfg.PostURLPrefix, cfg.ProjectURLPrefix), nil
				}
			}

			final, err := tea.NewProgram(tui.NewModel(loader)).Run()
			if err != nil {
				return fmt.Errorf("run search screen: %w", err)
			}
			if m, ok := final.(tui.Model); ok && m.Chosen {
				fmt.Println(m.Choice.URL)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&url, "url", "", "Base URL of a running garden serve instance")
	return cmd
}

// remoteCorpus fetches the corpus from GET <base>/api/search-content.
func remoteCorpus(base string) tui.CorpusLoader {
	return func() ([]search.Document, error) {
		client := &http.Client{Timeout: 10 * time.Second}
		resp, err := client.Get(base + "/api/search-content")
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("fetch search content: status %d", resp.StatusCode)
		}
		var docs []search.Document
		if err := json.NewDecoder(resp.Body).Decode(&docs); err != nil {
			return nil, err
		}
		return docs, nil
	}
}
