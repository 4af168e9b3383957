package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/codestz/codegarden/internal/cli"
	"github.com/codestz/codegarden/internal/content"
	"github.com/codestz/codegarden/internal/repository"
	"github.com/codestz/codegarden/internal/watcher"
)

func doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Validate every content entry",
		Long:  "Parse every .mdx entry and report the ones findAll would silently skip.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, repo, _, err := loadStack()
			if err != nil {
				return err
			}

			fmt.Printf("Checking %s\n\n", cli.ShortenHome(cfg.ContentDir))

			adapter := repository.NewAdapter(cfg.ContentDir)
			total, bad := 0, 0
			for _, dir := range []string{repository.PostsDir, repository.ProjectsDir} {
				files, err := adapter.ListEntries(dir)
				if err != nil {
					return err
				}
				for _, f := range files {
					total++
					line := watcher.CheckEntry(repo, cfg.ContentDir, filepath.Join(cfg.ContentDir, dir, f))
					if strings.HasPrefix(line, "[FAIL]") {
						bad++
						fmt.Println(cli.Red + line + cli.Reset)
					} else {
						fmt.Println(cli.Green + line + cli.Reset)
					}
					slug := strings.TrimSuffix(f, repository.Ext)
					if slug != content.Slugify(slug) {
						fmt.Printf("%s[WARN] %s/%s: filename is not a clean slug%s\n", cli.Yellow, dir, f, cli.Reset)
					}
				}
			}

			fmt.Printf("\n%d entries checked, %d problem(s)\n", total, bad)
			if bad > 0 {
				return fmt.Errorf("%d entries failed validation", bad)
			}
			return nil
		},
	}
}
