package main

import (
	"github.com/spf13/cobra"

	"github.com/codestz/codegarden/internal/watcher"
)

func watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch the content directory and validate changes",
		Long:  "Re-validate .mdx entries as they are saved. Useful while writing.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, repo, _, err := loadStack()
			if err != nil {
				return err
			}
			return watcher.Watch(repo, cfg.ContentDir)
		},
	}
}
