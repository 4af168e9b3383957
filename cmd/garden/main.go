// Package main is the entrypoint for the garden CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/codestz/codegarden/internal/config"
	"github.com/codestz/codegarden/internal/repository"
	"github.com/codestz/codegarden/internal/service"
)

// Version is set at build time via ldflags.
var Version = "dev"

// configPath is the global --config flag value.
var configPath string

func main() {
	root := &cobra.Command{
		Use:   "garden",
		Short: "File-backed portfolio content service",
		Long:  "garden serves, searches, and lints the MDX content behind the portfolio site.",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	root.AddCommand(versionCmd())
	root.AddCommand(serveCmd())
	root.AddCommand(searchCmd())
	root.AddCommand(browseCmd())
	root.AddCommand(listCmd())
	root.AddCommand(showCmd())
	root.AddCommand(doctorCmd())
	root.AddCommand(watchCmd())

	root.PersistentFlags().StringVar(&configPath, "config", "", "Path to garden.toml (default ./garden.toml)")

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the garden version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("garden " + Version)
		},
	}
}

// loadStack builds the config, repository, and service the commands share.
func loadStack() (config.Config, *repository.Content, *service.Content, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, nil, nil, err
	}
	repo := repository.New(cfg.ContentDir, cfg.Author, cfg.ReadingSpeed)
	svc := service.New(repo, cfg.FeaturedPostsLimit, cfg.FeaturedProjectsLimit)
	return cfg, repo, svc, nil
}
