package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/codestz/codegarden/internal/cli"
	"github.com/codestz/codegarden/internal/content"
)

func showCmd() *cobra.Command {
	var jsonOut bool
	cmd := &cobra.Command{
		Use:   "show [slug]",
		Short: "Show one entry by slug",
		Long: `Print a single post or project. Posts are checked first.

Examples:
  garden show building-codegarden
  garden show --json recurly`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			slug := args[0]
			_, _, svc, err := loadStack()
			if err != nil {
				return err
			}

			post, err := svc.PostBySlug(slug)
			if err == nil {
				if jsonOut {
					return json.NewEncoder(os.Stdout).Encode(post)
				}
				printPost(*post)
				return nil
			}
			if content.KindOf(err) != content.KindNotFound {
				return err
			}

			project, err := svc.ProjectBySlug(slug)
			if err != nil {
				if content.KindOf(err) == content.KindNotFound {
					return fmt.Errorf("no post or project with slug %q", slug)
				}
				return err
			}
			if jsonOut {
				return json.NewEncoder(os.Stdout).Encode(project)
			}
			printProject(*project)
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

func printPost(p content.Post) {
	fmt.Printf("%s%s%s\n", cli.Bold, p.Title, cli.Reset)
	fmt.Printf("%s%s · %s · %s · by %s%s\n", cli.Dim, p.PublishedAt, content.Capitalize(p.Category), p.ReadTime, p.Author, cli.Reset)
	if len(p.Tags) > 0 {
		fmt.Printf("%stags: %s%s\n", cli.Dim, strings.Join(p.Tags, ", "), cli.Reset)
	}
	fmt.Println()
	fmt.Println(p.Content)
}

func printProject(p content.Project) {
	fmt.Printf("%s%s%s\n", cli.Bold, p.Title, cli.Reset)
	header := p.Year
	if p.Role != "" {
		header += " · " + p.Role
	}
	if p.Company != "" {
		header += " @ " + p.Company
	}
	if p.Current {
		header += " (current)"
	}
	fmt.Printf("%s%s%s\n", cli.Dim, header, cli.Reset)
	if len(p.Technologies) > 0 {
		fmt.Printf("%s%s%s\n", cli.Cyan, strings.Join(p.Technologies, ", "), cli.Reset)
	}
	if p.IsPublic && p.GithubURL != "" {
		fmt.Printf("%s%s%s\n", cli.Dim, p.GithubURL, cli.Reset)
	}
	fmt.Println()
	fmt.Println(p.Content)
}
