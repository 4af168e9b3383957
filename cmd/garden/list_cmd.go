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

func listCmd() *cobra.Command {
	var (
		featured   bool
		category   string
		technology string
		jsonOut    bool
	)
	cmd := &cobra.Command{
		Use:   "list posts|projects",
		Short: "List content entries",
		Long: `List posts or projects, newest first.

Examples:
  garden list posts
  garden list posts --category ai
  garden list projects --technology go --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, svc, err := loadStack()
			if err != nil {
				return err
			}

			switch args[0] {
			case "posts":
				var posts []content.Post
				switch {
				case featured:
					posts, err = svc.FeaturedPosts(0)
				case category != "":
					posts, err = svc.PostsByCategory(category)
				default:
					posts, err = svc.AllPosts()
				}
				if err != nil {
					return err
				}
				if jsonOut {
					return json.NewEncoder(os.Stdout).Encode(posts)
				}
				for _, p := range posts {
					printPostLine(p)
				}
				if len(posts) == 0 {
					fmt.Println("No posts.")
				}
				return nil

			case "projects":
				var projects []content.Project
				switch {
				case featured:
					projects, err = svc.FeaturedProjects(0)
				case technology != "":
					projects, err = svc.ProjectsByTechnology(technology)
				default:
					projects, err = svc.AllProjects()
				}
				if err != nil {
					return err
				}
				if jsonOut {
					return json.NewEncoder(os.Stdout).Encode(projects)
				}
				for _, p := range projects {
					printProjectLine(p)
				}
				if len(projects) == 0 {
					fmt.Println("No projects.")
				}
				return nil

			default:
				return fmt.Errorf("unknown collection %q (want posts or projects)", args[0])
			}
		},
	}
	cmd.Flags().BoolVar(&featured, "featured", false, "Only featured entries")
	cmd.Flags().StringVar(&category, "category", "", "Filter posts by category (exact match)")
	cmd.Flags().StringVar(&technology, "technology", "", "Filter projects by technology")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

func printPostLine(p content.Post) {
	star := "  "
	if p.Featured {
		star = cli.Yellow + "* " + cli.Reset
	}
	fmt.Printf("%s%s%s%s  %s%s · %s · %s%s\n",
		star, cli.Bold, p.Title, cli.Reset,
		cli.Dim, p.PublishedAt, p.Category, p.ReadTime, cli.Reset)
	if p.Description != "" {
		fmt.Printf("    %s%s%s\n", cli.Dim, content.Truncate(p.Description, 80), cli.Reset)
	}
}

func printProjectLine(p content.Project) {
	star := "  "
	if p.Featured {
		star = cli.Yellow + "* " + cli.Reset
	}
	role := p.Role
	if p.Company != "" {
		role = p.Role + " @ " + p.Company
	}
	fmt.Printf("%s%s%s%s  %s%s · %s%s\n",
		star, cli.Bold, p.Title, cli.Reset,
		cli.Dim, p.Year, role, cli.Reset)
	if len(p.Technologies) > 0 {
		fmt.Printf("    %s%s%s\n", cli.Cyan, strings.Join(p.Technologies, ", "), cli.Reset)
	}
}
