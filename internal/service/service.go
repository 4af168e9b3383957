// Package service layers business rules over the content repository:
// argument validation, not-found mapping, default limits, and
// cross-collection aggregates.
package service

import (
	"sort"
	"strings"

	"github.com/codestz/codegarden/internal/content"
	"github.com/codestz/codegarden/internal/repository"
)

// Content is the read service consumed by HTTP handlers and CLI commands.
// It is stateless and idempotent: every call re-derives its answer from
// the repository.
type Content struct {
	repo                  *repository.Content
	featuredPostsLimit    int
	featuredProjectsLimit int
}

// New returns a Content service over repo. The featured limits apply when
// a caller passes limit <= 0.
func New(repo *repository.Content, featuredPostsLimit, featuredProjectsLimit int) *Content {
	return &Content{
		repo:                  repo,
		featuredPostsLimit:    featuredPostsLimit,
		featuredProjectsLimit: featuredProjectsLimit,
	}
}

// AllPosts returns every post, newest first.
func (s *Content) AllPosts() ([]content.Post, error) {
	return s.repo.Posts.FindAll()
}

// PostBySlug returns the post for slug. Unlike the repository, absence is
// an explicit KindNotFound error naming the slug.
func (s *Content) PostBySlug(slug string) (*content.Post, error) {
	if strings.TrimSpace(slug) == "" {
		return nil, content.InvalidArgumentf("post slug is required")
	}
	post, err := s.repo.Posts.FindBySlug(slug)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, content.NotFoundf("post not found: %s", slug)
	}
	return post, nil
}

// FeaturedPosts returns featured posts, applying the configured default
// when limit <= 0.
func (s *Content) FeaturedPosts(limit int) ([]content.Post, error) {
	if limit <= 0 {
		limit = s.featuredPostsLimit
	}
	return s.repo.Posts.FindFeatured(limit)
}

// PostsByCategory returns posts in category (exact, case-sensitive).
func (s *Content) PostsByCategory(category string) ([]content.Post, error) {
	if strings.TrimSpace(category) == "" {
		return nil, content.InvalidArgumentf("category is required")
	}
	return s.repo.Posts.FindByCategory(category)
}

// AllProjects returns every project, newest first.
func (s *Content) AllProjects() ([]content.Project, error) {
	return s.repo.Projects.FindAll()
}

// ProjectBySlug returns the project for slug or a KindNotFound error.
func (s *Content) ProjectBySlug(slug string) (*content.Project, error) {
	if strings.TrimSpace(slug) == "" {
		return nil, content.InvalidArgumentf("project slug is required")
	}
	project, err := s.repo.Projects.FindBySlug(slug)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, content.NotFoundf("project not found: %s", slug)
	}
	return project, nil
}

// FeaturedProjects returns featured projects, applying the configured
// default when limit <= 0.
func (s *Content) FeaturedProjects(limit int) ([]content.Project, error) {
	if limit <= 0 {
		limit = s.featuredProjectsLimit
	}
	return s.repo.Projects.FindFeatured(limit)
}

// ProjectsByTechnology returns projects using tech (case-insensitive).
func (s *Content) ProjectsByTechnology(tech string) ([]content.Project, error) {
	if strings.TrimSpace(tech) == "" {
		return nil, content.InvalidArgumentf("technology is required")
	}
	return s.repo.Projects.FindByTechnology(tech)
}

// Categories returns the distinct post categories, alphabetically sorted.
func (s *Content) Categories() ([]string, error) {
	posts, err := s.AllPosts()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var categories []string
	for _, p := range posts {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	sort.Strings(categories)
	return categories, nil
}

// Technologies returns the distinct project technologies, alphabetically
// sorted.
func (s *Content) Technologies() ([]string, error) {
	projects, err := s.AllProjects()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var technologies []string
	for _, p := range projects {
		for _, t := range p.Technologies {
			if !seen[t] {
				seen[t] = true
				technologies = append(technologies, t)
			}
		}
	}
	sort.Strings(technologies)
	return technologies, nil
}

// DefaultCurrentWork is served when current-work.mdx is absent or
// unreadable.
var DefaultCurrentWork = content.CurrentWork{
	Title:       "Why `cat` in Bash is Bad for AI Agents",
	Description: "Exploring why popular bash commands cause unexpected behavior in autonomous agents...",
	Stack:       []string{"Bash", "AI Agents", "CLI"},
	PublishedAt: "",
}

// CurrentWork returns the currently-building card, falling back to
// DefaultCurrentWork when the backing file cannot be loaded.
func (s *Content) CurrentWork() content.CurrentWork {
	work, err := s.repo.CurrentWork()
	if err != nil || work == nil {
		return DefaultCurrentWork
	}
	return *work
}
