// Package search builds a denormalized corpus from posts and projects and
// answers fuzzy, multi-field queries over it.
package search

import "github.com/codestz/codegarden/internal/content"

// Document is the read-only projection the search subsystem works on.
// Built fresh on each aggregation; never persisted.
type Document struct {
	Type        string   `json:"type"` // "post" or "project"
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	URL         string   `json:"url"`
}

// Lister is the slice of the content service the corpus builder needs.
type Lister interface {
	AllPosts() ([]content.Post, error)
	AllProjects() ([]content.Project, error)
}

// BuildCorpus merges all posts and projects into one searchable list,
// posts then projects, each newest-first as returned by the service.
// Aggregation is best-effort: a failed sub-fetch contributes an empty
// sub-list instead of failing the whole corpus. postPrefix and
// projectPrefix build each document's URL.
func BuildCorpus(svc Lister, postPrefix, projectPrefix string) []Document {
	docs := []Document{}

	if posts, err := svc.AllPosts(); err == nil {
		for _, p := range posts {
			docs = append(docs, Document{
				Type:        "post",
				Slug:        p.Slug,
				Title:       p.Title,
				Description: p.Description,
				Category:    p.Category,
				Tags:        p.Tags,
				URL:         postPrefix + "/" + p.Slug,
			})
		}
	}

	if projects, err := svc.AllProjects(); err == nil {
		for _, p := range projects {
			docs = append(docs, Document{
				Type:        "project",
				Slug:        p.Slug,
				Title:       p.Title,
				Description: p.Description,
				Category:    "project",
				Tags:        []string{},
				URL:         projectPrefix + "/" + p.Slug,
			})
		}
	}

	return docs
}
