package repository

import "github.com/codestz/codegarden/internal/content"

// PostFinder is the query surface of the post collection. Absence is
// structural: FindBySlug returns (nil, nil) for an unknown slug, errors
// are reserved for storage-level faults.
type PostFinder interface {
	FindAll() ([]content.Post, error)
	FindBySlug(slug string) (*content.Post, error)
	FindByCategory(category string) ([]content.Post, error)
	FindFeatured(limit int) ([]content.Post, error)
}

// ProjectFinder is the query surface of the project collection.
type ProjectFinder interface {
	FindAll() ([]content.Project, error)
	FindBySlug(slug string) (*content.Project, error)
	FindFeatured(limit int) ([]content.Project, error)
	FindByTechnology(tech string) ([]content.Project, error)
}

// Content is the composition root over both collections. Callers depend
// on the finder interfaces, so the filesystem backing can be swapped
// without touching them.
type Content struct {
	Posts    PostFinder
	Projects ProjectFinder
	fs       *Adapter
}

// New builds the filesystem-backed content repository rooted at
// contentDir. Constructed once at startup and reused; the repositories
// hold no mutable state, so concurrent readers never conflict.
func New(contentDir, defaultAuthor string, readingSpeed int) *Content {
	fs := NewAdapter(contentDir)
	return &Content{
		Posts:    NewPostRepository(fs, defaultAuthor, readingSpeed),
		Projects: NewProjectRepository(fs),
		fs:       fs,
	}
}

// CurrentWork reads current-work.mdx at the content root. It returns
// (nil, nil) when the file is absent so callers can fall back to a
// default card.
func (c *Content) CurrentWork() (*content.CurrentWork, error) {
	if c.fs == nil {
		return nil, nil
	}
	var meta struct {
		Title       string   `yaml:"title"`
		Description string   `yaml:"description"`
		Stack       []string `yaml:"stack"`
		PublishedAt string   `yaml:"publishedAt"`
	}
	_, err := c.fs.ReadEntry("current-work"+Ext, &meta)
	if err != nil {
		if content.KindOf(err) == content.KindIO {
			return nil, nil
		}
		return nil, err
	}

	work := content.CurrentWork{
		Title:       meta.Title,
		Description: meta.Description,
		Stack:       meta.Stack,
		PublishedAt: meta.PublishedAt,
	}
	if work.Title == "" {
		work.Title = "Untitled"
	}
	if work.Stack == nil {
		work.Stack = []string{}
	}
	return &work, nil
}
