package repository

import (
	"errors"
	"io/fs"
	"sort"
	"strings"
	"time"

	"github.com/codestz/codegarden/internal/content"
)

// PostsDir is the content subdirectory holding blog posts.
const PostsDir = "blog"

// postMeta mirrors the recognized frontmatter keys of a post entry.
// Unrecognized keys are ignored by the decoder.
type postMeta struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	PublishedAt string   `yaml:"publishedAt"`
	UpdatedAt   string   `yaml:"updatedAt"`
	Category    string   `yaml:"category"`
	Tags        []string `yaml:"tags"`
	Author      string   `yaml:"author"`
	Featured    bool     `yaml:"featured"`
	Thumbnail   string   `yaml:"thumbnail"`
	Type        string   `yaml:"type"`
}

// PostRepository reads posts from the filesystem. Every query re-parses
// from the backing store; entities are disposable projections.
type PostRepository struct {
	fs           *Adapter
	author       string
	readingSpeed int
}

// NewPostRepository returns a PostRepository using fs for storage.
// defaultAuthor fills posts whose frontmatter names none.
func NewPostRepository(fs *Adapter, defaultAuthor string, readingSpeed int) *PostRepository {
	return &PostRepository{fs: fs, author: defaultAuthor, readingSpeed: readingSpeed}
}

// FindAll returns every post, newest publishedAt first. A single
// unreadable or malformed entry is skipped rather than failing the whole
// listing; a failure to list the directory itself propagates. Entries
// with equal dates keep directory enumeration order.
func (r *PostRepository) FindAll() ([]content.Post, error) {
	files, err := r.fs.ListEntries(PostsDir)
	if err != nil {
		return nil, err
	}

	posts := make([]content.Post, 0, len(files))
	for _, f := range files {
		post, err := r.FindBySlug(strings.TrimSuffix(f, Ext))
		if err != nil || post == nil {
			continue
		}
		posts = append(posts, *post)
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return parseDate(posts[i].PublishedAt).After(parseDate(posts[j].PublishedAt))
	})
	return posts, nil
}

// FindBySlug returns the post for slug, or (nil, nil) when no entry
// exists. Read and parse failures on an existing entry are returned.
func (r *PostRepository) FindBySlug(slug string) (*content.Post, error) {
	var meta postMeta
	body, err := r.fs.ReadEntry(PostsDir+"/"+slug+Ext, &meta)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	post := hydratePost(slug, meta, body, r.author, r.readingSpeed)
	return &post, nil
}

// FindByCategory returns posts whose category matches exactly
// (case-sensitive), newest first.
func (r *PostRepository) FindByCategory(category string) ([]content.Post, error) {
	all, err := r.FindAll()
	if err != nil {
		return nil, err
	}
	filtered := make([]content.Post, 0, len(all))
	for _, p := range all {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// FindFeatured returns featured posts, newest first, truncated to limit
// when limit is positive.
func (r *PostRepository) FindFeatured(limit int) ([]content.Post, error) {
	all, err := r.FindAll()
	if err != nil {
		return nil, err
	}
	featured := make([]content.Post, 0, len(all))
	for _, p := range all {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	if limit > 0 && len(featured) > limit {
		featured = featured[:limit]
	}
	return featured, nil
}

// hydratePost maps raw frontmatter onto a fully-defaulted Post. ReadTime
// is derived from the body; a stored value would be ignored because the
// meta struct never decodes one.
func hydratePost(slug string, meta postMeta, body, defaultAuthor string, readingSpeed int) content.Post {
	post := content.Post{
		Slug:        slug,
		Title:       meta.Title,
		Description: meta.Description,
		PublishedAt: meta.PublishedAt,
		UpdatedAt:   meta.UpdatedAt,
		Category:    meta.Category,
		Tags:        meta.Tags,
		Author:      meta.Author,
		Featured:    meta.Featured,
		Thumbnail:   meta.Thumbnail,
		ReadTime:    content.ReadingTime(body, readingSpeed),
		Content:     body,
		Type:        content.PostType(meta.Type),
	}
	if post.Title == "" {
		post.Title = "Untitled"
	}
	if post.PublishedAt == "" {
		post.PublishedAt = time.Now().UTC().Format(time.RFC3339)
	}
	if post.Category == "" {
		post.Category = "general"
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}
	if post.Author == "" {
		post.Author = defaultAuthor
	}
	if post.Type != content.TypeExperience {
		post.Type = content.TypeExperiment
	}
	return post
}

// dateLayouts are tried in order when sorting by publishedAt.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseDate parses a frontmatter date. Unparseable values yield the zero
// time, which sorts after every real date in newest-first order.
func parseDate(s string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
