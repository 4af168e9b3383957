// Package content defines the typed entities served by the content layer
// and the error taxonomy shared across it.
package content

// PostType classifies a post as professional experience or a personal
// experiment. Unknown values in source files fall back to TypeExperiment.
type PostType string

const (
	TypeExperience PostType = "experience"
	TypeExperiment PostType = "experiment"
)

// Post is one unit of long-form written content, hydrated from a single
// .mdx file. Slug equals the source filename minus extension and is unique
// within the post collection. ReadTime is always recomputed from Content,
// never read from frontmatter.
type Post struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	PublishedAt string   `json:"publishedAt"`
	UpdatedAt   string   `json:"updatedAt,omitempty"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Author      string   `json:"author"`
	Featured    bool     `json:"featured"`
	Thumbnail   string   `json:"thumbnail,omitempty"`
	ReadTime    string   `json:"readTime"`
	Content     string   `json:"content"`
	Type        PostType `json:"type"`
}

// Project is one unit of professional portfolio experience. GithubURL is
// only meaningful when IsPublic is true.
type Project struct {
	Slug         string   `json:"slug"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Company      string   `json:"company"`
	Role         string   `json:"role"`
	Year         string   `json:"year"`
	PublishedAt  string   `json:"publishedAt"`
	Current      bool     `json:"current"`
	Thumbnail    string   `json:"thumbnail,omitempty"`
	Technologies []string `json:"technologies"`
	Featured     bool     `json:"featured"`
	IsPublic     bool     `json:"isPublic"`
	GithubURL    string   `json:"githubUrl,omitempty"`
	LiveURL      string   `json:"liveUrl,omitempty"`
	Content      string   `json:"content"`
}

// CurrentWork is the "currently building" card sourced from
// current-work.mdx at the content root.
type CurrentWork struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Stack       []string `json:"stack"`
	PublishedAt string   `json:"publishedAt"`
}
