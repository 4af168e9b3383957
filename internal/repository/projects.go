package repository

import (
	"errors"
	"io/fs"
	"sort"
	"strings"
	"time"

	"github.com/codestz/codegarden/internal/content"
)

// ProjectsDir is the content subdirectory holding project case studies.
const ProjectsDir = "projects"

type projectMeta struct {
	Title        string   `yaml:"title"`
	Description  string   `yaml:"description"`
	Company      string   `yaml:"company"`
	Role         string   `yaml:"role"`
	Year         string   `yaml:"year"`
	PublishedAt  string   `yaml:"publishedAt"`
	Current      bool     `yaml:"current"`
	Thumbnail    string   `yaml:"thumbnail"`
	Technologies []string `yaml:"technologies"`
	Featured     bool     `yaml:"featured"`
	IsPublic     bool     `yaml:"isPublic"`
	GithubURL    string   `yaml:"githubUrl"`
	LiveURL      string   `yaml:"liveUrl"`
}

// ProjectRepository reads projects from the filesystem.
type ProjectRepository struct {
	fs *Adapter
}

// NewProjectRepository returns a ProjectRepository using fs for storage.
func NewProjectRepository(fs *Adapter) *ProjectRepository {
	return &ProjectRepository{fs: fs}
}

// FindAll returns every project, newest publishedAt first, skipping
// individual entries that fail to read or parse. Equal dates keep
// directory enumeration order.
func (r *ProjectRepository) FindAll() ([]content.Project, error) {
	files, err := r.fs.ListEntries(ProjectsDir)
	if err != nil {
		return nil, err
	}

	projects := make([]content.Project, 0, len(files))
	for _, f := range files {
		project, err := r.FindBySlug(strings.TrimSuffix(f, Ext))
		if err != nil || project == nil {
			continue
		}
		projects = append(projects, *project)
	}

	sort.SliceStable(projects, func(i, j int) bool {
		return parseDate(projects[i].PublishedAt).After(parseDate(projects[j].PublishedAt))
	})
	return projects, nil
}

// FindBySlug returns the project for slug, or (nil, nil) when no entry
// exists.
func (r *ProjectRepository) FindBySlug(slug string) (*content.Project, error) {
	var meta projectMeta
	body, err := r.fs.ReadEntry(ProjectsDir+"/"+slug+Ext, &meta)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	project := hydrateProject(slug, meta, body)
	return &project, nil
}

// FindFeatured returns featured projects, newest first, truncated to
// limit when limit is positive.
func (r *ProjectRepository) FindFeatured(limit int) ([]content.Project, error) {
	all, err := r.FindAll()
	if err != nil {
		return nil, err
	}
	featured := make([]content.Project, 0, len(all))
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

// FindByTechnology returns projects using tech, matched case-insensitively
// against each declared technology.
func (r *ProjectRepository) FindByTechnology(tech string) ([]content.Project, error) {
	all, err := r.FindAll()
	if err != nil {
		return nil, err
	}
	filtered := make([]content.Project, 0, len(all))
	for _, p := range all {
		for _, t := range p.Technologies {
			if strings.EqualFold(t, tech) {
				filtered = append(filtered, p)
				break
			}
		}
	}
	return filtered, nil
}

func hydrateProject(slug string, meta projectMeta, body string) content.Project {
	project := content.Project{
		Slug:         slug,
		Title:        meta.Title,
		Description:  meta.Description,
		Company:      meta.Company,
		Role:         meta.Role,
		Year:         meta.Year,
		PublishedAt:  meta.PublishedAt,
		Current:      meta.Current,
		Thumbnail:    meta.Thumbnail,
		Technologies: meta.Technologies,
		Featured:     meta.Featured,
		IsPublic:     meta.IsPublic,
		GithubURL:    meta.GithubURL,
		LiveURL:      meta.LiveURL,
		Content:      body,
	}
	if project.Title == "" {
		project.Title = "Untitled"
	}
	if project.PublishedAt == "" {
		project.PublishedAt = time.Now().UTC().Format(time.RFC3339)
	}
	if project.Technologies == nil {
		project.Technologies = []string{}
	}
	return project
}
