// Package repository provides file-backed access to portfolio content:
// a filesystem adapter over .mdx entries and typed post/project
// repositories hydrated from frontmatter.
package repository

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/codestz/codegarden/internal/content"
)

// Ext is the recognized content file extension.
const Ext = ".mdx"

// Adapter performs raw filesystem reads under a content root. It carries
// no business rules: listing and parsing only.
type Adapter struct {
	root string
}

// NewAdapter returns an Adapter rooted at dir.
func NewAdapter(dir string) *Adapter {
	return &Adapter{root: dir}
}

// Root returns the content root directory.
func (a *Adapter) Root() string { return a.root }

// ListEntries returns the .mdx filenames directly under root/dir. A
// missing directory means "no content yet" and yields an empty list, not
// an error.
func (a *Adapter) ListEntries(dir string) ([]string, error) {
	full := filepath.Join(a.root, dir)
	entries, err := os.ReadDir(full)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, content.IOf(err, "list %s", full)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), Ext) {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// ReadEntry reads root/relPath, decodes its frontmatter block into meta
// (any yaml-taggable struct or map), and returns the raw body verbatim.
// Unreadable files surface as KindIO, malformed frontmatter as KindParse.
func (a *Adapter) ReadEntry(relPath string, meta any) (string, error) {
	full := filepath.Join(a.root, relPath)
	raw, err := os.ReadFile(full)
	if err != nil {
		return "", content.IOf(err, "read %s", relPath)
	}

	body, err := frontmatter.Parse(strings.NewReader(string(raw)), meta)
	if err != nil {
		return "", content.Parsef(err, "parse frontmatter of %s", relPath)
	}
	return string(body), nil
}
