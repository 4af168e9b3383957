// Package watcher monitors the content directory during authoring and
// re-validates entries as they change.
package watcher

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/codestz/codegarden/internal/repository"
)

// debounceDelay batches rapid editor writes into one validation pass.
const debounceDelay = 2 * time.Second

// Watch blocks, watching the repository's content root and reporting a
// validation line for every changed .mdx entry. Editors emit bursts of
// events per save, so changes are debounced.
func Watch(repo *repository.Content, contentDir string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	dirs := []string{
		contentDir,
		filepath.Join(contentDir, repository.PostsDir),
		filepath.Join(contentDir, repository.ProjectsDir),
	}
	watched := 0
	for _, d := range dirs {
		if err := w.Add(d); err != nil {
			fmt.Fprintf(os.Stderr, "  [WARN] Could not watch %s: %v\n", d, err)
			continue
		}
		watched++
	}
	if watched == 0 {
		return fmt.Errorf("no watchable directories under %s", contentDir)
	}

	fmt.Fprintf(os.Stderr, "Watching %d directories in %s\n", watched, contentDir)
	fmt.Fprintf(os.Stderr, "Press Ctrl+C to stop.\n\n")

	var (
		mu      sync.Mutex
		pending = make(map[string]bool)
		timer   *time.Timer
	)

	flush := func() {
		mu.Lock()
		paths := make([]string, 0, len(pending))
		for p := range pending {
			paths = append(paths, p)
		}
		pending = make(map[string]bool)
		mu.Unlock()

		for _, p := range paths {
			fmt.Fprintln(os.Stderr, "  "+CheckEntry(repo, contentDir, p))
		}
	}

	for {
		select {
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !strings.HasSuffix(event.Name, repository.Ext) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) {
				continue
			}

			mu.Lock()
			pending[event.Name] = true
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounceDelay, flush)
			mu.Unlock()

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "  [WARN] watch error: %v\n", err)
		}
	}
}

// CheckEntry re-reads one changed file through the repository and returns
// a one-line report. Removed entries report as removed, not as errors.
func CheckEntry(repo *repository.Content, contentDir, path string) string {
	rel, err := filepath.Rel(contentDir, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)
	slug := strings.TrimSuffix(filepath.Base(rel), repository.Ext)

	switch {
	case strings.HasPrefix(rel, repository.PostsDir+"/"):
		post, err := repo.Posts.FindBySlug(slug)
		if err != nil {
			return fmt.Sprintf("[FAIL] %s: %v", rel, err)
		}
		if post == nil {
			return fmt.Sprintf("[GONE] %s", rel)
		}
		return fmt.Sprintf("[OK]   %s (%s, %s)", rel, post.Category, post.ReadTime)
	case strings.HasPrefix(rel, repository.ProjectsDir+"/"):
		project, err := repo.Projects.FindBySlug(slug)
		if err != nil {
			return fmt.Sprintf("[FAIL] %s: %v", rel, err)
		}
		if project == nil {
			return fmt.Sprintf("[GONE] %s", rel)
		}
		return fmt.Sprintf("[OK]   %s (%d technologies)", rel, len(project.Technologies))
	case slug == "current-work":
		if _, err := repo.CurrentWork(); err != nil {
			return fmt.Sprintf("[FAIL] %s: %v", rel, err)
		}
		return fmt.Sprintf("[OK]   %s", rel)
	default:
		return fmt.Sprintf("[SKIP] %s", rel)
	}
}
