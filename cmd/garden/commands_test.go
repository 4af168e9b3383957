package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func setupCommandContent(t *testing.T) string {
	t.Helper()

	tmp := t.TempDir()
	writeCommandEntry(t, tmp, "blog/react-server-components.mdx",
		"---\ntitle: React Server Components\ndescription: Streaming UI from the server\npublishedAt: \"2025-03-01\"\ncategory: ai\ntags:\n  - react\n---\nLong enough body for a read time.\n")
	writeCommandEntry(t, tmp, "blog/vue-basics.mdx",
		"---\ntitle: Vue Basics\npublishedAt: \"2025-01-15\"\n---\nAnother body.\n")
	writeCommandEntry(t, tmp, "projects/vault-tool.mdx",
		"---\ntitle: Vault Tool\nyear: \"2024\"\ntechnologies:\n  - Go\n---\nBuilt a vault tool.\n")

	t.Setenv("GARDEN_CONTENT_DIR", tmp)
	return tmp
}

func writeCommandEntry(t *testing.T, root, rel, text string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatalf("write %s: %v", rel, err)
	}
}

func captureCommandStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	os.Stdout = w
	defer func() {
		os.Stdout = old
	}()

	fn()

	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("io.Copy: %v", err)
	}
	return buf.String()
}

func executeCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetErr(io.Discard)
	var runErr error
	out := captureCommandStdout(t, func() {
		runErr = cmd.Execute()
	})
	return out, runErr
}

func TestSearchCmd_WhitespaceQuery(t *testing.T) {
	setupCommandContent(t)
	_, err := executeCommand(t, searchCmd(), "   ")
	if err == nil {
		t.Fatal("expected error for whitespace query")
	}
}

func TestSearchCmd_RankedOutput(t *testing.T) {
	setupCommandContent(t)
	out, err := executeCommand(t, searchCmd(), "react", "serv")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if !strings.Contains(out, "React Server Components") {
		t.Fatalf("expected result title in output, got: %s", out)
	}
	if strings.Contains(out, "Vue Basics") {
		t.Fatalf("Vue Basics should not match, got: %s", out)
	}
}

func TestSearchCmd_NoResults(t *testing.T) {
	setupCommandContent(t)
	out, err := executeCommand(t, searchCmd(), "zzzznothing")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if !strings.Contains(out, "No results for") {
		t.Fatalf("expected empty-result message, got: %s", out)
	}
}

func TestSearchCmd_JSONOutput(t *testing.T) {
	setupCommandContent(t)
	out, err := executeCommand(t, searchCmd(), "--json", "react")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	var results []map[string]any
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("expected valid JSON array, got: %v (%q)", err, out)
	}
	if len(results) == 0 {
		t.Fatal("expected at least one result")
	}
}

func TestListCmd_Posts(t *testing.T) {
	setupCommandContent(t)
	out, err := executeCommand(t, listCmd(), "posts")
	if err != nil {
		t.Fatalf("list posts: %v", err)
	}
	// Newest first.
	react := strings.Index(out, "React Server Components")
	vue := strings.Index(out, "Vue Basics")
	if react < 0 || vue < 0 {
		t.Fatalf("missing titles in output: %s", out)
	}
	if react > vue {
		t.Errorf("posts not newest first: %s", out)
	}
}

func TestListCmd_PostsByCategory(t *testing.T) {
	setupCommandContent(t)
	out, err := executeCommand(t, listCmd(), "posts", "--category", "ai")
	if err != nil {
		t.Fatalf("list posts: %v", err)
	}
	if !strings.Contains(out, "React Server Components") || strings.Contains(out, "Vue Basics") {
		t.Fatalf("category filter broken: %s", out)
	}
}

func TestListCmd_ProjectsJSON(t *testing.T) {
	setupCommandContent(t)
	out, err := executeCommand(t, listCmd(), "projects", "--json")
	if err != nil {
		t.Fatalf("list projects: %v", err)
	}
	var projects []map[string]any
	if err := json.Unmarshal([]byte(out), &projects); err != nil {
		t.Fatalf("expected valid JSON array, got: %v (%q)", err, out)
	}
	if len(projects) != 1 || projects[0]["slug"] != "vault-tool" {
		t.Fatalf("projects = %v", projects)
	}
}

func TestListCmd_UnknownCollection(t *testing.T) {
	setupCommandContent(t)
	if _, err := executeCommand(t, listCmd(), "drafts"); err == nil {
		t.Fatal("expected error for unknown collection")
	}
}

func TestShowCmd_Post(t *testing.T) {
	setupCommandContent(t)
	out, err := executeCommand(t, showCmd(), "vue-basics")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if !strings.Contains(out, "Vue Basics") || !strings.Contains(out, "Another body.") {
		t.Fatalf("show output: %s", out)
	}
}

func TestShowCmd_FallsThroughToProject(t *testing.T) {
	setupCommandContent(t)
	out, err := executeCommand(t, showCmd(), "vault-tool")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if !strings.Contains(out, "Vault Tool") {
		t.Fatalf("show output: %s", out)
	}
}

func TestShowCmd_NotFound(t *testing.T) {
	setupCommandContent(t)
	_, err := executeCommand(t, showCmd(), "no-such-slug")
	if err == nil {
		t.Fatal("expected error for unknown slug")
	}
	if !strings.Contains(err.Error(), "no-such-slug") {
		t.Fatalf("error should name the slug: %v", err)
	}
}

func TestDoctorCmd_CleanContent(t *testing.T) {
	setupCommandContent(t)
	out, err := executeCommand(t, doctorCmd())
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	if !strings.Contains(out, "0 problem(s)") {
		t.Fatalf("doctor output: %s", out)
	}
}

func TestDoctorCmd_ReportsBadEntry(t *testing.T) {
	tmp := setupCommandContent(t)
	writeCommandEntry(t, tmp, "blog/broken.mdx", "---\ntitle: [unclosed\n---\nbody\n")

	out, err := executeCommand(t, doctorCmd())
	if err == nil {
		t.Fatal("expected error when an entry fails validation")
	}
	if !strings.Contains(out, "[FAIL]") {
		t.Fatalf("doctor output should flag the entry: %s", out)
	}
}

func TestVersionCmd(t *testing.T) {
	out, err := executeCommand(t, versionCmd())
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out, "garden") {
		t.Fatalf("version output: %s", out)
	}
}
