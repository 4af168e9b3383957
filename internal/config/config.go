// Package config loads site configuration for the garden binary.
// Precedence: env vars > .env file > garden.toml > built-in defaults.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// DefaultFile is the config filename looked up in the working directory.
const DefaultFile = "garden.toml"

// Config holds all tunables for the content service.
type Config struct {
	// ContentDir is the root holding blog/, projects/ and current-work.mdx.
	ContentDir string `toml:"content_dir"`
	// Author is applied to posts whose frontmatter omits one.
	Author string `toml:"author"`
	// ReadingSpeed is the words-per-minute rate for read-time derivation.
	ReadingSpeed int `toml:"reading_speed"`
	// FeaturedPostsLimit caps featured-post queries when the caller
	// does not pass a limit.
	FeaturedPostsLimit int `toml:"featured_posts_limit"`
	// FeaturedProjectsLimit is the project counterpart.
	FeaturedProjectsLimit int `toml:"featured_projects_limit"`
	// Addr is the HTTP listen address for garden serve.
	Addr string `toml:"addr"`
	// PostURLPrefix and ProjectURLPrefix build the url field of search
	// documents ("/experiments/<slug>", "/experience/<slug>").
	PostURLPrefix    string `toml:"post_url_prefix"`
	ProjectURLPrefix string `toml:"project_url_prefix"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ContentDir:            "content",
		Author:                "Esteban Estrada",
		ReadingSpeed:          200,
		FeaturedPostsLimit:    3,
		FeaturedProjectsLimit: 3,
		Addr:                  "127.0.0.1:4321",
		PostURLPrefix:         "/experiments",
		ProjectURLPrefix:      "/experience",
	}
}

// Load reads path (missing file is fine), merges .env and environment
// overrides on top of defaults, and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultFile
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil && !os.IsNotExist(err) {
		return cfg, fmt.Errorf("decode %s: %w", path, err)
	}

	// .env never overrides variables already set in the environment.
	_ = godotenv.Load()
	applyEnv(&cfg)

	if cfg.ReadingSpeed <= 0 {
		return cfg, fmt.Errorf("reading_speed must be positive, got %d", cfg.ReadingSpeed)
	}
	if cfg.FeaturedPostsLimit <= 0 || cfg.FeaturedProjectsLimit <= 0 {
		return cfg, fmt.Errorf("featured limits must be positive")
	}
	if cfg.ContentDir == "" {
		return cfg, fmt.Errorf("content_dir must not be empty")
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("GARDEN_CONTENT_DIR"); v != "" {
		cfg.ContentDir = v
	}
	if v := os.Getenv("GARDEN_AUTHOR"); v != "" {
		cfg.Author = v
	}
	if v := os.Getenv("GARDEN_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("GARDEN_READING_SPEED"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.ReadingSpeed = n
		}
	}
	if v := os.Getenv("GARDEN_FEATURED_POSTS_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.FeaturedPostsLimit = n
		}
	}
	if v := os.Getenv("GARDEN_FEATURED_PROJECTS_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.FeaturedProjectsLimit = n
		}
	}
}

// PostURL returns the public URL for a post slug.
func (c Config) PostURL(slug string) string {
	return c.PostURLPrefix + "/" + slug
}

// ProjectURL returns the public URL for a project slug.
func (c Config) ProjectURL(slug string) string {
	return c.ProjectURLPrefix + "/" + slug
}
