package content

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

// DefaultReadingSpeed is the assumed reading speed in words per minute.
const DefaultReadingSpeed = 200

// ReadingTime derives a human-readable reading time ("2 min read") from a
// body's whitespace-separated word count, rounding minutes up. A
// non-positive wordsPerMinute falls back to DefaultReadingSpeed.
func ReadingTime(body string, wordsPerMinute int) string {
	if wordsPerMinute <= 0 {
		wordsPerMinute = DefaultReadingSpeed
	}
	trimmed := strings.TrimSpace(body)
	if trimmed == "" {
		return "0 min read"
	}
	words := len(strings.Fields(trimmed))
	minutes := int(math.Ceil(float64(words) / float64(wordsPerMinute)))
	return fmt.Sprintf("%d min read", minutes)
}

var (
	slugStrip    = regexp.MustCompile(`[^\w\s-]`)
	slugCollapse = regexp.MustCompile(`[\s_-]+`)
	slugTrim     = regexp.MustCompile(`^-+|-+$`)
)

// Slugify converts text into a URL-safe slug.
func Slugify(text string) string {
	if text == "" {
		return ""
	}
	s := strings.ToLower(strings.TrimSpace(text))
	s = slugStrip.ReplaceAllString(s, "")
	s = slugCollapse.ReplaceAllString(s, "-")
	return slugTrim.ReplaceAllString(s, "")
}

// Truncate shortens text to at most length characters, appending "..."
// when anything was cut.
func Truncate(text string, length int) string {
	if text == "" || len(text) <= length {
		return text
	}
	return strings.TrimSpace(text[:length]) + "..."
}

// Capitalize uppercases the first character and lowercases the rest.
func Capitalize(text string) string {
	if text == "" {
		return ""
	}
	return strings.ToUpper(text[:1]) + strings.ToLower(text[1:])
}
