package util

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	htmlSlug     = regexp.MustCompile(`/([^/]+)\.html`)
	nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)
)

// CleanTitle normalizes a scraped novel title: the site appends a
// literal "Novel" marketing token to most titles, so every occurrence
// is stripped before whitespace is collapsed and trimmed.
func CleanTitle(title string) string {
	title = strings.ReplaceAll(title, "Novel", "")
	return strings.Join(strings.Fields(title), " ")
}

// Slugify derives a URL-safe identifier from a title: lowercased, runs
// of non-alphanumeric characters become single hyphens.
func Slugify(title string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}

// SlugFromURL extracts the trailing ".html" path segment from a page
// URL, e.g. "/mushoku-tensei-wn.html" yields "mushoku-tensei-wn".
// Returns "" when the URL does not match.
func SlugFromURL(rawURL string) string {
	m := htmlSlug.FindStringSubmatch(rawURL)
	if m == nil {
		return ""
	}
	return m[1]
}

// LastPathSegment returns the final path segment of a URL, used for
// author and genre links whose slugs are plain path components.
func LastPathSegment(rawURL string) string {
	path := rawURL
	if u, err := url.Parse(rawURL); err == nil {
		path = u.Path
	}
	path = strings.TrimSuffix(path, "/")
	if i := strings.LastIndex(path, "/"); i >= 0 {
		path = path[i+1:]
	}
	return path
}
