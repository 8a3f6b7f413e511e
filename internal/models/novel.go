// This file defines the core data structures (models) for our application.
// These structs mirror the records extracted from the remote novel site,
// so the JSON field names follow the upstream API shape (camelCase).

package models

// NovelCard is a single entry on a listing page.
type NovelCard struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Image       string `json:"image"`
	LastChapter string `json:"lastChapter"`
}

// SearchResult is one page of listing results. HasPrevPage and
// HasNextPage are derived from the presence of pagination anchors for
// the neighboring page numbers, not from any total count.
type SearchResult struct {
	Novels      []NovelCard `json:"novels"`
	Page        int         `json:"page"`
	HasPrevPage bool        `json:"hasPrevPage"`
	HasNextPage bool        `json:"hasNextPage"`
}

// NovelAuthor identifies an author by the slug of their listing URL.
type NovelAuthor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NovelInfo is the metadata scraped from a novel's detail page.
// NovelKey is the opaque internal id the site's AJAX chapter endpoint
// expects; it has no meaning outside that endpoint.
type NovelInfo struct {
	ID       string        `json:"id"`
	NovelKey string        `json:"novelKey"`
	Title    string        `json:"title"`
	Image    string        `json:"image"`
	Authors  []NovelAuthor `json:"authors"`
	Genre    []Genre       `json:"genre"`
	Status   string        `json:"status"`
}

// NovelChapter is one entry in a novel's chapter list.
type NovelChapter struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// NovelChapterContent is the text of a single chapter. Content holds
// one entry per paragraph, empty paragraphs excluded. Prev and Next
// are chapter slugs, empty at the ends of the list.
type NovelChapterContent struct {
	ID      string   `json:"id"`
	Prev    string   `json:"prev"`
	Next    string   `json:"next"`
	Content []string `json:"content"`
}

// PopularNovel is an entry from the sidebar of most-read novels.
type PopularNovel struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}
