// Package scraper converts remote pages from the novel site into the
// typed records served by the API. Every call performs a fresh fetch
// and owns its parse state for the duration of that one request;
// nothing is cached or shared.
package scraper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/vrsandeep/novel-go/internal/config"
	"github.com/vrsandeep/novel-go/internal/models"
)

// ErrUpstream marks a non-success status from the source site. The API
// layer translates it into a gateway error.
var ErrUpstream = errors.New("unexpected status from source")

// Scraper fetches and extracts pages from a single remote origin.
type Scraper struct {
	client          *http.Client
	baseURL         string
	userAgent       string
	concurrency     int
	maxChapterPages int
}

// New creates a Scraper from the application configuration.
func New(cfg *config.Config) *Scraper {
	return &Scraper{
		client:          &http.Client{Timeout: time.Duration(cfg.Source.TimeoutSeconds) * time.Second},
		baseURL:         cfg.Source.BaseURL,
		userAgent:       cfg.Source.UserAgent,
		concurrency:     cfg.Source.Concurrency,
		maxChapterPages: cfg.Source.MaxChapterPages,
	}
}

// SearchByTitle lists the novels matching a title query.
func (s *Scraper) SearchByTitle(ctx context.Context, title string, page int) (*models.SearchResult, error) {
	u := fmt.Sprintf("%s/page/%d?s=%s", s.baseURL, page, url.QueryEscape(title))
	return s.fetchListing(ctx, u, page)
}

// SearchByLatest lists the most recently updated novels.
func (s *Scraper) SearchByLatest(ctx context.Context, page int) (*models.SearchResult, error) {
	return s.fetchListing(ctx, fmt.Sprintf("%s/latest/page/%d", s.baseURL, page), page)
}

// SearchByCompleted lists finished novels.
func (s *Scraper) SearchByCompleted(ctx context.Context, page int) (*models.SearchResult, error) {
	return s.fetchListing(ctx, fmt.Sprintf("%s/completed/page/%d", s.baseURL, page), page)
}

// SearchByGenre lists novels for one tag of the genre vocabulary.
// Validation of the tag is the caller's job.
func (s *Scraper) SearchByGenre(ctx context.Context, genre models.Genre, page int) (*models.SearchResult, error) {
	return s.fetchListing(ctx, fmt.Sprintf("%s/%s/page/%d", s.baseURL, genre, page), page)
}

// SearchByAuthor lists an author's novels. The site does not paginate
// author listings, so the result is always page 1.
func (s *Scraper) SearchByAuthor(ctx context.Context, name string) (*models.SearchResult, error) {
	return s.fetchListing(ctx, s.baseURL+"/novel-author/"+url.PathEscape(name), 1)
}

func (s *Scraper) fetchListing(ctx context.Context, pageURL string, page int) (*models.SearchResult, error) {
	body, err := s.get(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()
	return parseSearchResult(body, page), nil
}

// NovelInfo fetches a novel's detail page and extracts its metadata.
func (s *Scraper) NovelInfo(ctx context.Context, slug string) (*models.NovelInfo, error) {
	body, err := s.get(ctx, fmt.Sprintf("%s/%s.html", s.baseURL, slug))
	if err != nil {
		return nil, err
	}
	defer body.Close()

	info := parseNovelInfo(body)
	info.ID = slug
	return info, nil
}

// ChapterContent fetches a single chapter page and extracts its
// paragraphs and prev/next navigation.
func (s *Scraper) ChapterContent(ctx context.Context, novelID, chapterID string) (*models.NovelChapterContent, error) {
	body, err := s.get(ctx, fmt.Sprintf("%s/%s/%s.html", s.baseURL, novelID, chapterID))
	if err != nil {
		return nil, err
	}
	defer body.Close()

	content := parseChapterContent(body)
	content.ID = chapterID
	return content, nil
}

// get performs a GET against the source and hands back the body. A
// non-success status aborts immediately; there is no retry.
func (s *Scraper) get(ctx context.Context, pageURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("fetching %s: %w: status %d", pageURL, ErrUpstream, resp.StatusCode)
	}
	return resp.Body, nil
}
