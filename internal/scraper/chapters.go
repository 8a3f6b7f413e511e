package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/vrsandeep/novel-go/internal/htmlstream"
	"github.com/vrsandeep/novel-go/internal/models"
	"github.com/vrsandeep/novel-go/internal/util"
)

// chapterEnvelope is the JSON body of the site's pagination AJAX
// endpoint. Both fields are HTML fragments; pointers distinguish a
// missing field from an empty fragment.
type chapterEnvelope struct {
	ListChap   *string `json:"list_chap"`
	Pagination *string `json:"pagination"`
}

// ChapterList assembles the complete chapter list for a novel. The
// site paginates its AJAX chapter endpoint, so the first page is
// fetched to discover the page count and the rest are fetched
// concurrently. Results are keyed by page index, which keeps the
// output in page order no matter in which order the fetches complete.
// Any single page failing aborts the whole call: chapter numbering
// must be gap-free for downstream consumers, so a partial list is
// worse than none.
func (s *Scraper) ChapterList(ctx context.Context, novelKey string) ([]models.NovelChapter, error) {
	first, err := s.fetchChapterPage(ctx, novelKey, 1)
	if err != nil {
		return nil, err
	}

	lastPage := parseLastPage(strings.NewReader(*first.Pagination))
	if lastPage < 1 {
		lastPage = 1
	}
	if lastPage > s.maxChapterPages {
		return nil, fmt.Errorf("chapter pagination advertises %d pages, above the limit of %d", lastPage, s.maxChapterPages)
	}

	pages := make([][]models.NovelChapter, lastPage)
	pages[0] = parseChapterFragment(strings.NewReader(*first.ListChap))

	limit := s.concurrency
	if limit < 1 {
		limit = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for page := 2; page <= lastPage; page++ {
		page := page
		g.Go(func() error {
			env, err := s.fetchChapterPage(gctx, novelKey, page)
			if err != nil {
				return err
			}
			pages[page-1] = parseChapterFragment(strings.NewReader(*env.ListChap))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var chapters []models.NovelChapter
	for _, page := range pages {
		chapters = append(chapters, page...)
	}
	return chapters, nil
}

// fetchChapterPage POSTs one page request to the AJAX endpoint and
// decodes its envelope. An envelope missing either fragment is a
// distinct upstream shape error.
func (s *Scraper) fetchChapterPage(ctx context.Context, novelKey string, page int) (*chapterEnvelope, error) {
	form := url.Values{}
	form.Set("action", "tw_ajax")
	form.Set("type", "pagination")
	form.Set("id", novelKey)
	form.Set("page", strconv.Itoa(page))

	endpoint := s.baseURL + "/wp-admin/admin-ajax.php"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("chapter page %d: %w: status %d", page, ErrUpstream, resp.StatusCode)
	}

	var env chapterEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("chapter page %d: decoding envelope: %w", page, err)
	}
	if env.ListChap == nil {
		return nil, fmt.Errorf("chapter page %d: envelope missing list_chap", page)
	}
	if env.Pagination == nil {
		return nil, fmt.Errorf("chapter page %d: envelope missing pagination", page)
	}
	return &env, nil
}

// parseLastPage scans a pagination fragment and returns the highest
// page number any anchor advertises. The anchors can repeat and need
// not be contiguous, so the maximum is what counts, not how many there
// are. Returns 0 when no page anchor is present.
func parseLastPage(r io.Reader) int {
	last := 0
	stream := htmlstream.New(r)
	for {
		ev, ok := stream.Next()
		if !ok {
			break
		}
		if ev.Kind != htmlstream.StartTag || ev.Tag != "a" {
			continue
		}
		page, err := strconv.Atoi(ev.Attr("data-page"))
		if err == nil && page > last {
			last = page
		}
	}
	return last
}

// parseChapterFragment extracts the ordered chapter entries from one
// list_chap fragment. Every anchor with an ".html" target is one
// chapter; the title accumulates across the anchor's text events.
func parseChapterFragment(r io.Reader) []models.NovelChapter {
	var b chapterBuilder
	depth, anchorDepth := 0, 0

	stream := htmlstream.New(r)
	for {
		ev, ok := stream.Next()
		if !ok {
			break
		}
		switch ev.Kind {
		case htmlstream.StartTag:
			depth++
			if ev.Tag != "a" {
				continue
			}
			slug := util.SlugFromURL(ev.Attr("href"))
			if slug == "" {
				continue
			}
			anchorDepth = depth
			b.Open()
			b.SetID(slug)
		case htmlstream.EndTag:
			if depth == anchorDepth {
				anchorDepth = 0
				collapseLastChapterTitle(&b)
			}
			if depth > 0 {
				depth--
			}
		case htmlstream.Text:
			if anchorDepth != 0 {
				b.AppendTitle(ev.Text)
			}
		}
	}
	if anchorDepth != 0 {
		collapseLastChapterTitle(&b)
	}
	return b.Chapters()
}

func collapseLastChapterTitle(b *chapterBuilder) {
	chapters := b.Chapters()
	if len(chapters) == 0 {
		return
	}
	c := &chapters[len(chapters)-1]
	c.Title = strings.Join(strings.Fields(c.Title), " ")
}
