package scraper

import (
	"io"
	"strconv"
	"strings"

	"github.com/vrsandeep/novel-go/internal/htmlstream"
	"github.com/vrsandeep/novel-go/internal/models"
	"github.com/vrsandeep/novel-go/internal/util"
)

// noChapterSentinel marks the placeholder/ad cards the site mixes into
// its listings. Cards carrying it are dropped from results.
const noChapterSentinel = "No chapter"

// listingParser consumes one listing page token stream and builds the
// cards in document order. Depth counters hold the boundary state:
// cardDepth is the element depth of the open card container (0 when
// outside one), anchorDepth the depth of the card's link.
type listingParser struct {
	page    int
	builder cardBuilder

	hasPrev bool
	hasNext bool

	depth       int
	cardDepth   int
	anchorDepth int
	smallDepth  int
}

// parseSearchResult extracts a full search result from a listing page
// body. The requested page number is needed to recognize the
// pagination anchors pointing at the neighboring pages.
func parseSearchResult(r io.Reader, page int) *models.SearchResult {
	p := &listingParser{page: page}
	stream := htmlstream.New(r)
	for {
		ev, ok := stream.Next()
		if !ok {
			break
		}
		p.handle(ev)
	}

	novels := make([]models.NovelCard, 0, len(p.builder.Cards()))
	for _, card := range p.builder.Cards() {
		if card.LastChapter == noChapterSentinel {
			continue
		}
		novels = append(novels, card)
	}

	return &models.SearchResult{
		Novels:      novels,
		Page:        page,
		HasPrevPage: p.hasPrev,
		HasNextPage: p.hasNext,
	}
}

func (p *listingParser) handle(ev htmlstream.Event) {
	switch ev.Kind {
	case htmlstream.StartTag:
		p.depth++
		p.handleStart(ev)
	case htmlstream.EndTag:
		if p.depth == p.smallDepth {
			p.smallDepth = 0
		}
		if p.depth == p.anchorDepth {
			p.anchorDepth = 0
		}
		if p.depth == p.cardDepth {
			p.cardDepth = 0
		}
		if p.depth > 0 {
			p.depth--
		}
	case htmlstream.Text:
		if p.smallDepth == 0 {
			return
		}
		if text := strings.TrimSpace(ev.Text); text != "" {
			p.builder.Append(fieldLastChapter, text)
		}
	}
}

func (p *listingParser) handleStart(ev htmlstream.Event) {
	switch ev.Tag {
	case "div":
		if ev.HasClass("home-truyendecu") {
			p.cardDepth = p.depth
			p.builder.Open()
		}
	case "a":
		if p.cardDepth != 0 && p.depth == p.cardDepth+1 {
			p.anchorDepth = p.depth
			title := util.CleanTitle(ev.Attr("title"))
			id := util.SlugFromURL(ev.Attr("href"))
			if id == "" {
				id = util.Slugify(title)
			}
			p.builder.Append(fieldID, id)
			p.builder.Append(fieldTitle, title)
		}
		switch ev.Attr("data-page") {
		case strconv.Itoa(p.page - 1):
			p.hasPrev = true
		case strconv.Itoa(p.page + 1):
			p.hasNext = true
		}
	case "img":
		if p.anchorDepth != 0 {
			p.builder.AppendImageOnce(ev.Attr("src"))
		}
	case "small":
		if p.anchorDepth != 0 {
			p.smallDepth = p.depth
		}
	}
}
