package scraper

import (
	"io"
	"strings"

	"github.com/vrsandeep/novel-go/internal/htmlstream"
	"github.com/vrsandeep/novel-go/internal/models"
	"github.com/vrsandeep/novel-go/internal/util"
)

// authorPathMarker tags the anchors on a detail page that point at an
// author's listing.
const authorPathMarker = "/novel-author/"

// detailParser extracts novel metadata from a detail page. The page
// holds a single record, so no container boundary tracking is needed,
// only scope depths for the few text-bearing regions.
type detailParser struct {
	info  models.NovelInfo
	title strings.Builder

	depth        int
	headingDepth int
	bookDepth    int
	infoDepth    int
	authorDepth  int
}

// parseNovelInfo extracts the metadata of one novel. The caller fills
// in the record's ID, which comes from the request rather than the
// page.
func parseNovelInfo(r io.Reader) *models.NovelInfo {
	p := &detailParser{}
	stream := htmlstream.New(r)
	for {
		ev, ok := stream.Next()
		if !ok {
			break
		}
		p.handle(ev)
	}
	p.info.Title = util.CleanTitle(p.title.String())
	return &p.info
}

func (p *detailParser) handle(ev htmlstream.Event) {
	switch ev.Kind {
	case htmlstream.StartTag:
		p.depth++
		p.handleStart(ev)
	case htmlstream.EndTag:
		if p.depth == p.authorDepth {
			p.authorDepth = 0
			p.normalizeLastAuthor()
		}
		if p.depth == p.headingDepth {
			p.headingDepth = 0
		}
		if p.depth == p.bookDepth {
			p.bookDepth = 0
		}
		if p.depth == p.infoDepth {
			p.infoDepth = 0
		}
		if p.depth > 0 {
			p.depth--
		}
	case htmlstream.Text:
		p.handleText(ev.Text)
	}
}

func (p *detailParser) handleStart(ev htmlstream.Event) {
	switch ev.Tag {
	case "h3":
		if ev.HasClass("title") {
			p.headingDepth = p.depth
		}
	case "div":
		if ev.HasClass("book") {
			p.bookDepth = p.depth
		}
		if ev.HasClass("info") {
			p.infoDepth = p.depth
		}
	case "img":
		if p.bookDepth != 0 && p.info.Image == "" {
			p.info.Image = ev.Attr("src")
		}
	case "a":
		if href := ev.Attr("href"); strings.Contains(href, authorPathMarker) {
			p.authorDepth = p.depth
			p.info.Authors = append(p.info.Authors, models.NovelAuthor{
				ID: util.LastPathSegment(href),
			})
		}
		if strings.Contains(ev.Attr("rel"), "tag") {
			if slug := util.LastPathSegment(ev.Attr("href")); models.IsGenre(slug) {
				p.info.Genre = append(p.info.Genre, models.Genre(slug))
			}
		}
	case "input":
		if ev.Attr("id") == "id_post" && p.info.NovelKey == "" {
			p.info.NovelKey = ev.Attr("value")
		}
	}
}

func (p *detailParser) handleText(text string) {
	if p.headingDepth != 0 {
		p.title.WriteString(text)
		return
	}
	if p.authorDepth != 0 && len(p.info.Authors) > 0 {
		p.info.Authors[len(p.info.Authors)-1].Name += text
		return
	}
	if p.infoDepth != 0 && p.info.Status == "" {
		// Only the recognition test is normalized; the status keeps
		// its original casing, trimmed.
		trimmed := strings.TrimSpace(text)
		switch strings.ToLower(trimmed) {
		case "ongoing", "completed":
			p.info.Status = trimmed
		}
	}
}

func (p *detailParser) normalizeLastAuthor() {
	if len(p.info.Authors) == 0 {
		return
	}
	a := &p.info.Authors[len(p.info.Authors)-1]
	a.Name = strings.Join(strings.Fields(a.Name), " ")
}
