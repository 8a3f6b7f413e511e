package scraper

import (
	"io"
	"strings"

	"github.com/vrsandeep/novel-go/internal/htmlstream"
	"github.com/vrsandeep/novel-go/internal/models"
	"github.com/vrsandeep/novel-go/internal/util"
)

// contentParser extracts the text of a chapter page. Unlike the field
// accumulation in the listing builders, paragraphs are semantically
// distinct: each non-empty text event inside a paragraph becomes its
// own content entry and is never concatenated with its neighbors.
type contentParser struct {
	content models.NovelChapterContent

	depth          int
	containerDepth int
	paragraphDepth int
}

// parseChapterContent extracts prev/next navigation slugs and the
// ordered paragraph texts from a chapter page body. The record's ID is
// the caller's to fill in.
func parseChapterContent(r io.Reader) *models.NovelChapterContent {
	p := &contentParser{}
	stream := htmlstream.New(r)
	for {
		ev, ok := stream.Next()
		if !ok {
			break
		}
		p.handle(ev)
	}
	return &p.content
}

func (p *contentParser) handle(ev htmlstream.Event) {
	switch ev.Kind {
	case htmlstream.StartTag:
		p.depth++
		p.handleStart(ev)
	case htmlstream.EndTag:
		if p.depth == p.paragraphDepth {
			p.paragraphDepth = 0
		}
		if p.depth == p.containerDepth {
			p.containerDepth = 0
		}
		if p.depth > 0 {
			p.depth--
		}
	case htmlstream.Text:
		if p.paragraphDepth == 0 {
			return
		}
		if text := strings.TrimSpace(ev.Text); text != "" {
			p.content.Content = append(p.content.Content, text)
		}
	}
}

func (p *contentParser) handleStart(ev htmlstream.Event) {
	switch ev.Tag {
	case "a":
		switch ev.Attr("id") {
		case "prev_chap":
			p.content.Prev = util.SlugFromURL(ev.Attr("href"))
		case "next_chap":
			p.content.Next = util.SlugFromURL(ev.Attr("href"))
		}
	case "div":
		if ev.HasClass("chapter-content") {
			p.containerDepth = p.depth
		}
	case "p":
		if p.containerDepth != 0 {
			p.paragraphDepth = p.depth
		}
	}
}
