package scraper

import "github.com/vrsandeep/novel-go/internal/models"

// cardField names an accumulating field on a NovelCard.
type cardField int

const (
	fieldID cardField = iota
	fieldTitle
	fieldLastChapter
)

// cardBuilder accumulates listing records during a single parse pass.
// The tokenizer can deliver one logical text field as several
// consecutive text events, so fields are appended to, never
// overwritten; dropping or replacing a chunk would corrupt the value.
type cardBuilder struct {
	cards []models.NovelCard
}

// Open appends a blank card and makes it the current record.
func (b *cardBuilder) Open() {
	b.cards = append(b.cards, models.NovelCard{})
}

// Append concatenates chunk onto the named field of the current card.
// It is a no-op before the first Open, which guards against text
// events that race ahead of container boundary detection.
func (b *cardBuilder) Append(f cardField, chunk string) {
	if len(b.cards) == 0 {
		return
	}
	c := &b.cards[len(b.cards)-1]
	switch f {
	case fieldID:
		c.ID += chunk
	case fieldTitle:
		c.Title += chunk
	case fieldLastChapter:
		c.LastChapter += chunk
	}
}

// AppendImageOnce records the image source only when the current card
// has none yet. A card's markup may contain a second, irrelevant image
// further down, so the first one wins.
func (b *cardBuilder) AppendImageOnce(src string) {
	if len(b.cards) == 0 {
		return
	}
	c := &b.cards[len(b.cards)-1]
	if c.Image == "" {
		c.Image = src
	}
}

// Cards returns the accumulated records in document order.
func (b *cardBuilder) Cards() []models.NovelCard {
	return b.cards
}

// chapterBuilder accumulates chapter-list records with the same
// append-not-overwrite contract as cardBuilder.
type chapterBuilder struct {
	chapters []models.NovelChapter
}

func (b *chapterBuilder) Open() {
	b.chapters = append(b.chapters, models.NovelChapter{})
}

// SetID records the chapter slug once; later writes are ignored.
func (b *chapterBuilder) SetID(id string) {
	if len(b.chapters) == 0 {
		return
	}
	c := &b.chapters[len(b.chapters)-1]
	if c.ID == "" {
		c.ID = id
	}
}

func (b *chapterBuilder) AppendTitle(chunk string) {
	if len(b.chapters) == 0 {
		return
	}
	b.chapters[len(b.chapters)-1].Title += chunk
}

func (b *chapterBuilder) Chapters() []models.NovelChapter {
	return b.chapters
}
