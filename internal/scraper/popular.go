package scraper

import (
	"context"

	"github.com/PuerkitoBio/goquery"

	"github.com/vrsandeep/novel-go/internal/models"
)

// MostPopular returns the sidebar list of most-read novels from the
// latest-updates page. The sidebar is a flat set of anchors with no
// repeated record structure, so a whole-document query is enough here;
// the streaming extractors are reserved for the paginated shapes.
func (s *Scraper) MostPopular(ctx context.Context) ([]models.PopularNovel, error) {
	body, err := s.get(ctx, s.baseURL+"/latest")
	if err != nil {
		return nil, err
	}
	defer body.Close()

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, err
	}

	var novels []models.PopularNovel
	doc.Find(".col-truyen-side a").Each(func(i int, sel *goquery.Selection) {
		title, hasTitle := sel.Attr("title")
		href, hasHref := sel.Attr("href")
		if !hasTitle || !hasHref || title == "" || href == "" {
			return
		}
		novels = append(novels, models.PopularNovel{Title: title, URL: href})
	})
	return novels, nil
}
