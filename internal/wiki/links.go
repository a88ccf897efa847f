package wiki

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/gizmo3030/awakening-data/internal/ui"
)

// ItemLinks extracts item page URLs from a category listing page, in page
// order. A missing listing container is a soft failure: the caller gets an
// empty list and a warning, and the pipeline carries on with zero links.
func ItemLinks(doc *goquery.Document, baseURL string, log *ui.Logger) []string {
	links := []string{}

	container := doc.Find("div#mw-pages")
	if container.Length() == 0 {
		log.Warnf("links: could not find div#mw-pages; page structure may have changed\n")
		return links
	}

	container.Find("li").Each(func(_ int, li *goquery.Selection) {
		a := li.Find("a[href]").First()
		if a.Length() == 0 {
			return
		}
		href, _ := a.Attr("href")
		if href == "" {
			return
		}
		links = append(links, baseURL+href)
	})

	return links
}
