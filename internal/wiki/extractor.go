package wiki

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/gizmo3030/awakening-data/internal/items"
	"github.com/gizmo3030/awakening-data/internal/ui"
)

// PageData is everything extracted from one item page.
type PageData struct {
	Recipe        []items.Component
	Power         items.PowerSpec
	WaterCapacity int
	Consumables   []items.Consumable
}

// Extractor runs the heuristic cascade over parsed item pages. Each
// sub-extraction degrades to a zero value when no pattern matches; none of
// them fail.
type Extractor struct {
	log *ui.Logger
}

func NewExtractor(log *ui.Logger) *Extractor {
	return &Extractor{log: log}
}

func (e *Extractor) ExtractPage(doc *goquery.Document) PageData {
	return PageData{
		Recipe:        e.Recipe(doc),
		Power:         e.Power(doc),
		WaterCapacity: e.WaterCapacity(doc),
		Consumables:   e.Consumables(doc),
	}
}

// pageTitle prefers the page's h1, falling back to the title element.
func pageTitle(doc *goquery.Document) string {
	if t := cellText(doc.Find("h1").First()); t != "" {
		return t
	}
	return cellText(doc.Find("title").First())
}
