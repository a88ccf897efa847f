package wiki

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gizmo3030/awakening-data/internal/items"
)

var (
	reNameXQtyPair = regexp.MustCompile(`([A-Za-z][A-Za-z0-9 '\-()]+?)\s*[xX]\s*(\d+)`)
	reXQty         = regexp.MustCompile(`(?i)x\s*(\d+)`)
	reQtyX         = regexp.MustCompile(`(\d+)\s*[xX]`)
	reCountMarkup  = regexp.MustCompile(`(?i)\b\d+\b|x|\(|\)`)
)

// Labels sometimes caught by the plain-text Name xN scan that are section
// captions, not components.
var genericCostLabels = map[string]bool{
	"components":   true,
	"requirements": true,
	"materials":    true,
}

// Recipe extracts the build cost of an item page, trying layouts from most to
// least specific: a list under the Build Cost heading, then a table under it,
// then the legacy recipe table. An empty result is valid; on a total miss a
// snippet of the section is logged for manual inspection.
func (e *Extractor) Recipe(doc *goquery.Document) []items.Component {
	recipe := []items.Component{}

	heading := e.findBuildCostHeading(doc)

	parsedVia := ""
	if heading != nil {
		heading.NextUntil("h2, h3").EachWithBreak(func(_ int, sib *goquery.Selection) bool {
			switch {
			case sib.Is("ul, ol"):
				parsedVia = "list"
				recipe = e.recipeFromList(sib)
				return false
			case sib.Is("table"):
				parsedVia = "table"
				recipe = e.recipeFromBuildTable(sib)
				return false
			}
			return true
		})
	}

	if len(recipe) == 0 {
		if legacy := e.recipeFromLegacyTable(doc); len(legacy) > 0 {
			parsedVia = "legacy-recipe-table"
			recipe = legacy
		}
	}

	if len(recipe) == 0 {
		via := parsedVia
		if via == "" {
			via = "n/a"
		}
		e.log.Warnf("parse: no recipe found (via=%s) snippet=%q\n", via, sectionSnippet(heading))
	}

	return recipe
}

func (e *Extractor) findBuildCostHeading(doc *goquery.Document) *goquery.Selection {
	// Stable anchor ids first, heading text as fallback.
	for _, id := range []string{"Build_Cost", "Build cost", "build_cost"} {
		span := doc.Find(`span[id="` + id + `"]`)
		if span.Length() == 0 {
			continue
		}
		h := span.Closest("h2, h3")
		if h.Length() > 0 {
			e.log.Debugf("parse: found Build Cost heading via span id=%q\n", id)
			return h
		}
	}

	var heading *goquery.Selection
	doc.Find("h2, h3").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if strings.Contains(strings.ToLower(cellText(s)), "build cost") {
			heading = s
			return false
		}
		return true
	})
	if heading != nil {
		e.log.Debugf("parse: found Build Cost heading via text match\n")
	}
	return heading
}

func (e *Extractor) recipeFromList(list *goquery.Selection) []items.Component {
	recipe := []items.Component{}

	entries := list.Find("li")
	e.log.Debugf("parse: Build Cost list with %d items\n", entries.Length())

	entries.Each(func(_ int, li *goquery.Selection) {
		liText := cellText(li)
		qty, name, _ := SplitQuantityName(liText)
		if name == "" {
			if a := li.Find("a").First(); a.Length() > 0 {
				name = cellText(a)
			}
			if name == "" {
				name = squish(reCountMarkup.ReplaceAllString(liText, ""))
			}
		}
		if qty == 0 {
			if n, ok := firstInt(liText); ok {
				qty = n
			}
		}
		e.log.Debugf("parse:  - li=%q -> qty=%d, name=%q\n", liText, qty, name)
		if name != "" && qty > 0 {
			recipe = append(recipe, items.Component{Name: name, Count: qty})
		}
	})

	return recipe
}

func (e *Extractor) recipeFromBuildTable(tbl *goquery.Selection) []items.Component {
	recipe := []items.Component{}

	rows := tbl.Find("tr")
	e.log.Debugf("parse: Build Cost table with %d rows\n", rows.Length())

	rows.Each(func(_ int, row *goquery.Selection) {
		ths := row.Find("th")
		tds := row.Find("td")

		switch {
		// Header cell like "Components" next to one td holding the whole list.
		case ths.Length() > 0 && tds.Length() == 1:
			recipe = append(recipe, e.componentsFromCell(tds.Eq(0), true)...)

		// Header-only rows carry no data.
		case ths.Length() > 0:

		case tds.Length() >= 2:
			if c, ok := componentFromPair(tds.Eq(0), tds.Eq(1)); ok {
				e.log.Debugf("parse:  - row: name=%q qty=%d\n", c.Name, c.Count)
				recipe = append(recipe, c)
			}

		case tds.Length() == 1:
			recipe = append(recipe, e.componentsFromCell(tds.Eq(0), len(recipe) == 0)...)
		}
	})

	return recipe
}

// componentsFromCell handles a single cell that packs the entire component
// list: an embedded ul, bare anchors with xN markers, or plain text.
// allowTextScan gates the loosest strategy so it only runs when nothing has
// been extracted yet.
func (e *Extractor) componentsFromCell(cell *goquery.Selection, allowTextScan bool) []items.Component {
	out := []items.Component{}

	if entries := cell.Find("li"); entries.Length() > 0 {
		e.log.Debugf("parse:  - cell contains %d li entries\n", entries.Length())
		entries.Each(func(_ int, li *goquery.Selection) {
			liText := cellText(li)
			qty, name, ok := SplitQuantityName(liText)
			e.log.Debugf("parse:    * li=%q -> qty=%d, name=%q\n", liText, qty, name)
			if ok && name != "" && qty > 0 {
				out = append(out, items.Component{Name: name, Count: qty})
			}
		})
		return out
	}

	if anchors := cell.Find("a"); anchors.Length() > 0 {
		e.log.Debugf("parse:  - cell contains %d anchors; scanning for quantity markers\n", anchors.Length())
		seen := map[string]bool{}
		anchors.Each(func(_ int, a *goquery.Selection) {
			name := cellText(a)
			if name == "" || seen[name] {
				return
			}
			qty := countNearAnchor(a)
			e.log.Debugf("parse:    * anchor name=%q -> qty=%d\n", name, qty)
			if qty > 0 {
				seen[name] = true
				out = append(out, items.Component{Name: name, Count: qty})
			}
		})
		if len(out) > 0 {
			return out
		}
	}

	if !allowTextScan {
		return out
	}

	text := cellText(cell)
	e.log.Debugf("parse:  - plain-text scan, len=%d\n", len(text))
	for _, m := range reNameXQtyPair.FindAllStringSubmatch(text, -1) {
		name := squish(m[1])
		if genericCostLabels[strings.ToLower(name)] {
			continue
		}
		qty, _ := strconv.Atoi(m[2])
		if name != "" && qty > 0 {
			e.log.Debugf("parse:    * text-match name=%q qty=%d\n", name, qty)
			out = append(out, items.Component{Name: name, Count: qty})
		}
	}

	return out
}

// countNearAnchor looks for an "x N" marker in the text right after the
// anchor, falling back to an "N x" marker right before it.
func countNearAnchor(a *goquery.Selection) int {
	if m := reXQty.FindStringSubmatch(textAfter(a)); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n
	}
	if m := reQtyX.FindStringSubmatch(textBefore(a)); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n
	}
	return 0
}

// componentFromPair reads a standard two-column row: linked name, numeric
// quantity.
func componentFromPair(nameCell, qtyCell *goquery.Selection) (items.Component, bool) {
	name := ""
	if a := nameCell.Find("a").First(); a.Length() > 0 {
		name = cellText(a)
	}
	if name == "" {
		name = cellText(nameCell)
	}

	qty, ok := firstInt(cellText(qtyCell))
	if name == "" || !ok || qty == 0 {
		return items.Component{}, false
	}
	return items.Component{Name: name, Count: qty}, true
}

func (e *Extractor) recipeFromLegacyTable(doc *goquery.Document) []items.Component {
	recipe := []items.Component{}

	span := doc.Find(`span[id="Recipe"]`)
	if span.Length() == 0 {
		return recipe
	}
	heading := span.Closest("h2, h3")
	if heading.Length() == 0 {
		return recipe
	}
	tbl := heading.NextAllFiltered("table").First()
	if tbl.Length() == 0 {
		return recipe
	}

	rows := tbl.Find("tr")
	e.log.Debugf("parse: legacy Recipe table with %d rows\n", rows.Length())

	rows.Each(func(_ int, row *goquery.Selection) {
		if th := row.Find("th").First(); th.Length() > 0 && strings.Contains(th.Text(), "Ingredient") {
			return
		}
		tds := row.Find("td")
		if tds.Length() < 2 {
			return
		}
		if c, ok := componentFromPair(tds.Eq(0), tds.Eq(1)); ok {
			e.log.Debugf("parse:  - legacy row: name=%q qty=%d\n", c.Name, c.Count)
			recipe = append(recipe, c)
		}
	})

	return recipe
}

// sectionSnippet grabs the text of the first few elements under the Build
// Cost heading so a total parse miss leaves something to inspect.
func sectionSnippet(heading *goquery.Selection) string {
	if heading == nil {
		return "none"
	}
	parts := []string{}
	heading.NextUntil("h2, h3").EachWithBreak(func(i int, sib *goquery.Selection) bool {
		if i >= 3 {
			return false
		}
		parts = append(parts, cellText(sib))
		return true
	})
	snippet := strings.Join(parts, " | ")
	if len(snippet) > 240 {
		snippet = snippet[:240]
	}
	if snippet == "" {
		return "none"
	}
	return snippet
}
