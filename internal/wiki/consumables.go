package wiki

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gizmo3030/awakening-data/internal/items"
)

var consumableLabelTerms = []string{
	"consumable", "fuel", "lubricant", "upkeep", "maintenance",
}

var (
	reMinutes          = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:m|min|mins|minute|minutes)\b`)
	reHours            = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:h|hr|hrs|hour|hours)\b`)
	reCompactXHours    = regexp.MustCompile(`x\s*(\d+(?:\.\d+)?)\s*h\b`)
	reCompactHours     = regexp.MustCompile(`(\d+(?:\.\d+)?)h\b`)
	reConsumableSplit  = regexp.MustCompile(`[,;\n]`)
	reTrailingDuration = regexp.MustCompile(`(?i)\s*x?\s*\d+(?:\.\d+)?\s*(?:h|hr|hrs|hour|hours|m|min|mins|minute|minutes)\b\.?$`)
)

// ParseHours reads a burn duration like "1h", "2 hours", "90m" or "x1h" into
// fractional hours. Minutes are checked first so "90m" does not read as hours.
func ParseHours(text string) (float64, bool) {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" {
		return 0, false
	}

	for _, re := range []*regexp.Regexp{reMinutes, reHours, reCompactXHours, reCompactHours} {
		m := re.FindStringSubmatch(t)
		if m == nil {
			continue
		}
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, false
		}
		if re == reMinutes {
			v /= 60.0
		}
		return v, true
	}
	return 0, false
}

func hoursOrDefault(text string) float64 {
	if h, ok := ParseHours(text); ok && h > 0 {
		return h
	}
	return 1.0
}

// Consumables extracts what an item burns during operation. Two independent
// strategies: infobox rows whose header names a consumable concern, and
// genuine two-column consumable/burn-time tables. Results merge with
// duplicates resolved toward the larger duration.
func (e *Extractor) Consumables(doc *goquery.Document) []items.Consumable {
	var found []items.Consumable

	doc.Find("table").Each(func(_ int, tbl *goquery.Selection) {
		twoColumn := looksLikeConsumableTable(tbl)

		tbl.Find("tr").Each(func(_ int, row *goquery.Selection) {
			ths := row.Find("th")
			tds := row.Find("td")

			switch {
			case ths.Length() > 0 && tds.Length() > 0:
				label := strings.ToLower(cellText(ths.First()))
				if !containsAny(label, consumableLabelTerms) {
					return
				}
				found = append(found, consumablesFromValueCell(tds.Last())...)

			case twoColumn && tds.Length() >= 2:
				if c, ok := consumableFromColumns(tds.Eq(0), tds.Eq(1)); ok {
					found = append(found, c)
				}
			}
		})
	})

	// Nothing table-shaped matched: fall back to a generic row scan.
	if len(found) == 0 {
		doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
			labelSel, valueSel, ok := labelValueCells(row)
			if !ok {
				return
			}
			if !containsAny(strings.ToLower(cellText(labelSel)), consumableLabelTerms) {
				return
			}
			found = append(found, consumablesFromValueCell(valueSel)...)
		})
	}

	out := dedupeConsumables(found)
	e.log.Debugf("consumables: %d found\n", len(out))
	return out
}

func looksLikeConsumableTable(tbl *goquery.Selection) bool {
	var nameHeader, timeHeader bool
	tbl.Find("th").Each(func(_ int, th *goquery.Selection) {
		h := strings.ToLower(cellText(th))
		if containsAny(h, []string{"consumable", "fuel", "lubricant"}) {
			nameHeader = true
		}
		if containsAny(h, []string{"burn", "time", "duration"}) {
			timeHeader = true
		}
	})
	return nameHeader && timeHeader
}

// consumablesFromValueCell reads an infobox value cell: every anchor becomes
// a consumable, with the duration parsed from the cell's full text. Anchorless
// cells are split on list separators instead.
func consumablesFromValueCell(cell *goquery.Selection) []items.Consumable {
	var out []items.Consumable

	anchors := cell.Find("a")
	if anchors.Length() > 0 {
		ctx := cellText(cell)
		seen := map[string]bool{}
		anchors.Each(func(_ int, a *goquery.Selection) {
			name := cellText(a)
			if name == "" {
				name = squish(a.AttrOr("title", ""))
			}
			if name == "" || seen[name] {
				return
			}
			seen[name] = true
			out = append(out, items.Consumable{Name: name, Hours: hoursOrDefault(ctx)})
		})
		return out
	}

	for _, part := range reConsumableSplit.Split(cell.Text(), -1) {
		part = squish(part)
		if part == "" {
			continue
		}
		name := squish(reTrailingDuration.ReplaceAllString(part, ""))
		if name == "" {
			name = part
		}
		out = append(out, items.Consumable{Name: name, Hours: hoursOrDefault(part)})
	}
	return out
}

// consumableFromColumns reads one row of an explicit consumable table: first
// column names the consumable (longest non-file anchor text wins), second
// column carries the burn time.
func consumableFromColumns(nameCell, timeCell *goquery.Selection) (items.Consumable, bool) {
	var candidates []string
	nameCell.Find("a").Each(func(_ int, a *goquery.Selection) {
		href := strings.TrimSpace(a.AttrOr("href", ""))
		title := strings.TrimSpace(a.AttrOr("title", ""))
		if strings.HasPrefix(href, "/File:") || strings.HasPrefix(title, "File:") {
			return
		}
		if text := cellText(a); text != "" {
			candidates = append(candidates, text)
		} else if title != "" {
			candidates = append(candidates, title)
		}
	})

	name := ""
	for _, c := range candidates {
		if len(c) > len(name) {
			name = c
		}
	}
	if name == "" {
		name = cellText(nameCell)
	}
	if name == "" {
		return items.Consumable{}, false
	}

	return items.Consumable{Name: name, Hours: hoursOrDefault(cellText(timeCell))}, true
}

// dedupeConsumables keeps one entry per name, preferring the larger duration,
// preserving first-seen order.
func dedupeConsumables(in []items.Consumable) []items.Consumable {
	out := []items.Consumable{}
	index := map[string]int{}
	for _, c := range in {
		if i, ok := index[c.Name]; ok {
			if c.Hours > out[i].Hours {
				out[i] = c
			}
			continue
		}
		index[c.Name] = len(out)
		out = append(out, c)
	}
	return out
}
