package wiki

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	reLeadingNumber = regexp.MustCompile(`\d[\d,.]*`)
	reLiterUnit     = regexp.MustCompile(`(?i)\b(l|liter|litre|liters|litres)\b`)
	reWaterText     = regexp.MustCompile(`(?i)(water|liquid)[^\n]{0,40}?(capacity|storage|volume)[^\n]{0,15}?(\d[\d,.]*)\s*(l|liter|litre|liters|litres)`)
)

// Ordered row rules for water capacity; first match wins.
var waterRowRules = []func(label, value string) bool{
	func(label, _ string) bool {
		return containsAny(label, []string{"water", "liquid"}) &&
			containsAny(label, []string{"capacity", "storage", "volume", "tank"})
	},
	func(label, value string) bool {
		return containsAny(label, []string{"capacity", "storage"}) &&
			reLiterUnit.MatchString(value)
	},
}

// WaterCapacity extracts a liter capacity from infobox rows, taking the
// maximum across matching rows, with a text-level fallback.
func (e *Extractor) WaterCapacity(doc *goquery.Document) int {
	capacity := 0

	doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
		labelSel, valueSel, ok := labelValueCells(row)
		if !ok {
			return
		}
		label := strings.ToLower(cellText(labelSel))
		value := cellText(valueSel)

		for _, rule := range waterRowRules {
			if !rule(label, value) {
				continue
			}
			if liters, ok := parseLiters(value); ok {
				capacity = max(capacity, liters)
			}
			break
		}
	})

	if capacity == 0 {
		if m := reWaterText.FindStringSubmatch(squish(doc.Text())); m != nil {
			if liters, ok := parseLiters(m[3]); ok {
				capacity = liters
			}
		}
	}

	e.log.Debugf("water: capacity_liters=%d\n", capacity)
	return capacity
}

// parseLiters reads the leading numeric token of s as a liter count,
// tolerating thousands separators and decimals.
func parseLiters(s string) (int, bool) {
	m := reLeadingNumber.FindString(s)
	if m == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(m, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return int(f), true
}
