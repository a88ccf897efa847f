package wiki

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var reDigits = regexp.MustCompile(`\d+`)

// squish collapses all runs of whitespace to single spaces and trims.
func squish(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func cellText(s *goquery.Selection) string {
	return squish(s.Text())
}

// firstInt pulls the first run of digits out of s.
func firstInt(s string) (int, bool) {
	m := reDigits.FindString(s)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return n, true
}

func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

// labelValueCells picks the label and value cells out of an infobox-style
// table row: a th (or first td of a multi-cell row) labels the second cell.
func labelValueCells(row *goquery.Selection) (label, value *goquery.Selection, ok bool) {
	th := row.Find("th").First()
	tds := row.Find("td")

	switch {
	case tds.Length() >= 2:
		if th.Length() > 0 {
			label = th
		} else {
			label = tds.Eq(0)
		}
		value = tds.Eq(1)
	case tds.Length() == 1 && th.Length() > 0:
		label = th
		value = tds.Eq(0)
	default:
		return nil, nil, false
	}

	return label, value, true
}

// nodeText flattens a raw HTML node, element or text, to its visible text.
func nodeText(n *html.Node) string {
	if n == nil {
		return ""
	}
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(nodeText(c))
		b.WriteString(" ")
	}
	return b.String()
}

// textAfter joins the text of every sibling node following the selection's
// first node, in order.
func textAfter(s *goquery.Selection) string {
	if len(s.Nodes) == 0 {
		return ""
	}
	var b strings.Builder
	for n := s.Nodes[0].NextSibling; n != nil; n = n.NextSibling {
		b.WriteString(nodeText(n))
		b.WriteString(" ")
	}
	return b.String()
}

// textBefore joins the text of every sibling node preceding the selection's
// first node, preserving document order.
func textBefore(s *goquery.Selection) string {
	if len(s.Nodes) == 0 {
		return ""
	}
	var parts []string
	for n := s.Nodes[0].PrevSibling; n != nil; n = n.PrevSibling {
		parts = append(parts, nodeText(n))
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, " ")
}
