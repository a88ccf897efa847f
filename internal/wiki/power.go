package wiki

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gizmo3030/awakening-data/internal/items"
)

// Label vocabularies for power rows. A provide match always beats a consume
// match; a label that only contains the bare word "power" is held as an
// ambiguous candidate and resolved later by page classification.
var (
	powerConsumeTerms = []string{
		"power draw", "power consumption", "consumption", "consumes",
		"power required", "required power", "power requirement", "use", "usage",
	}
	powerProvideTerms = []string{
		"power provided", "power output", "power generation", "generates",
		"generated", "provided power", "generator output", "produces", "produced",
	}
)

type powerClass int

const (
	powerNone powerClass = iota
	powerProvide
	powerConsume
	powerAmbiguous
)

// Ordered rule table; first match wins.
var powerLabelRules = []struct {
	class powerClass
	match func(label string) bool
}{
	{powerProvide, func(l string) bool { return containsAny(l, powerProvideTerms) }},
	{powerConsume, func(l string) bool { return containsAny(l, powerConsumeTerms) }},
	{powerAmbiguous, func(l string) bool { return strings.Contains(l, "power") }},
}

func classifyPowerLabel(label string) powerClass {
	for _, r := range powerLabelRules {
		if r.match(label) {
			return r.class
		}
	}
	return powerNone
}

var (
	rePowerConsumeText = regexp.MustCompile(`(?i)power\s*(?:draw|consumption|required|requirement|use|usage)\s*[:=]?\s*(\d+)`)
	rePowerProvideText = regexp.MustCompile(`(?i)power\s*(?:provided|output|generation|generated|produced|produces)\s*[:=]?\s*(\d+)`)
)

// Power extracts provided/consumed power from infobox-style rows, with a
// text-level fallback over the whole page, an ambiguity resolution step keyed
// on the page title, and a final generator correction.
func (e *Extractor) Power(doc *goquery.Document) items.PowerSpec {
	var provides, consumes int
	var ambiguous []int

	doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
		label, value, ok := labelValueCells(row)
		if !ok {
			return
		}

		n, ok := firstInt(cellText(value))
		if !ok || n == 0 {
			return
		}

		switch classifyPowerLabel(strings.ToLower(cellText(label))) {
		case powerProvide:
			provides = max(provides, n)
		case powerConsume:
			consumes = max(consumes, n)
		case powerAmbiguous:
			ambiguous = append(ambiguous, n)
		}
	})

	pageText := squish(doc.Text())
	mProv := rePowerProvideText.FindStringSubmatch(pageText)
	mCons := rePowerConsumeText.FindStringSubmatch(pageText)
	if mProv != nil && provides == 0 {
		provides, _ = strconv.Atoi(mProv[1])
	}
	if mCons != nil && consumes == 0 && mProv == nil {
		consumes, _ = strconv.Atoi(mCons[1])
	}

	// No labeled hit at all: classify the bare "Power" values by page title.
	if len(ambiguous) > 0 && provides == 0 && consumes == 0 {
		largest := 0
		for _, n := range ambiguous {
			largest = max(largest, n)
		}
		if strings.Contains(strings.ToLower(pageTitle(doc)), "generator") {
			provides = largest
		} else {
			consumes = largest
		}
	}

	e.log.Debugf("power: provides=%d, consumes=%d\n", provides, consumes)

	// An item reporting both sides is treated as a net generator; the
	// consume figure is assumed misclassified.
	if provides > 0 && consumes > 0 {
		e.log.Debugf("power: both sides non-zero, zeroing consumes\n")
		consumes = 0
	}

	return items.PowerSpec{Provides: provides, Consumes: consumes}
}
