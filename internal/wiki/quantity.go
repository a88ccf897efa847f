package wiki

import (
	"regexp"
	"strconv"
)

// The recognized quantity/name shapes, tried in order. First match wins.
var quantityPatterns = []struct {
	re      *regexp.Regexp
	qtyIdx  int
	nameIdx int
}{
	{regexp.MustCompile(`^(\d+)\s*[xX]\s*(.+)$`), 1, 2},   // 10x Plank
	{regexp.MustCompile(`^(.+?)\s*[xX]\s*(\d+)$`), 2, 1},  // Plank x10
	{regexp.MustCompile(`^(.+?)\s*\((\d+)\)$`), 2, 1},     // Plank (10)
	{regexp.MustCompile(`^(\d+)\s+(.+)$`), 1, 2},          // 10 Plank
}

// SplitQuantityName extracts a (count, name) pair from a build-cost entry
// like "10x Plank", "Plank x10", "Plank (10)" or "10 Plank".
func SplitQuantityName(text string) (int, string, bool) {
	t := squish(text)
	for _, p := range quantityPatterns {
		m := p.re.FindStringSubmatch(t)
		if m == nil {
			continue
		}
		qty, err := strconv.Atoi(m[p.qtyIdx])
		if err != nil {
			continue
		}
		return qty, squish(m[p.nameIdx]), true
	}
	return 0, "", false
}
