package items

// Merge combines base with overrides, keyed by Name. Overrides win on
// collision, replacing the base record in place; override names not present
// in base are appended in their own order. Input slices are not modified.
func Merge(base, overrides []Item) []Item {
	out := make([]Item, len(base))
	copy(out, base)

	index := make(map[string]int, len(out))
	for i, it := range out {
		index[it.Name] = i
	}

	for _, ov := range overrides {
		if i, ok := index[ov.Name]; ok {
			out[i] = ov
			continue
		}
		index[ov.Name] = len(out)
		out = append(out, ov)
	}

	return out
}

// EnsureConsumables makes every name referenced in any item's Consumables
// list selectable as a top-level record. Names without their own entry get a
// placeholder with no recipe, zero power and water, and IsConsumable set.
func EnsureConsumables(set []Item) []Item {
	existing := make(map[string]bool, len(set))
	for _, it := range set {
		existing[it.Name] = true
	}

	out := set
	for _, it := range set {
		for _, c := range it.Consumables {
			if c.Name == "" || existing[c.Name] {
				continue
			}
			existing[c.Name] = true
			out = append(out, Item{
				Name:         c.Name,
				Recipe:       []Component{},
				IsConsumable: true,
			})
		}
	}

	return out
}
