package items

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads a previously saved snapshot. A missing or unreadable snapshot is
// not an error for the pipeline: the caller gets an empty set plus the reason,
// and decides how loudly to report it.
func Load(path string) ([]Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return []Item{}, fmt.Errorf("read snapshot %s: %w", path, err)
	}

	var set []Item
	if err := json.Unmarshal(data, &set); err != nil {
		return []Item{}, fmt.Errorf("decode snapshot %s: %w", path, err)
	}
	if set == nil {
		set = []Item{}
	}
	return set, nil
}

// Save overwrites the snapshot with the full item set, pretty-printed.
func Save(path string, set []Item) error {
	for i := range set {
		if set[i].Recipe == nil {
			set[i].Recipe = []Component{}
		}
	}

	data, err := json.MarshalIndent(set, "", "    ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write snapshot %s: %w", path, err)
	}
	return nil
}
